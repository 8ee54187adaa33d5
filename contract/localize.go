package contract

import (
	"fmt"
	"regexp"

	"github.com/dd482IT/randoop-wpi/sequence"
)

// LocalizeCode substitutes the placeholder markers in a contract's code
// template with the rendered names of the variables a check bound it to.
// The i-th variable replaces every word-bounded occurrence of the marker xi,
// so x1 is never rewritten inside x10.
//
// The substitution is purely textual; the template syntax itself is owned by
// the contract that produced it.
func LocalizeCode(template string, vars ...*sequence.Variable) string {
	for i, v := range vars {
		marker := regexp.MustCompile(fmt.Sprintf(`\bx%d\b`, i))
		template = marker.ReplaceAllString(template, v.Name())
	}
	return template
}
