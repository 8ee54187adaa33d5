package checking

import "github.com/dd482IT/randoop-wpi/sequence"

// A Check verifies that an expected property holds for one or more runtime
// values captured while executing a recorded sequence.
//
// Checks are immutable value objects and safe to share across goroutines,
// provided the underlying contract tolerates concurrent evaluation and the
// execution record is not concurrently mutated.
type Check interface {
	// Evaluate the check against the captured outcomes of an executed
	// sequence.
	//
	// Returns true if the property holds for the resolved runtime values.
	// Returns false if the property is violated or could not be evaluated.
	// Never panics, except to re-propagate a fatal environment fault.
	Evaluate(execution *sequence.Execution) bool

	// A stable deduplication key built from the observed property's identity
	// and the positions it is bound to. Coarser than structural equality:
	// checks that differ only in contract internals but target the same
	// observer and variables share an ID.
	ID() string

	// Source code to be emitted before the checked statement. Usually empty.
	PreStatementCode() string

	// Source code asserting the property, to be emitted after the checked
	// statement, with the contract's placeholders resolved to variable names.
	PostStatementCode() string

	// A short canonical description of the observed value the check pins
	// down, used to group structurally identical value assertions.
	Value() string

	// A human readable form for diagnostics. Not used for identity.
	String() string
}
