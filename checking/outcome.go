package checking

import "fmt"

// OutcomeKind distinguishes the three ways evaluating a check can end.
type OutcomeKind int

const (
	// The contract evaluated normally and the property holds.
	Holds OutcomeKind = iota
	// The contract evaluated normally and the property does not hold.
	Violated
	// The contract could not be meaningfully evaluated: its evaluation
	// raised a non-fatal fault, or some variable had no captured value.
	EvaluationFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Holds:
		return "holds"
	case Violated:
		return "violated"
	case EvaluationFailed:
		return "evaluation failed"
	}
	return fmt.Sprintf("unknown outcome kind %d", int(k))
}

// An Outcome is the result of evaluating a check against an execution record.
//
// The legacy boolean view collapses Violated and EvaluationFailed into false;
// harnesses that need to tell a genuine violation apart from a failed
// evaluation inspect the kind and cause instead.
type Outcome struct {
	kind  OutcomeKind
	cause error
}

// The kind of the outcome.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// The fault that made evaluation fail. Nil unless the kind is
// EvaluationFailed. The fault is retained for inspection but never logged by
// this package.
func (o Outcome) Cause() error {
	return o.cause
}

// The boolean projection of the outcome: true for Holds, false otherwise.
func (o Outcome) Bool() bool {
	return o.kind == Holds
}

func (o Outcome) String() string {
	if o.kind == EvaluationFailed && o.cause != nil {
		return fmt.Sprintf("%v: %v", o.kind, o.cause)
	}
	return o.kind.String()
}
