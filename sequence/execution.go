package sequence

import "fmt"

// An Outcome is the captured result of executing one position of a sequence.
// A position either produced a runtime value, raised a fault, or was never
// reached because an earlier position faulted.
type Outcome interface {
	// A short human readable description of the outcome.
	String() string
}

// A NormalExecution records that the position completed and captured a
// runtime value.
type NormalExecution struct {
	value any
}

func NewNormalExecution(value any) *NormalExecution {
	return &NormalExecution{value: value}
}

// The runtime value captured for the position.
func (n *NormalExecution) Value() any {
	return n.value
}

func (n *NormalExecution) String() string {
	return fmt.Sprintf("<normal execution, value: %v>", n.value)
}

// An ExceptionalExecution records that the position's originating step raised
// a fault. No runtime value is available for it.
type ExceptionalExecution struct {
	fault error
}

func NewExceptionalExecution(fault error) *ExceptionalExecution {
	return &ExceptionalExecution{fault: fault}
}

// The fault raised by the position's originating step.
func (e *ExceptionalExecution) Fault() error {
	return e.fault
}

func (e *ExceptionalExecution) String() string {
	return fmt.Sprintf("<exceptional execution, fault: %v>", e.fault)
}

type notExecuted struct{}

func (notExecuted) String() string {
	return "<not executed>"
}

// NotExecuted marks a position that was never reached when the sequence ran.
var NotExecuted Outcome = notExecuted{}

// An Execution is the captured outcome for each position of a sequence after
// the sequence was actually run.
type Execution struct {
	outcomes []Outcome
}

// Create an execution record from the outcomes of a run, one per position in
// the order the positions were recorded.
func NewExecution(outcomes ...Outcome) *Execution {
	e := &Execution{
		outcomes: make([]Outcome, len(outcomes)),
	}
	copy(e.outcomes, outcomes)
	return e
}

// The number of positions the execution holds an outcome for.
func (e *Execution) Size() int {
	return len(e.outcomes)
}

// The outcome recorded for the provided position.
func (e *Execution) Outcome(index int) Outcome {
	return e.outcomes[index]
}

// RuntimeValues resolves each variable, in order, to the runtime value
// captured for its position.
//
// Returns an error if some variable references a position outside the
// execution or a position that faulted or never ran. No partial result is
// returned in that case.
func (e *Execution) RuntimeValues(vars []*Variable) ([]any, error) {
	values := make([]any, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("sequence: variable %d is nil", i)
		}
		if v.Index < 0 || v.Index >= len(e.outcomes) {
			return nil, fmt.Errorf("sequence: no outcome recorded for %v", v.Name())
		}
		outcome, ok := e.outcomes[v.Index].(*NormalExecution)
		if !ok {
			return nil, fmt.Errorf("sequence: no runtime value for %v: %v", v.Name(), e.outcomes[v.Index])
		}
		values[i] = outcome.Value()
	}
	return values, nil
}
