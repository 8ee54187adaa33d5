package checking

import (
	"errors"
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/slices"

	"github.com/dd482IT/randoop-wpi/contract"
	"github.com/dd482IT/randoop-wpi/sequence"
)

var (
	// Returned when a check is constructed without a contract.
	ErrNilContract = errors.New("checking: contract cannot be nil")
	// Returned when the number of variables does not match the contract's arity.
	ErrArityMismatch = errors.New("checking: variable count does not match contract arity")
)

// An ObjectCheck binds a contract to the specific positions of a recorded
// sequence it applies to, for example:
//
//   - Checking that the objects created during execution of a sequence
//     respect reflexivity of equality.
//   - Checking that a value captured at some position is not nil.
//
// An ObjectCheck has two parts: the contract performing the actual property
// check on a tuple of runtime values, and an ordered list of variables
// describing which captured values the check is over.
//
// ObjectChecks are immutable after construction.
type ObjectCheck struct {
	// The contract that is checked.
	contract contract.Contract
	// The variables for the contract.
	vars []*sequence.Variable
}

var _ Check = (*ObjectCheck)(nil)

// Create an ObjectCheck for the given contract using the variables as input.
//
// The contract must be non-nil and the number of variables must equal the
// contract's arity. The variables are snapshotted: later mutation of the
// caller's slice does not affect the check.
func NewObjectCheck(c contract.Contract, vars ...*sequence.Variable) (*ObjectCheck, error) {
	if c == nil {
		return nil, ErrNilContract
	}
	if len(vars) != c.Arity() {
		return nil, fmt.Errorf("%w: got %d variables, arity is %d", ErrArityMismatch, len(vars), c.Arity())
	}
	return &ObjectCheck{
		contract: c,
		vars:     slices.Clone(vars),
	}, nil
}

// The contract the check evaluates.
func (oc *ObjectCheck) Contract() contract.Contract {
	return oc.contract
}

// Compares two checks
//
// Returns true if both hold equal contracts and reference the same variables
// in the same order, or if both are nil.
// Returns false otherwise.
func (oc *ObjectCheck) Equals(other *ObjectCheck) bool {
	if oc == nil || other == nil {
		return oc == other
	}
	if oc == other {
		return true
	}
	return oc.contract.Equals(other.contract) &&
		slices.EqualFunc(oc.vars, other.vars, (*sequence.Variable).Equals)
}

// A hash consistent with Equals: equal checks hash identically.
func (oc *ObjectCheck) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d", oc.contract.Hash())
	for _, v := range oc.vars {
		fmt.Fprintf(h, " %p:%d", v.Seq, v.Index)
	}
	return h.Sum64()
}

// A stable deduplication key: the contract's observer identity string
// followed by the rendered variable list.
func (oc *ObjectCheck) ID() string {
	return fmt.Sprintf("%s %v", oc.contract.ObserverID(), oc.vars)
}

func (oc *ObjectCheck) String() string {
	return fmt.Sprintf("<%s %v>", oc.contract.DisplayString(), oc.vars)
}

// PreStatementCode returns the source to emit before the checked statement.
// Always empty for now; a contract variant requiring setup scaffolding would
// populate this.
func (oc *ObjectCheck) PreStatementCode() string {
	return ""
}

// PostStatementCode returns the contract's assertion source with each
// placeholder marker replaced by the corresponding variable's name.
func (oc *ObjectCheck) PostStatementCode() string {
	return contract.LocalizeCode(oc.contract.CodeTemplate(), oc.vars...)
}

// Value returns a short canonical description of the observed value the check
// pins down. For checks over a primitive-like value it is the value's string
// form; otherwise it is the contract's type name.
func (oc *ObjectCheck) Value() string {
	switch oc.contract.Kind() {
	case contract.KindIsNotNull:
		return "!null"
	case contract.KindIsNull:
		return "null"
	case contract.KindObserverEqValue:
		if c, ok := oc.contract.(*contract.ObserverEqValue); ok {
			return fmt.Sprintf("%v", c.Value())
		}
	case contract.KindPrimValue:
		if c, ok := oc.contract.(*contract.PrimValue); ok {
			return fmt.Sprintf("%v", c.Value())
		}
	case contract.KindEnumValue:
		if c, ok := oc.contract.(*contract.EnumValue); ok {
			return c.ValueName()
		}
	}
	return fmt.Sprintf("%T", oc.contract)
}

// EvaluateOutcome resolves the check's variables to the runtime values
// captured by the execution and evaluates the contract on them.
//
// Contracts run arbitrary evaluation logic against arbitrary captured
// objects, so any non-fatal fault raised during evaluation is recovered and
// reported as EvaluationFailed rather than allowed to abort a sweep over a
// whole trace. A fatal environment fault is re-propagated unchanged.
func (oc *ObjectCheck) EvaluateOutcome(execution *sequence.Execution) Outcome {
	values, err := execution.RuntimeValues(oc.vars)
	if err != nil {
		return Outcome{kind: EvaluationFailed, cause: err}
	}
	holds, err := oc.evaluateContract(values)
	if err != nil {
		if contract.IsFatal(err) {
			panic(err)
		}
		return Outcome{kind: EvaluationFailed, cause: err}
	}
	if !holds {
		return Outcome{kind: Violated}
	}
	return Outcome{kind: Holds}
}

// Evaluate is the legacy boolean projection of EvaluateOutcome: true if the
// property holds, false if it is violated or could not be evaluated.
func (oc *ObjectCheck) Evaluate(execution *sequence.Execution) bool {
	return oc.EvaluateOutcome(execution).Bool()
}

// Guards the contract's evaluation call.
func (oc *ObjectCheck) evaluateContract(values []any) (holds bool, err error) {
	defer func() {
		// Recover panics that occur while evaluating the contract. These are
		// often caused by faults in the contract implementation or by the
		// captured objects and are reported as ordinary errors. Fatal
		// environment faults always escape.
		if p := recover(); p != nil {
			if contract.IsFatal(p) {
				panic(p)
			}
			holds = false
			err = fmt.Errorf("checking: contract panicked during evaluation: %v", p)
		}
	}()
	return oc.contract.Evaluate(values)
}
