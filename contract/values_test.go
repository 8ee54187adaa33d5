package contract

import (
	"errors"
	"testing"
)

var errAny = errors.New("some fault")

func TestSnapshotContractEvaluate(t *testing.T) {
	for i, test := range snapshotEvaluateTest {
		holds, err := test.contract.Evaluate([]any{test.value})
		if err != nil {
			t.Fatalf("Received unexpected error on test %v: %v", i, err)
		}
		if holds != test.expected {
			t.Errorf("Received unexpected bool on test %v. Got %v", i, holds)
		}
	}
}

var nilMap map[string]int

var snapshotEvaluateTest = []struct {
	contract Contract
	value    any
	expected bool
}{
	{NewIsNotNull(), "something", true},
	{NewIsNotNull(), nil, false},
	{NewIsNotNull(), nilMap, false}, // typed nil
	{NewIsNull(), nil, true},
	{NewIsNull(), nilMap, true},
	{NewIsNull(), 0, false},
	{NewPrimValue(5), 5, true},
	{NewPrimValue(5), 6, false},
	{NewPrimValue("a"), "a", true},
	{NewEnumValue("North", 0), 0, true},
	{NewEnumValue("North", 0), 1, false},
	{NewObserverEqValue("Size", 3), 3, true},
	{NewObserverEqValue("Size", 3), 4, false},
}

func TestSnapshotContractEquals(t *testing.T) {
	for i, test := range snapshotEqualsTest {
		if out := test.a.Equals(test.b); out != test.expected {
			t.Errorf("Received unexpected bool from Equals on test %v. Got %v", i, out)
		}
		if test.expected && test.a.Hash() != test.b.Hash() {
			t.Errorf("Equal contracts hash differently on test %v", i)
		}
	}
}

var snapshotEqualsTest = []struct {
	a        Contract
	b        Contract
	expected bool
}{
	{NewIsNotNull(), NewIsNotNull(), true},
	{NewIsNull(), NewIsNull(), true},
	{NewIsNotNull(), NewIsNull(), false},
	{NewPrimValue(5), NewPrimValue(5), true},
	{NewPrimValue(5), NewPrimValue(6), false},
	{NewPrimValue(5), NewEnumValue("five", 5), false},
	{NewEnumValue("North", 0), NewEnumValue("North", 0), true},
	{NewEnumValue("North", 0), NewEnumValue("South", 0), false},
	{NewObserverEqValue("Size", 3), NewObserverEqValue("Size", 3), true},
	{NewObserverEqValue("Size", 3), NewObserverEqValue("Len", 3), false},
	{NewObserverEqValue("Size", 3), NewObserverEqValue("Size", 4), false},
}

func TestSnapshotContractArity(t *testing.T) {
	contracts := []Contract{
		NewIsNotNull(), NewIsNull(), NewPrimValue(1), NewEnumValue("A", 1), NewObserverEqValue("Size", 1),
	}
	for i, c := range contracts {
		if c.Arity() != 1 {
			t.Errorf("Received unexpected arity on test %v. Got %v", i, c.Arity())
		}
	}
}

func TestIsFatal(t *testing.T) {
	for i, test := range isFatalTest {
		if out := IsFatal(test.fault); out != test.expected {
			t.Errorf("Received unexpected bool from IsFatal on test %v. Got %v", i, out)
		}
	}
}

type wrapError struct{ err error }

func (w wrapError) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapError) Unwrap() error { return w.err }

var isFatalTest = []struct {
	fault    any
	expected bool
}{
	{Fatal(nil), true},
	{Fatal(errAny), true},
	{wrapError{err: Fatal(errAny)}, true},
	{errAny, false},
	{"a panic message", false},
	{42, false},
	{nil, false},
}
