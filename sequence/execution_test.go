package sequence

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

func TestRuntimeValuesResolvesInOrder(t *testing.T) {
	seq := New("x := 1", "y := 2", "z := 3")
	exec := NewExecution(
		NewNormalExecution(1),
		NewNormalExecution(2),
		NewNormalExecution(3),
	)
	vars := []*Variable{NewVariable(seq, 2), NewVariable(seq, 0), NewVariable(seq, 1)}
	values, err := exec.RuntimeValues(vars)
	if err != nil {
		t.Fatalf("Received unexpected error resolving values: %v", err)
	}
	if !slices.Equal(values, []any{3, 1, 2}) {
		t.Errorf("Values were not resolved in variable order. Got %v", values)
	}
}

func TestRuntimeValuesMissingValue(t *testing.T) {
	seq := New("a", "b", "c")
	exec := NewExecution(
		NewNormalExecution("ok"),
		NewExceptionalExecution(errors.New("step raised")),
		NotExecuted,
	)
	for i, test := range missingValueTest {
		values, err := exec.RuntimeValues([]*Variable{NewVariable(seq, test.index)})
		if err == nil {
			t.Errorf("Expected an error on test %v. Got values %v", i, values)
		}
		if values != nil {
			t.Errorf("Expected no partial result on test %v. Got %v", i, values)
		}
	}
}

var missingValueTest = []struct {
	index int
}{
	{1},  // faulted position
	{2},  // never executed
	{5},  // out of range
	{-1}, // out of range
}

func TestOutcomeString(t *testing.T) {
	for i, test := range outcomeStringTest {
		if out := test.outcome.String(); out != test.expected {
			t.Errorf("Received unexpected string on test %v. Got %v", i, out)
		}
	}
}

var outcomeStringTest = []struct {
	outcome  Outcome
	expected string
}{
	{NewNormalExecution(5), "<normal execution, value: 5>"},
	{NewExceptionalExecution(errors.New("boom")), "<exceptional execution, fault: boom>"},
	{NotExecuted, "<not executed>"},
}
