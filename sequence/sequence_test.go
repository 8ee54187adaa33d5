package sequence

import "testing"

func TestVariableName(t *testing.T) {
	seq := New("a", "b", "c")
	for i := 0; i < seq.Size(); i++ {
		v := NewVariable(seq, i)
		want := map[int]string{0: "var0", 1: "var1", 2: "var2"}[i]
		if v.Name() != want {
			t.Errorf("Received unexpected name for variable %v. Got %v", i, v.Name())
		}
		if v.String() != v.Name() {
			t.Errorf("String and Name diverge for variable %v", i)
		}
	}
}

func TestVariableEquals(t *testing.T) {
	for i, test := range variableEqualsTest {
		if out := test.a.Equals(test.b); out != test.expected {
			t.Errorf("Received unexpected bool from Equals on test %v. Got %v", i, out)
		}
		// Symmetry
		if out := test.b.Equals(test.a); out != test.expected {
			t.Errorf("Equals is not symmetric on test %v. Got %v", i, out)
		}
	}
}

var seqA = New("a", "b")
var seqB = New("a", "b")

var variableEqualsTest = []struct {
	a        *Variable
	b        *Variable
	expected bool
}{
	{NewVariable(seqA, 0), NewVariable(seqA, 0), true},
	{NewVariable(seqA, 0), NewVariable(seqA, 1), false},
	{NewVariable(seqA, 1), NewVariable(seqB, 1), false},
	{nil, nil, true},
	{NewVariable(seqA, 0), nil, false},
}
