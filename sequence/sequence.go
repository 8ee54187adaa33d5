package sequence

import "fmt"

// A Sequence is a recorded, ordered series of operations performed against a
// program under test. The checking packages never inspect the operations
// themselves; the sequence serves as the identity anchor for the variables
// that reference positions within it.
type Sequence struct {
	statements []string
}

// Create a sequence from the descriptions of its recorded statements, one per
// position.
func New(statements ...string) *Sequence {
	s := &Sequence{
		statements: make([]string, len(statements)),
	}
	copy(s.statements, statements)
	return s
}

// The number of recorded positions in the sequence.
func (s *Sequence) Size() int {
	return len(s.statements)
}

// The description of the statement at the provided position.
func (s *Sequence) Statement(index int) string {
	return s.statements[index]
}

// A Variable is a symbolic reference to one position within a recorded
// sequence. It carries no runtime value itself; values are resolved through
// an Execution.
type Variable struct {
	Seq   *Sequence
	Index int
}

// Create a variable referencing the provided position of seq.
func NewVariable(seq *Sequence, index int) *Variable {
	return &Variable{
		Seq:   seq,
		Index: index,
	}
}

// The rendered source-level name of the variable.
func (v *Variable) Name() string {
	return fmt.Sprintf("var%d", v.Index)
}

func (v *Variable) String() string {
	return v.Name()
}

// Compares two variables
//
// Returns true if both reference the same position of the same sequence or if both are nil.
// Returns false otherwise.
func (v *Variable) Equals(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Seq == other.Seq && v.Index == other.Index
}
