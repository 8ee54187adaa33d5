package contract

// A Contract is a reusable, parametrized property over a fixed-arity tuple of
// runtime values captured while executing a recorded sequence. Contracts are
// third-party-extensible: implementations may run arbitrary evaluation logic
// against arbitrary captured objects.
type Contract interface {
	// The number of runtime values the contract is evaluated over.
	Arity() int

	// Evaluate the property on an ordered tuple of runtime values.
	// The length and order of values match the variables the contract was
	// bound to.
	//
	// Returns true if the property holds for the values, false otherwise.
	// Returns an error if the property could not be evaluated. Implementations
	// may also panic; callers are expected to guard the call.
	// A fault belonging to the fatal category (see FatalError) must never be
	// swallowed by a caller.
	Evaluate(values []any) (bool, error)

	// The variant tag used for closed-set dispatch, such as rendering a
	// canonical observed-value summary. Implementations outside this package
	// should return KindOther.
	Kind() Kind

	// A source code template for the assertion the contract represents.
	// Arguments appear as the placeholder markers x0, x1, ... which are
	// substituted with variable names by LocalizeCode.
	CodeTemplate() string

	// A human readable form of the property, used for diagnostics only.
	DisplayString() string

	// A stable identity string for the observed property, independent of the
	// variables it is bound to. Used to build coarse deduplication keys.
	ObserverID() string

	// Compares the contract to another contract.
	//
	// Returns true if both represent the same property with the same stored
	// state. Two equal contracts must return the same Hash.
	Equals(other Contract) bool

	// A hash consistent with Equals.
	Hash() uint64
}

// Kind identifies a contract variant for closed-set dispatch. The set is
// deliberately closed: value-summary rendering matches on it exhaustively and
// unknown variants fall through to a type-name default.
type Kind int

const (
	// Any contract variant without dedicated value-summary rendering.
	KindOther Kind = iota
	// The captured value is not null.
	KindIsNotNull
	// The captured value is null.
	KindIsNull
	// An observer method's result equals a fixed stored value.
	KindObserverEqValue
	// The captured value equals a stored primitive-like snapshot.
	KindPrimValue
	// The captured value equals a stored named enum constant.
	KindEnumValue
)
