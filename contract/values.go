package contract

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// The value-snapshot contract variants. Each pins down one observed runtime
// value: its nullness, its primitive-like value, the enum constant it equals
// or the result an observer method returned when the sequence ran. All have
// arity one.

// IsNotNull checks that the captured value is not nil.
type IsNotNull struct{}

func NewIsNotNull() *IsNotNull {
	return &IsNotNull{}
}

func (c *IsNotNull) Arity() int {
	return 1
}

func (c *IsNotNull) Evaluate(values []any) (bool, error) {
	return !isNil(values[0]), nil
}

func (c *IsNotNull) Kind() Kind {
	return KindIsNotNull
}

func (c *IsNotNull) CodeTemplate() string {
	return "x0 != nil"
}

func (c *IsNotNull) DisplayString() string {
	return "x0 != nil"
}

func (c *IsNotNull) ObserverID() string {
	return "IsNotNull"
}

func (c *IsNotNull) Equals(other Contract) bool {
	return other != nil && other.Kind() == KindIsNotNull
}

func (c *IsNotNull) Hash() uint64 {
	return hashParts("IsNotNull")
}

// IsNull checks that the captured value is nil.
type IsNull struct{}

func NewIsNull() *IsNull {
	return &IsNull{}
}

func (c *IsNull) Arity() int {
	return 1
}

func (c *IsNull) Evaluate(values []any) (bool, error) {
	return isNil(values[0]), nil
}

func (c *IsNull) Kind() Kind {
	return KindIsNull
}

func (c *IsNull) CodeTemplate() string {
	return "x0 == nil"
}

func (c *IsNull) DisplayString() string {
	return "x0 == nil"
}

func (c *IsNull) ObserverID() string {
	return "IsNull"
}

func (c *IsNull) Equals(other Contract) bool {
	return other != nil && other.Kind() == KindIsNull
}

func (c *IsNull) Hash() uint64 {
	return hashParts("IsNull")
}

// PrimValue checks that the captured value equals a primitive-like snapshot
// taken when the sequence originally ran.
type PrimValue struct {
	value any
}

func NewPrimValue(value any) *PrimValue {
	return &PrimValue{value: value}
}

// The stored snapshot value.
func (c *PrimValue) Value() any {
	return c.value
}

func (c *PrimValue) Arity() int {
	return 1
}

func (c *PrimValue) Evaluate(values []any) (bool, error) {
	return reflect.DeepEqual(values[0], c.value), nil
}

func (c *PrimValue) Kind() Kind {
	return KindPrimValue
}

func (c *PrimValue) CodeTemplate() string {
	return fmt.Sprintf("x0 == %#v", c.value)
}

func (c *PrimValue) DisplayString() string {
	return fmt.Sprintf("x0 == %v", c.value)
}

func (c *PrimValue) ObserverID() string {
	return fmt.Sprintf("PrimValue(%v)", c.value)
}

func (c *PrimValue) Equals(other Contract) bool {
	o, ok := other.(*PrimValue)
	return ok && reflect.DeepEqual(c.value, o.value)
}

func (c *PrimValue) Hash() uint64 {
	return hashParts("PrimValue", fmt.Sprintf("%#v", c.value))
}

// EnumValue checks that the captured value equals a named enum constant.
type EnumValue struct {
	name  string
	value any
}

func NewEnumValue(name string, value any) *EnumValue {
	return &EnumValue{
		name:  name,
		value: value,
	}
}

// The name of the constant the contract pins the value to.
func (c *EnumValue) ValueName() string {
	return c.name
}

func (c *EnumValue) Arity() int {
	return 1
}

func (c *EnumValue) Evaluate(values []any) (bool, error) {
	return reflect.DeepEqual(values[0], c.value), nil
}

func (c *EnumValue) Kind() Kind {
	return KindEnumValue
}

func (c *EnumValue) CodeTemplate() string {
	return fmt.Sprintf("x0 == %s", c.name)
}

func (c *EnumValue) DisplayString() string {
	return fmt.Sprintf("x0 == %s", c.name)
}

func (c *EnumValue) ObserverID() string {
	return fmt.Sprintf("EnumValue(%s)", c.name)
}

func (c *EnumValue) Equals(other Contract) bool {
	o, ok := other.(*EnumValue)
	return ok && c.name == o.name && reflect.DeepEqual(c.value, o.value)
}

func (c *EnumValue) Hash() uint64 {
	return hashParts("EnumValue", c.name, fmt.Sprintf("%#v", c.value))
}

// ObserverEqValue checks that the result a named observer method produced
// when the sequence ran equals a fixed stored value. The bound variable
// denotes the recorded observer result, so evaluation compares the captured
// value directly against the snapshot.
type ObserverEqValue struct {
	observer string
	value    any
}

func NewObserverEqValue(observer string, value any) *ObserverEqValue {
	return &ObserverEqValue{
		observer: observer,
		value:    value,
	}
}

// The stored result the observer is expected to return.
func (c *ObserverEqValue) Value() any {
	return c.value
}

func (c *ObserverEqValue) Arity() int {
	return 1
}

func (c *ObserverEqValue) Evaluate(values []any) (bool, error) {
	return reflect.DeepEqual(values[0], c.value), nil
}

func (c *ObserverEqValue) Kind() Kind {
	return KindObserverEqValue
}

func (c *ObserverEqValue) CodeTemplate() string {
	return fmt.Sprintf("x0 == %#v", c.value)
}

func (c *ObserverEqValue) DisplayString() string {
	return fmt.Sprintf("%s: x0 == %v", c.observer, c.value)
}

func (c *ObserverEqValue) ObserverID() string {
	return fmt.Sprintf("ObserverEqValue(%s)", c.observer)
}

func (c *ObserverEqValue) Equals(other Contract) bool {
	o, ok := other.(*ObserverEqValue)
	return ok && c.observer == o.observer && reflect.DeepEqual(c.value, o.value)
}

func (c *ObserverEqValue) Hash() uint64 {
	return hashParts("ObserverEqValue", c.observer, fmt.Sprintf("%#v", c.value))
}

// Reports whether a captured value is nil, including typed nil values stored
// in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func hashParts(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
