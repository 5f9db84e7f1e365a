package alone

import (
	"fmt"
	"strings"
)

// ValueType identifies the variant held by a Value.
type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeNumber
	ValueTypeCallable
	ValueTypeCons
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeNumber:   "number",
	ValueTypeCallable: "callable",
	ValueTypeCons:     "cons",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression. Values are immutable.
type Value struct {
	v interface{}

	Type ValueType
}

// Cons is a pair of values. Chains of pairs terminated by Nil are lists.
type Cons struct {
	Car *Value
	Cdr *Value
}

var (
	// Nil is the empty value, it is falsy.
	Nil = &Value{Type: ValueTypeNil}
	// True is the canonical truthy value.
	True = NewNumberValue(1)
)

func NewNumberValue(n int64) *Value {
	return &Value{v: n, Type: ValueTypeNumber}
}

func NewCallableValue(b Builtin) *Value {
	return &Value{v: b, Type: ValueTypeCallable}
}

func NewConsValue(car *Value, cdr *Value) *Value {
	return &Value{v: &Cons{Car: car, Cdr: cdr}, Type: ValueTypeCons}
}

// NewListValue builds a proper list out of the given values. An empty list
// is Nil.
func NewListValue(values ...*Value) *Value {
	list := Nil
	for i := len(values) - 1; i >= 0; i-- {
		list = NewConsValue(values[i], list)
	}
	return list
}

// IsTruthy returns false for Nil and for the number zero, true otherwise.
func (v *Value) IsTruthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeNumber:
		return v.Int() != 0
	}
	return true
}

// Equal compares two values structurally.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || v.Type != o.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeCons:
		a, b := v.Cons(), o.Cons()
		return a.Car.Equal(b.Car) && a.Cdr.Equal(b.Cdr)
	}
	return v.v == o.v
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return "Nil"
	case ValueTypeNumber:
		return fmt.Sprintf("%d", v.Int())
	case ValueTypeCallable:
		return "<callable>"
	case ValueTypeCons:
		var buf strings.Builder
		writeCons(&buf, v.Cons())
		return buf.String()
	}
	return fmt.Sprintf("%v", v.v)
}

func writeCons(buf *strings.Builder, c *Cons) {
	buf.WriteString("(")
	writeValue(buf, c.Car)
	buf.WriteString(", ")
	writeValue(buf, c.Cdr)
	buf.WriteString(")")
}

func writeValue(buf *strings.Builder, v *Value) {
	if v.Type == ValueTypeCons {
		writeCons(buf, v.Cons())
		return
	}
	buf.WriteString(v.String())
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Builtin() Builtin {
	return v.v.(Builtin)
}

func (v Value) Cons() *Cons {
	return v.v.(*Cons)
}
