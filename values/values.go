// Package values defines the runtime value vocabulary the evaluator
// produces and consumes: the Int/Float/Text/Bool/Null tagged union,
// plus the two propagation signals (Error, Return) used to unwind
// errors and `retornar` through the statement tree.
package values

import (
	"fmt"
	"strconv"

	"github.com/PaoloGonzalez776/V-Code/lexer"
)

// Position is re-exported from lexer so evaluator errors can be built
// without importing lexer directly.
type Position = lexer.Position

// Kind identifies the variant of a Value.
type Kind string

const (
	IntKind    Kind = "numero"
	FloatKind  Kind = "decimal"
	TextKind   Kind = "texto"
	BoolKind   Kind = "booleano"
	NullKind   Kind = "nulo"
	ErrorKind  Kind = "error"
	ReturnKind Kind = "retorno"
)

// Value is anything the evaluator can produce: a V-Code runtime datum,
// or one of the two internal propagation signals (Error, Return).
type Value interface {
	Kind() Kind
	Display() string
}

// Int is a 64-bit signed integer value.
type Int struct{ V int64 }

func (Int) Kind() Kind          { return IntKind }
func (i Int) Display() string   { return strconv.FormatInt(i.V, 10) }

// Float is a 64-bit floating-point value, displayed with the shortest
// round-trip decimal representation.
type Float struct{ V float64 }

func (Float) Kind() Kind        { return FloatKind }
func (f Float) Display() string { return strconv.FormatFloat(f.V, 'g', -1, 64) }

// Text is a string value.
type Text struct{ V string }

func (Text) Kind() Kind        { return TextKind }
func (t Text) Display() string { return t.V }

// Bool is a boolean value, displayed using the Spanish literals.
type Bool struct{ V bool }

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) Display() string {
	if b.V {
		return "verdadero"
	}
	return "falso"
}

// Null is the sole inhabitant of the Null variant.
type Null struct{}

func (Null) Kind() Kind      { return NullKind }
func (Null) Display() string { return "nulo" }

// Error is not a user-facing Value variant — it is the propagation
// signal for every runtime failure (NameError, TypeMismatch,
// Arithmetic, ArityMismatch). An Error returned from evaluating any
// node must bubble up unchanged until it aborts the pipeline.
type Error struct {
	Pos Position
	Msg string
}

func (Error) Kind() Kind      { return ErrorKind }
func (e Error) Display() string { return e.Msg }

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// NewError builds an Error at pos with a formatted message.
func NewError(pos Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Return wraps the value of an in-flight `retornar`. Every statement
// executor must check for it and, if present, propagate it unchanged
// rather than continuing to the next statement.
type Return struct {
	Value Value
}

func (Return) Kind() Kind        { return ReturnKind }
func (r Return) Display() string { return r.Value.Display() }

// Truthy implements the evaluator's total truthiness function: every
// Value maps to a bool without error.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Bool:
		return x.V
	case Null:
		return false
	case Int:
		return x.V != 0
	case Float:
		return x.V != 0.0
	case Text:
		return x.V != ""
	default:
		return false
	}
}

// Equal implements `==`: structural equality within a variant, always
// false across distinct variants (including Int vs Float).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av.V == bv.V
	case Float:
		bv, ok := b.(Float)
		return ok && av.V == bv.V
	case Text:
		bv, ok := b.(Text)
		return ok && av.V == bv.V
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.V == bv.V
	case Null:
		_, ok := b.(Null)
		return ok
	default:
		return false
	}
}
