// Package object defines MIL's runtime value model: the closed set of
// values evaluation can produce.
//
// Grounded on the teacher's objects.GoMixObject interface
// (GetType/ToString/ToObject), narrowed from its dozen variants down to
// spec.md §3.3's closed six: Integer, Boolean, Null, ReturnValue, Error,
// Function. Everything else the teacher supports — Float, String, Array,
// Map, Set, List, Tuple, Struct, Range, user objects — has no SPEC_FULL
// component (spec.md Non-goals: "user-defined types beyond the built-in
// set", "string operations beyond lexing") and is dropped, see DESIGN.md.
package object

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dariusmocan/interpreter/ast"
)

// Type tags a runtime value's variant for type switches and error
// messages, mirroring the teacher's GoMixType string-constant approach.
type Type string

const (
	INTEGER_OBJ      Type = "INTEGER"
	BOOLEAN_OBJ      Type = "BOOLEAN"
	NULL_OBJ         Type = "NULL"
	RETURN_VALUE_OBJ Type = "RETURN_VALUE"
	ERROR_OBJ        Type = "ERROR"
	FUNCTION_OBJ     Type = "FUNCTION"
)

// Object is the interface every runtime value satisfies: a type tag for
// dispatch and a human-readable rendering for the REPL.
type Object interface {
	Type() Type
	Inspect() string
}

// Integer wraps a 64-bit signed integer.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return INTEGER_OBJ }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean wraps a bool. The evaluator reuses two singletons (TRUE/FALSE)
// rather than allocating fresh Booleans each time, per the teacher's
// nativeBoolToBooleanObject-style pattern, so `==`/`!=` comparisons on
// booleans can compare by identity safely.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// Null is the sole representation of the absent/void value. There is
// exactly one meaningful instance of it, shared by the evaluator.
type Null struct{}

func (n *Null) Type() Type      { return NULL_OBJ }
func (n *Null) Inspect() string { return "null" }

// ReturnValue is an internal marker wrapping a value on its way out of a
// `return` statement. It must never be user-visible: the evaluator unwraps
// it at the program boundary and at each function call's boundary
// (spec.md §4.3).
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() Type      { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Error is the runtime short-circuit carrier. Its presence at any
// recursion point halts further evaluation of sibling subexpressions
// (spec.md §4.3, §7).
type Error struct {
	Message string
}

func (e *Error) Type() Type      { return ERROR_OBJ }
func (e *Error) Inspect() string { return "ERROR : " + e.Message }

// Function is a closure: parameters and body are borrowed references into
// the AST, Env is the lexical scope captured live at the function
// literal's evaluation (shared by reference, not copied — spec.md §8.1
// "Closure" invariant).
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn")
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// Environment is the narrow interface object.Function needs from the
// environment package, kept here to avoid object importing environment
// (environment stores object.Object values, so the dependency only runs
// one way).
type Environment interface {
	Get(name string) (Object, bool)
	Set(name string, val Object) Object
}
