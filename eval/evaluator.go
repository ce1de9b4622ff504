// Package eval implements the tree-walking evaluator: a two-pass driver
// (register functions, then run scenes in source order) plus statement
// and expression execution over the parser's AST.
package eval

import (
	"io"
	"os"

	"github.com/PaoloGonzalez776/V-Code/function"
	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/PaoloGonzalez776/V-Code/scope"
	"github.com/PaoloGonzalez776/V-Code/values"
)

// Evaluator holds everything a run needs: the global frame, the
// function table, an accumulating output log, and the writer `mostrar`
// prints to. Each call to New produces a fresh, independent Evaluator —
// there is no state shared across runs.
type Evaluator struct {
	Global    *scope.Scope
	Functions map[string]*function.Function
	Writer    io.Writer

	// Output is the run-scoped log of formatted `mostrar` lines, in the
	// order they were produced, exposed for in-process test assertions.
	Output []string
}

// New creates an Evaluator ready to run a Program, writing `mostrar`
// output to os.Stdout by default.
func New() *Evaluator {
	return &Evaluator{
		Global:    scope.New(nil),
		Functions: make(map[string]*function.Function),
		Writer:    os.Stdout,
	}
}

// SetWriter redirects where `mostrar` output is printed; the run's
// Output log is populated regardless of the writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run registers every top-level Function, then executes every Scene
// body in source order. It returns the first error encountered, a
// *values.Error that carries its source position.
func (e *Evaluator) Run(prog *parser.Program) error {
	for _, decl := range prog.Declarations {
		fn, ok := decl.(*parser.Function)
		if !ok {
			continue
		}
		if _, exists := e.Functions[fn.Name]; exists {
			return values.NewError(fn.Pos(), "funcion redeclarada: '%s'", fn.Name)
		}
		e.Functions[fn.Name] = &function.Function{
			Name:   fn.Name,
			Params: fn.Params,
			Body:   fn.Body,
			Defn:   e.Global,
		}
	}

	for _, decl := range prog.Declarations {
		scene, ok := decl.(*parser.Scene)
		if !ok {
			continue
		}
		result := e.execBlock(scene.Body, e.Global)
		if errVal, ok := result.(*values.Error); ok {
			return errVal
		}
		if isReturn(result) {
			// A bare `retornar` escaping a scene body just ends that
			// scene early; it is not an error and later scenes still run.
			continue
		}
	}
	return nil
}

// callFunction implements the call mechanics from the evaluator spec:
// arity check, left-to-right argument evaluation in the caller's
// environment, a fresh frame parented on the function's defining scope
// (always the global frame, since declarations are top-level only),
// positional parameter binding, body execution, and Null on fall-off.
func (e *Evaluator) callFunction(name string, args []parser.Expression, callerScope *scope.Scope, pos values.Position) values.Value {
	fn, ok := e.Functions[name]
	if !ok {
		return values.NewError(pos, "funcion desconocida: '%s'", name)
	}
	if len(args) != len(fn.Params) {
		return values.NewError(pos, "numero incorrecto de argumentos para '%s': se esperaban %d, se recibieron %d", name, len(fn.Params), len(args))
	}

	argVals := make([]values.Value, len(args))
	for i, a := range args {
		v := e.evalExpr(a, callerScope)
		if isError(v) {
			return v
		}
		argVals[i] = v
	}

	callScope := scope.New(fn.Defn)
	for i, p := range fn.Params {
		callScope.Bind(p.Name, argVals[i])
	}

	result := e.execBlock(fn.Body, callScope)
	if isError(result) {
		return result
	}
	if ret, ok := result.(values.Return); ok {
		return ret.Value
	}
	return values.Null{}
}

func isError(v values.Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(*values.Error)
	return ok
}

func isReturn(v values.Value) bool {
	if v == nil {
		return false
	}
	_, ok := v.(values.Return)
	return ok
}
