// Package function holds the runtime representation of a user-defined
// V-Code function: its declared shape plus the scope it closed over at
// registration time.
package function

import (
	"fmt"

	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/PaoloGonzalez776/V-Code/scope"
	"github.com/PaoloGonzalez776/V-Code/values"
)

// Function is a callable entry in the evaluator's function table.
//
// Defn is the scope active when the function was registered, held by
// reference rather than copied. Because V-Code functions can only be
// declared at the top level (the grammar has no nested `funcion`), Defn
// is always the live global frame — so parenting each call's fresh frame
// on it (see eval's call mechanics) produces "globals + locals" scoping:
// a callee sees the current globals and its own parameters, nothing from
// the caller's locals, its assignments to globals persist, and its own
// local bindings vanish with the call frame on return.
type Function struct {
	Name   string
	Params []parser.Parameter
	Body   []parser.Statement
	Defn   *scope.Scope
}

func (Function) Kind() values.Kind { return "funcion" }

func (f Function) Display() string {
	args := ""
	for i, p := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += p.Name
	}
	return fmt.Sprintf("funcion(%s(%s))", f.Name, args)
}
