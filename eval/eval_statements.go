package eval

import (
	"fmt"

	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/PaoloGonzalez776/V-Code/scope"
	"github.com/PaoloGonzalez776/V-Code/values"
)

// execBlock runs stmts in order against sc, stopping and returning the
// first signal (an *values.Error or a values.Return) a statement
// produces. A nil return means every statement completed normally.
func (e *Evaluator) execBlock(stmts []parser.Statement, sc *scope.Scope) values.Value {
	for _, stmt := range stmts {
		if signal := e.execStatement(stmt, sc); signal != nil {
			return signal
		}
	}
	return nil
}

func (e *Evaluator) execStatement(stmt parser.Statement, sc *scope.Scope) values.Value {
	switch s := stmt.(type) {
	case *parser.Show:
		v := e.evalExpr(s.Expr, sc)
		if isError(v) {
			return v
		}
		line := fmt.Sprintf("\U0001F4FA %s", v.Display())
		e.Output = append(e.Output, line)
		fmt.Fprintln(e.Writer, line)
		return nil

	case *parser.VarDecl:
		v := e.evalExpr(s.Expr, sc)
		if isError(v) {
			return v
		}
		sc.Bind(s.Name, v)
		return nil

	case *parser.Assign:
		v := e.evalExpr(s.Expr, sc)
		if isError(v) {
			return v
		}
		if !sc.Assign(s.Name, v) {
			return values.NewError(s.Position, "variable no definida: '%s'", s.Name)
		}
		return nil

	case *parser.If:
		cond := e.evalExpr(s.Cond, sc)
		if isError(cond) {
			return cond
		}
		if values.Truthy(cond) {
			return e.execBlock(s.Then, sc)
		}
		return e.execBlock(s.Else, sc)

	case *parser.While:
		for {
			cond := e.evalExpr(s.Cond, sc)
			if isError(cond) {
				return cond
			}
			if !values.Truthy(cond) {
				return nil
			}
			if signal := e.execBlock(s.Body, sc); signal != nil {
				return signal
			}
		}

	case *parser.For:
		start := e.evalExpr(s.Start, sc)
		if isError(start) {
			return start
		}
		end := e.evalExpr(s.End, sc)
		if isError(end) {
			return end
		}
		startInt, ok := start.(values.Int)
		if !ok {
			return values.NewError(s.Position, "el limite inicial de 'para' debe ser numero, se recibio %s", start.Kind())
		}
		endInt, ok := end.(values.Int)
		if !ok {
			return values.NewError(s.Position, "el limite final de 'para' debe ser numero, se recibio %s", end.Kind())
		}
		for i := startInt.V; i < endInt.V; i++ {
			sc.Bind(s.VarName, values.Int{V: i})
			if signal := e.execBlock(s.Body, sc); signal != nil {
				return signal
			}
		}
		return nil

	case *parser.Return:
		if s.Expr == nil {
			return values.Return{Value: values.Null{}}
		}
		v := e.evalExpr(s.Expr, sc)
		if isError(v) {
			return v
		}
		return values.Return{Value: v}

	case *parser.ExprStmt:
		v := e.evalExpr(s.Expr, sc)
		if isError(v) {
			return v
		}
		return nil

	default:
		return values.NewError(stmt.Pos(), "sentencia desconocida")
	}
}
