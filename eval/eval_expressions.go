package eval

import (
	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/PaoloGonzalez776/V-Code/scope"
	"github.com/PaoloGonzalez776/V-Code/values"
)

func (e *Evaluator) evalExpr(expr parser.Expression, sc *scope.Scope) values.Value {
	switch n := expr.(type) {
	case *parser.IntLit:
		return values.Int{V: n.Value}
	case *parser.FloatLit:
		return values.Float{V: n.Value}
	case *parser.StringLit:
		return values.Text{V: n.Value}
	case *parser.BoolLit:
		return values.Bool{V: n.Value}

	case *parser.VarRef:
		v, ok := sc.Lookup(n.Name)
		if !ok {
			return values.NewError(n.Position, "variable no definida: '%s'", n.Name)
		}
		return v

	case *parser.Unary:
		return e.evalUnary(n, sc)

	case *parser.Binary:
		return e.evalBinary(n, sc)

	case *parser.Call:
		return e.callFunction(n.Name, n.Args, sc, n.Position)

	default:
		return values.NewError(expr.Pos(), "expresion desconocida")
	}
}

func (e *Evaluator) evalUnary(n *parser.Unary, sc *scope.Scope) values.Value {
	operand := e.evalExpr(n.Operand, sc)
	if isError(operand) {
		return operand
	}
	switch n.Op {
	case parser.OpNot:
		return values.Bool{V: !values.Truthy(operand)}
	case parser.OpNeg:
		switch v := operand.(type) {
		case values.Int:
			return values.Int{V: -v.V}
		case values.Float:
			return values.Float{V: -v.V}
		default:
			return values.NewError(n.Position, "operador unario '-' no aplicable a %s", operand.Kind())
		}
	default:
		return values.NewError(n.Position, "operador unario desconocido")
	}
}

func (e *Evaluator) evalBinary(n *parser.Binary, sc *scope.Scope) values.Value {
	left := e.evalExpr(n.Left, sc)
	if isError(left) {
		return left
	}
	right := e.evalExpr(n.Right, sc)
	if isError(right) {
		return right
	}

	switch n.Op {
	case parser.OpOr:
		return values.Bool{V: values.Truthy(left) || values.Truthy(right)}
	case parser.OpAnd:
		return values.Bool{V: values.Truthy(left) && values.Truthy(right)}
	case parser.OpEq:
		return values.Bool{V: values.Equal(left, right)}
	case parser.OpNe:
		return values.Bool{V: !values.Equal(left, right)}
	case parser.OpLt, parser.OpLe, parser.OpGt, parser.OpGe:
		return evalComparison(n.Op, left, right, n.Position)
	case parser.OpAdd:
		return evalAdd(left, right, n.Position)
	case parser.OpSub, parser.OpMul, parser.OpDiv:
		return evalArith(n.Op, left, right, n.Position)
	case parser.OpMod:
		return evalMod(left, right, n.Position)
	default:
		return values.NewError(n.Position, "operador binario desconocido")
	}
}

// asNumeric widens an Int/Float pair to a common representation: if
// either side is Float, both are returned as float64; otherwise both as
// int64. ok is false if either operand is not numeric.
func asNumeric(left, right values.Value) (lf, rf float64, li, ri int64, bothInt, ok bool) {
	switch l := left.(type) {
	case values.Int:
		switch r := right.(type) {
		case values.Int:
			return 0, 0, l.V, r.V, true, true
		case values.Float:
			return float64(l.V), r.V, 0, 0, false, true
		}
	case values.Float:
		switch r := right.(type) {
		case values.Int:
			return l.V, float64(r.V), 0, 0, false, true
		case values.Float:
			return l.V, r.V, 0, 0, false, true
		}
	}
	return 0, 0, 0, 0, false, false
}

func evalAdd(left, right values.Value, pos values.Position) values.Value {
	if lt, ok := left.(values.Text); ok {
		if rt, ok := right.(values.Text); ok {
			return values.Text{V: lt.V + rt.V}
		}
		return values.Text{V: lt.V + right.Display()}
	}
	if rt, ok := right.(values.Text); ok {
		return values.Text{V: left.Display() + rt.V}
	}

	lf, rf, li, ri, bothInt, ok := asNumeric(left, right)
	if !ok {
		return values.NewError(pos, "operador '+' no admite %s y %s", left.Kind(), right.Kind())
	}
	if bothInt {
		return values.Int{V: li + ri}
	}
	return values.Float{V: lf + rf}
}

func evalArith(op parser.BinaryOp, left, right values.Value, pos values.Position) values.Value {
	lf, rf, li, ri, bothInt, ok := asNumeric(left, right)
	if !ok {
		return values.NewError(pos, "operador '%s' no admite %s y %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case parser.OpSub:
		if bothInt {
			return values.Int{V: li - ri}
		}
		return values.Float{V: lf - rf}
	case parser.OpMul:
		if bothInt {
			return values.Int{V: li * ri}
		}
		return values.Float{V: lf * rf}
	case parser.OpDiv:
		if bothInt {
			if ri == 0 {
				return values.NewError(pos, "division entre cero")
			}
			return values.Int{V: li / ri}
		}
		if rf == 0.0 {
			return values.NewError(pos, "division entre cero")
		}
		return values.Float{V: lf / rf}
	default:
		return values.NewError(pos, "operador aritmetico desconocido")
	}
}

func evalMod(left, right values.Value, pos values.Position) values.Value {
	li, lok := left.(values.Int)
	ri, rok := right.(values.Int)
	if !lok || !rok {
		return values.NewError(pos, "operador '%%' requiere operandos numero, se recibio %s y %s", left.Kind(), right.Kind())
	}
	if ri.V == 0 {
		return values.NewError(pos, "division entre cero")
	}
	return values.Int{V: li.V % ri.V}
}

func evalComparison(op parser.BinaryOp, left, right values.Value, pos values.Position) values.Value {
	lf, rf, li, ri, bothInt, ok := asNumeric(left, right)
	if !ok {
		return values.NewError(pos, "operador '%s' no admite %s y %s", op, left.Kind(), right.Kind())
	}
	if bothInt {
		switch op {
		case parser.OpLt:
			return values.Bool{V: li < ri}
		case parser.OpLe:
			return values.Bool{V: li <= ri}
		case parser.OpGt:
			return values.Bool{V: li > ri}
		case parser.OpGe:
			return values.Bool{V: li >= ri}
		}
	}
	switch op {
	case parser.OpLt:
		return values.Bool{V: lf < rf}
	case parser.OpLe:
		return values.Bool{V: lf <= rf}
	case parser.OpGt:
		return values.Bool{V: lf > rf}
	case parser.OpGe:
		return values.Bool{V: lf >= rf}
	}
	return values.NewError(pos, "operador de comparacion desconocido")
}
