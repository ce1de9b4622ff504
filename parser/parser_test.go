package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramSceneWithShow(t *testing.T) {
	prog, err := ParseProgram(`escena Principal { mostrar "hola" }`)
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 1)

	scene, ok := prog.Declarations[0].(*Scene)
	require.True(t, ok)
	assert.Equal(t, "Principal", scene.Name)
	require.Len(t, scene.Body, 1)

	show, ok := scene.Body[0].(*Show)
	require.True(t, ok)
	lit, ok := show.Expr.(*StringLit)
	require.True(t, ok)
	assert.Equal(t, "hola", lit.Value)
}

func TestParseFunctionWithParamsAndReturnType(t *testing.T) {
	src := `funcion sumar(a: numero, b: numero): numero {
		retornar a + b
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 1)

	fn, ok := prog.Declarations[0].(*Function)
	require.True(t, ok)
	assert.Equal(t, "sumar", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, TypeNumber, fn.Params[0].DeclaredType)
	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, TypeNumber, *fn.ReturnType)

	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*Return)
	require.True(t, ok)
	bin, ok := ret.Expr.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpAdd, bin.Op)
}

func TestParseVarDeclAndAssign(t *testing.T) {
	src := `escena E {
		var x = 1
		x = 2
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	require.Len(t, scene.Body, 2)

	decl, ok := scene.Body[0].(*VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)

	assign, ok := scene.Body[1].(*Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseBareCallStatementIsNotMistakenForAssign(t *testing.T) {
	src := `escena E {
		saludar()
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	require.Len(t, scene.Body, 1)

	exprStmt, ok := scene.Body[0].(*ExprStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expr.(*Call)
	require.True(t, ok)
	assert.Equal(t, "saludar", call.Name)
	assert.Empty(t, call.Args)
}

func TestParseIfSino(t *testing.T) {
	src := `escena E {
		si x > 0 {
			mostrar "positivo"
		} sino {
			mostrar "no positivo"
		}
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	ifStmt, ok := scene.Body[0].(*If)
	require.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseWhileAndFor(t *testing.T) {
	src := `escena E {
		mientras x < 10 {
			x = x + 1
		}
		para i = 0, 5 {
			mostrar i
		}
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	require.Len(t, scene.Body, 2)

	whileStmt, ok := scene.Body[0].(*While)
	require.True(t, ok)
	assert.Len(t, whileStmt.Body, 1)

	forStmt, ok := scene.Body[1].(*For)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.VarName)
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 1 + 2 * 3 == 7 parses as (1 + (2 * 3)) == 7
	prog, err := ParseProgram(`escena E { mostrar 1 + 2 * 3 == 7 }`)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	show := scene.Body[0].(*Show)

	eq, ok := show.Expr.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpEq, eq.Op)

	add, ok := eq.Left.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpAdd, add.Op)

	mul, ok := add.Right.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpMul, mul.Op)
}

func TestParseLogicalWordOperatorsAndNot(t *testing.T) {
	prog, err := ParseProgram(`escena E { mostrar no verdadero y falso o verdadero }`)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	show := scene.Body[0].(*Show)

	or, ok := show.Expr.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpOr, or.Op)

	and, ok := or.Left.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpAnd, and.Op)

	not, ok := and.Left.(*Unary)
	require.True(t, ok)
	assert.Equal(t, OpNot, not.Op)
}

func TestParseParenthesizedExpression(t *testing.T) {
	prog, err := ParseProgram(`escena E { mostrar (1 + 2) * 3 }`)
	require.NoError(t, err)
	scene := prog.Declarations[0].(*Scene)
	show := scene.Body[0].(*Show)

	mul, ok := show.Expr.(*Binary)
	require.True(t, ok)
	assert.Equal(t, OpMul, mul.Op)
	_, ok = mul.Left.(*Binary)
	assert.True(t, ok)
}

func TestParseBareReturnStatement(t *testing.T) {
	src := `funcion f() {
		retornar
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	fn := prog.Declarations[0].(*Function)
	ret, ok := fn.Body[0].(*Return)
	require.True(t, ok)
	assert.Nil(t, ret.Expr)
}

func TestParseMissingClosingBraceIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(`escena E { mostrar 1`)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParseUnknownTopLevelFormIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(`var x = 1`)
	require.Error(t, err)
}

func TestParseVRTypeNamesAsParameterTypes(t *testing.T) {
	src := `funcion mover(p: pose, v: vector3) {
		retornar
	}`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	fn := prog.Declarations[0].(*Function)
	assert.Equal(t, TypePose, fn.Params[0].DeclaredType)
	assert.Equal(t, TypeVector3, fn.Params[1].DeclaredType)
}

func TestParseLexicalErrorPropagatesFromParser(t *testing.T) {
	_, err := ParseProgram(`escena E { mostrar @ }`)
	require.Error(t, err)
}
