package parser

import (
	"strconv"

	"github.com/PaoloGonzalez776/V-Code/lexer"
)

// parseExpression is the entry point for expression parsing, and the top
// of the precedence ladder: o -> y -> igualdad -> comparacion ->
// suma/resta -> multiplicacion/division -> unario -> llamada -> primario.
func (p *Parser) parseExpression() (Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == lexer.OR {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: OpOr, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == lexer.AND {
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: OpAnd, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == lexer.EQ || p.curToken.Type == lexer.NE {
		op := OpEq
		if p.curToken.Type == lexer.NE {
			op = OpNe
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseComparison() (Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.curToken.Type {
		case lexer.LT:
			op = OpLt
		case lexer.LE:
			op = OpLe
		case lexer.GT:
			op = OpGt
		case lexer.GE:
			op = OpGe
		default:
			return left, nil
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right, Position: pos}
	}
}

func (p *Parser) parseAdditive() (Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == lexer.PLUS || p.curToken.Type == lexer.MINUS {
		op := OpAdd
		if p.curToken.Type == lexer.MINUS {
			op = OpSub
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.curToken.Type {
		case lexer.STAR:
			op = OpMul
		case lexer.SLASH:
			op = OpDiv
		case lexer.PERCENT:
			op = OpMod
		default:
			return left, nil
		}
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right, Position: pos}
	}
}

func (p *Parser) parseUnary() (Expression, error) {
	switch p.curToken.Type {
	case lexer.NOT:
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpNot, Operand: operand, Position: pos}, nil
	case lexer.MINUS:
		pos := p.curToken.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpNeg, Operand: operand, Position: pos}, nil
	default:
		return p.parseCallOrPrimary()
	}
}

// parseCallOrPrimary parses a primary expression and, if it is a bare
// identifier immediately followed by '(', reinterprets it as a Call.
func (p *Parser) parseCallOrPrimary() (Expression, error) {
	if p.curToken.Type == lexer.IDENT && p.peekToken.Type == lexer.LPAREN {
		pos := p.curToken.Pos
		name := p.curToken.Literal
		if err := p.advance(); err != nil { // consume name
			return nil, err
		}
		if err := p.advance(); err != nil { // consume '('
			return nil, err
		}
		var args []Expression
		if p.curToken.Type != lexer.RPAREN {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if p.curToken.Type != lexer.COMMA {
					break
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &Call{Name: name, Args: args, Position: pos}, nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expression, error) {
	pos := p.curToken.Pos
	switch p.curToken.Type {
	case lexer.INT_LIT:
		v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			return nil, &Error{Pos: pos, Msg: "literal numerico invalido"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &IntLit{Value: v, Position: pos}, nil
	case lexer.FLOAT_LIT:
		v, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			return nil, &Error{Pos: pos, Msg: "literal decimal invalido"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &FloatLit{Value: v, Position: pos}, nil
	case lexer.STRING_LIT:
		v := p.curToken.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLit{Value: v, Position: pos}, nil
	case lexer.VERDADERO:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{Value: true, Position: pos}, nil
	case lexer.FALSO:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &BoolLit{Value: false, Position: pos}, nil
	case lexer.IDENT:
		name := p.curToken.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &VarRef{Name: name, Position: pos}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &Error{Pos: pos, Msg: "se esperaba una expresion, se encontro '" + p.curToken.Literal + "'"}
	}
}
