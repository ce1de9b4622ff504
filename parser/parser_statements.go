package parser

import (
	"github.com/PaoloGonzalez776/V-Code/lexer"
)

func (p *Parser) parseStatement() (Statement, error) {
	switch p.curToken.Type {
	case lexer.MOSTRAR:
		return p.parseShow()
	case lexer.VAR:
		return p.parseVarDecl()
	case lexer.SI:
		return p.parseIf()
	case lexer.MIENTRAS:
		return p.parseWhile()
	case lexer.PARA:
		return p.parseFor()
	case lexer.RETORNAR:
		return p.parseReturn()
	case lexer.IDENT:
		return p.parseAssignOrExprStatement()
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: expr}, nil
	}
}

func (p *Parser) parseShow() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'mostrar'
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Show{Expr: expr, Position: pos}, nil
}

func (p *Parser) parseVarDecl() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'var'
		return nil, err
	}
	if p.curToken.Type != lexer.IDENT {
		return nil, &Error{Pos: p.curToken.Pos, Msg: "se esperaba nombre de variable"}
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VarDecl{Name: name, Expr: expr, Position: pos}, nil
}

// parseAssignOrExprStatement disambiguates `IDENT = EXPR` (an Assign)
// from an identifier that merely starts an expression statement (a bare
// call like `hacer_algo()`), by speculatively consuming the identifier
// and checking what follows. The lexer/parser position is restored if
// the lookahead doesn't confirm an assignment.
func (p *Parser) parseAssignOrExprStatement() (Statement, error) {
	saved := p.mark()

	pos := p.curToken.Pos
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.curToken.Type == lexer.ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Assign{Name: name, Expr: expr, Position: pos}, nil
	}

	p.reset(saved)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

func (p *Parser) parseIf() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'si'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	thenBody, err := p.parseStatementsUntilRBrace()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	var elseBody []Statement
	if p.curToken.Type == lexer.SINO {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.LBRACE, "'{'"); err != nil {
			return nil, err
		}
		elseBody, err = p.parseStatementsUntilRBrace()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
			return nil, err
		}
	}

	return &If{Cond: cond, Then: thenBody, Else: elseBody, Position: pos}, nil
}

func (p *Parser) parseWhile() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'mientras'
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntilRBrace()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body, Position: pos}, nil
}

func (p *Parser) parseFor() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'para'
		return nil, err
	}
	if p.curToken.Type != lexer.IDENT {
		return nil, &Error{Pos: p.curToken.Pos, Msg: "se esperaba nombre de variable de iteracion"}
	}
	varName := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.COMMA, "','"); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementsUntilRBrace()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &For{VarName: varName, Start: start, End: end, Body: body, Position: pos}, nil
}

// parseReturn parses `retornar` optionally followed by an expression. A
// bare `retornar` is recognized by the statement immediately ending at a
// closing brace.
func (p *Parser) parseReturn() (Statement, error) {
	pos := p.curToken.Pos
	if err := p.advance(); err != nil { // consume 'retornar'
		return nil, err
	}
	if p.curToken.Type == lexer.RBRACE {
		return &Return{Expr: nil, Position: pos}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Return{Expr: expr, Position: pos}, nil
}
