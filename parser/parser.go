package parser

import (
	"fmt"

	"github.com/PaoloGonzalez776/V-Code/lexer"
)

// Error is a syntax error: an unexpected token, a missing expected
// token, or an invalid top-level form, reported with its source
// position. Parsing never recovers from one — the first Error aborts
// the whole parse.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parser is a recursive-descent parser over a lexer's token stream, with
// a single token of lookahead. It backtracks in exactly one place
// (statement-level assignment-vs-expression disambiguation); everywhere
// else it consumes tokens monotonically.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser over src, priming the first two tokens of
// lookahead. A lexical error surfacing this early is returned directly.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts curToken <- peekToken and lexes a new peekToken.
func (p *Parser) advance() error {
	p.curToken = p.peekToken
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peekToken = tok
	return nil
}

// mark/reset implement the parser's one bounded backtrack: saving and
// restoring the lexer and lookahead state around the identifier
// assignment-or-expression decision in parseStatement.
type mark struct {
	lex       lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
}

func (p *Parser) mark() mark {
	return mark{lex: *p.lex, curToken: p.curToken, peekToken: p.peekToken}
}

func (p *Parser) reset(m mark) {
	lexCopy := m.lex
	p.lex = &lexCopy
	p.curToken = m.curToken
	p.peekToken = m.peekToken
}

func (p *Parser) expect(t lexer.TokenType, what string) error {
	if p.curToken.Type != t {
		return &Error{Pos: p.curToken.Pos, Msg: fmt.Sprintf("se esperaba %s, se encontro '%s'", what, p.curToken.Literal)}
	}
	return p.advance()
}

// ParseProgram consumes declarations until Eof, producing the AST root.
// Per spec, parsing succeeds only if every token is consumed up to Eof —
// any earlier Error aborts with that position.
func ParseProgram(src string) (*Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}

	prog := &Program{}
	for p.curToken.Type != lexer.EOF {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	return prog, nil
}

func (p *Parser) parseDeclaration() (Declaration, error) {
	switch p.curToken.Type {
	case lexer.ESCENA:
		return p.parseScene()
	case lexer.FUNCION:
		return p.parseFunction()
	default:
		return nil, &Error{Pos: p.curToken.Pos, Msg: fmt.Sprintf("se esperaba 'escena' o 'funcion', se encontro '%s'", p.curToken.Literal)}
	}
}

func (p *Parser) parseScene() (*Scene, error) {
	pos := p.curToken.Pos
	if err := p.expect(lexer.ESCENA, "'escena'"); err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.IDENT {
		return nil, &Error{Pos: p.curToken.Pos, Msg: "se esperaba nombre de escena"}
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
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

	return &Scene{Name: name, Body: body, Position: pos}, nil
}

func (p *Parser) parseFunction() (*Function, error) {
	pos := p.curToken.Pos
	if err := p.expect(lexer.FUNCION, "'funcion'"); err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.IDENT {
		return nil, &Error{Pos: p.curToken.Pos, Msg: "se esperaba nombre de funcion"}
	}
	name := p.curToken.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []Parameter
	if p.curToken.Type != lexer.RPAREN {
		for {
			if p.curToken.Type != lexer.IDENT {
				return nil, &Error{Pos: p.curToken.Pos, Msg: "se esperaba nombre de parametro"}
			}
			paramName := p.curToken.Literal
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expect(lexer.COLON, "':'"); err != nil {
				return nil, err
			}
			paramType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, Parameter{Name: paramName, DeclaredType: paramType})

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

	var returnType *Type
	if p.curToken.Type == lexer.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		returnType = &t
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

	return &Function{Name: name, Params: params, ReturnType: returnType, Body: body, Position: pos}, nil
}

func (p *Parser) parseType() (Type, error) {
	var t Type
	switch p.curToken.Type {
	case lexer.TIPO_NUMERO:
		t = TypeNumber
	case lexer.TIPO_DECIMAL:
		t = TypeDecimal
	case lexer.TIPO_TEXTO:
		t = TypeText
	case lexer.TIPO_BOOLEANO:
		t = TypeBoolean
	case lexer.TIPO_VECTOR3:
		t = TypeVector3
	case lexer.TIPO_POSE:
		t = TypePose
	case lexer.TIPO_MANO:
		t = TypeHand
	case lexer.TIPO_CONTROLADOR:
		t = TypeController
	default:
		return 0, &Error{Pos: p.curToken.Pos, Msg: fmt.Sprintf("se esperaba un tipo de dato, se encontro '%s'", p.curToken.Literal)}
	}
	return t, p.advance()
}

// parseStatementsUntilRBrace parses statements until the closing brace
// of the current block, without consuming it.
func (p *Parser) parseStatementsUntilRBrace() ([]Statement, error) {
	var stmts []Statement
	for p.curToken.Type != lexer.RBRACE && p.curToken.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
