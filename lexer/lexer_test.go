package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	tokens, err := Tokenize(src)
	require.NoError(t, err)
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestNextTokenKeywordsAndIdentifiers(t *testing.T) {
	src := `escena Principal { var x = 10 }`
	types := tokenTypes(t, src)
	assert.Equal(t, []TokenType{ESCENA, IDENT, LBRACE, VAR, IDENT, ASSIGN, INT_LIT, RBRACE}, types)
}

func TestNextTokenTwoCharOperators(t *testing.T) {
	src := `== != <= >= = < >`
	types := tokenTypes(t, src)
	assert.Equal(t, []TokenType{EQ, NE, LE, GE, ASSIGN, LT, GT}, types)
}

func TestNextTokenBangWithoutEqualsIsLexError(t *testing.T) {
	_, err := Tokenize(`!verdadero`)
	require.Error(t, err)
}

func TestNextTokenStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"linea\ntab\tcomilla\"barra\\otro\qfin"`)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "linea\ntab\tcomilla\"barra\\otro\\qfin", tokens[0].Literal)
}

func TestNextTokenUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"sin cerrar`)
	require.Error(t, err)
}

func TestNextTokenIntegerAndFloat(t *testing.T) {
	tokens, err := Tokenize(`42 3.14 7.`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, "42", tokens[0].Literal)
	assert.Equal(t, FLOAT_LIT, tokens[1].Type)
	assert.Equal(t, "3.14", tokens[1].Literal)
	// "7." is not followed by a digit: 7 lexes as INT_LIT, '.' as DOT
	assert.Equal(t, INT_LIT, tokens[2].Type)
	assert.Equal(t, DOT, tokens[3].Type)
}

func TestNextTokenLineComment(t *testing.T) {
	src := "var x = 1 // esto es un comentario\nvar y = 2"
	types := tokenTypes(t, src)
	assert.Equal(t, []TokenType{VAR, IDENT, ASSIGN, INT_LIT, VAR, IDENT, ASSIGN, INT_LIT}, types)
}

func TestNextTokenLineAndColumnTracking(t *testing.T) {
	src := "var x = 1\nvar y = 2"
	tokens, err := Tokenize(src)
	require.NoError(t, err)
	// the second 'var' starts the second line
	var secondVar Token
	count := 0
	for _, tok := range tokens {
		if tok.Type == VAR {
			count++
			if count == 2 {
				secondVar = tok
			}
		}
	}
	assert.Equal(t, 2, secondVar.Pos.Line)
	assert.Equal(t, 1, secondVar.Pos.Column)
}

func TestNextTokenReservedButUnusedKeywords(t *testing.T) {
	types := tokenTypes(t, `cada frame cuando constante`)
	assert.Equal(t, []TokenType{CADA, FRAME, CUANDO, CONSTANTE}, types)
}

func TestNextTokenVRTypeNames(t *testing.T) {
	types := tokenTypes(t, `numero decimal texto booleano vector3 pose mano controlador`)
	assert.Equal(t, []TokenType{
		TIPO_NUMERO, TIPO_DECIMAL, TIPO_TEXTO, TIPO_BOOLEANO,
		TIPO_VECTOR3, TIPO_POSE, TIPO_MANO, TIPO_CONTROLADOR,
	}, types)
}

func TestNextTokenUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("@")
	require.Error(t, err)
}

func TestNextTokenEndsAtEof(t *testing.T) {
	l := New("x")
	tok, err := l.NextToken()
	require.NoError(t, err)
	require.Equal(t, IDENT, tok.Type)
	tok, err = l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF, tok.Type)
}
