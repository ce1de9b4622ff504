package function

import (
	"testing"

	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/PaoloGonzalez776/V-Code/scope"
	"github.com/stretchr/testify/assert"
)

func TestDisplayListsParameterNamesOnly(t *testing.T) {
	fn := Function{
		Name: "sumar",
		Params: []parser.Parameter{
			{Name: "a", DeclaredType: parser.TypeNumber},
			{Name: "b", DeclaredType: parser.TypeNumber},
		},
		Defn: scope.New(nil),
	}

	assert.Equal(t, "funcion(sumar(a, b))", fn.Display())
}

func TestDisplayWithNoParameters(t *testing.T) {
	fn := Function{Name: "saludar", Defn: scope.New(nil)}
	assert.Equal(t, "funcion(saludar())", fn.Display())
}

func TestKindIsStableFunctionTag(t *testing.T) {
	fn := Function{Name: "f", Defn: scope.New(nil)}
	assert.Equal(t, "funcion", string(fn.Kind()))
}
