package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := generate(17)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "tuple_gen.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "tuple", file.Name.Name)

	types := map[string]int{}
	methods := map[string]int{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, s := range d.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = ts.TypeParams.NumFields()
				}
			}
		case *ast.FuncDecl:
			if d.Recv != nil {
				methods[d.Name.Name]++
			}
		}
	}

	assert.Len(t, types, 17)
	assert.Equal(t, 1, types["Of1"])
	assert.Equal(t, 17, types["Of17"])
	assert.Equal(t, 17, methods["F0"])
	assert.Equal(t, 2, methods["F15"])
	assert.Equal(t, 1, methods["F16"])
	assert.Equal(t, 17, methods["String"])
}

func TestNewArity(t *testing.T) {
	a := newArity(3)

	assert.Equal(t, []int{0, 1, 2}, a.Fields)
	assert.Equal(t, "T0, T1, T2", a.Params)
	assert.Equal(t, "v0 T0, v1 T1, v2 T2", a.Args)
	assert.Equal(t, "Of3[T0, T1, T2]", a.Type)
	assert.Equal(t, "V0: v0, V1: v1, V2: v2", a.Inits)
	assert.Equal(t, "t.V0, t.V1, t.V2", a.Selectors)
}
