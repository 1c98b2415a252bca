package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/checker"
)

func TestUnifyEqualTypesReturnsAsIs(t *testing.T) {
	c := checker.NewChecker()
	result, err := c.UnifyTypes(ast.Range{}, c.GetIntType(), c.GetIntType())
	require.NoError(t, err)
	assert.Equal(t, c.GetIntType(), result)
}

func TestUnifyTypeVariableBindsToOtherSide(t *testing.T) {
	c := checker.NewChecker()
	result, err := c.UnifyTypes(ast.Range{}, ast.TypeVariable{Name: "a"}, c.GetIntType())
	require.NoError(t, err)
	assert.Equal(t, c.GetIntType(), result)

	result, err = c.UnifyTypes(ast.Range{}, c.GetBoolType(), ast.TypeVariable{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, c.GetBoolType(), result)
}

func TestUnifyOccursCheckFails(t *testing.T) {
	c := checker.NewChecker()
	cyclic := ast.ArrayType{Elem: ast.TypeVariable{Name: "a"}}
	_, err := c.UnifyTypes(ast.Range{}, ast.TypeVariable{Name: "a"}, cyclic)
	require.Error(t, err)
}

func TestUnifyNumericWideningPrefersFloat(t *testing.T) {
	c := checker.NewChecker()
	result, err := c.UnifyTypes(ast.Range{}, c.GetIntType(), c.GetFloatType())
	require.NoError(t, err)
	assert.Equal(t, c.GetFloatType(), result)
}

func TestUnifyNumericWideningBothIntStaysInt(t *testing.T) {
	c := checker.NewChecker()
	result, err := c.UnifyTypes(ast.Range{}, ast.BasicType{Name: "i32"}, ast.BasicType{Name: "i64"})
	require.NoError(t, err)
	assert.Equal(t, c.GetIntType(), result)
}

func TestUnifyFunctionTypesPointwise(t *testing.T) {
	c := checker.NewChecker()
	f1 := ast.FunctionType{Params: []ast.Type{c.GetIntType()}, Return: ast.TypeVariable{Name: "r"}}
	f2 := ast.FunctionType{Params: []ast.Type{ast.TypeVariable{Name: "p"}}, Return: c.GetBoolType()}
	result, err := c.UnifyTypes(ast.Range{}, f1, f2)
	require.NoError(t, err)
	fn, ok := result.(ast.FunctionType)
	require.True(t, ok)
	assert.Equal(t, c.GetIntType(), fn.Params[0])
	assert.Equal(t, c.GetBoolType(), fn.Return)
}

func TestUnifyFunctionArityMismatch(t *testing.T) {
	c := checker.NewChecker()
	f1 := ast.FunctionType{Params: []ast.Type{c.GetIntType()}, Return: c.GetVoidType()}
	f2 := ast.FunctionType{Params: []ast.Type{c.GetIntType(), c.GetIntType()}, Return: c.GetVoidType()}
	_, err := c.UnifyTypes(ast.Range{}, f1, f2)
	require.Error(t, err)
}

func TestUnifyArrayElementTypesAndMixedSizeGoesDynamic(t *testing.T) {
	c := checker.NewChecker()
	a1 := ast.ArrayType{Elem: ast.TypeVariable{Name: "e"}, Size: 3}
	a2 := ast.ArrayType{Elem: c.GetIntType(), Size: 5}
	result, err := c.UnifyTypes(ast.Range{}, a1, a2)
	require.NoError(t, err)
	arr, ok := result.(ast.ArrayType)
	require.True(t, ok)
	assert.Equal(t, c.GetIntType(), arr.Elem)
	assert.Equal(t, 0, arr.Size)
}

func TestUnifyGenericSameConstructor(t *testing.T) {
	c := checker.NewChecker()
	g1 := ast.GenericType{Constructor: "Box", Args: []ast.Type{ast.TypeVariable{Name: "t"}}}
	g2 := ast.GenericType{Constructor: "Box", Args: []ast.Type{c.GetIntType()}}
	result, err := c.UnifyTypes(ast.Range{}, g1, g2)
	require.NoError(t, err)
	assert.Equal(t, ast.GenericType{Constructor: "Box", Args: []ast.Type{c.GetIntType()}}, result)
}

func TestUnifyGenericConstructorMismatch(t *testing.T) {
	c := checker.NewChecker()
	g1 := ast.GenericType{Constructor: "Box", Args: []ast.Type{c.GetIntType()}}
	g2 := ast.GenericType{Constructor: "Option", Args: []ast.Type{c.GetIntType()}}
	_, err := c.UnifyTypes(ast.Range{}, g1, g2)
	require.Error(t, err)
}

func TestUnifyIncompatibleTypesFails(t *testing.T) {
	c := checker.NewChecker()
	_, err := c.UnifyTypes(ast.Range{}, c.GetStringType(), c.GetBoolType())
	require.Error(t, err)
}

func TestUnifyNilTypeFails(t *testing.T) {
	c := checker.NewChecker()
	_, err := c.UnifyTypes(ast.Range{}, nil, c.GetIntType())
	require.Error(t, err)
}
