package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/checker"
	"github.com/tocin-lang/tocin/util"
)

func TestGetTypeSizeBuiltins(t *testing.T) {
	c := checker.NewChecker()
	cases := []struct {
		t    ast.Type
		size int
	}{
		{ast.BasicType{Name: "i8"}, 1},
		{ast.BasicType{Name: "i32"}, 4},
		{ast.BasicType{Name: "i64"}, 8},
		{ast.BasicType{Name: "bool"}, 1},
		{ast.BasicType{Name: "string"}, 16},
		{ast.BasicType{Name: "void"}, 0},
		{ast.BasicType{Name: "int"}, 4},
		{ast.BasicType{Name: "float"}, 4},
		{ast.BasicType{Name: "double"}, 8},
	}
	for _, tc := range cases {
		size, ok := c.GetTypeSize(tc.t)
		require.True(t, ok)
		assert.Equal(t, tc.size, size)
	}
}

func TestGetTypeSizeResolvesAliasesBeforeLookup(t *testing.T) {
	c := checker.NewChecker()
	size, ok := c.GetTypeSize(ast.BasicType{Name: "int32"})
	require.True(t, ok)
	assert.Equal(t, 4, size)
}

func TestGetTypeSizePointerReferenceFunctionAreAllPointerSized(t *testing.T) {
	c := checker.NewChecker()
	for _, ty := range []ast.Type{
		ast.PointerType{Pointee: c.GetIntType()},
		ast.ReferenceType{Referent: c.GetIntType()},
		ast.FunctionType{Return: c.GetVoidType()},
	} {
		size, ok := c.GetTypeSize(ty)
		require.True(t, ok)
		assert.Equal(t, 8, size)
	}
}

func TestGetTypeSizeFixedArrayMultipliesElement(t *testing.T) {
	c := checker.NewChecker()
	size, ok := c.GetTypeSize(ast.ArrayType{Elem: ast.BasicType{Name: "i32"}, Size: 4})
	require.True(t, ok)
	assert.Equal(t, 16, size)
}

func TestGetTypeSizeDynamicArrayIsPointerSized(t *testing.T) {
	c := checker.NewChecker()
	size, ok := c.GetTypeSize(ast.ArrayType{Elem: ast.BasicType{Name: "i32"}})
	require.True(t, ok)
	assert.Equal(t, 8, size)
}

func TestGetTypeSizeUnknownBasicReportsFalse(t *testing.T) {
	c := checker.NewChecker()
	size, ok := c.GetTypeSize(ast.BasicType{Name: "NotRegistered"})
	assert.False(t, ok)
	assert.Equal(t, 0, size)
}

func TestGetTypeSizeAndAlignmentRejectNilAndTraitAndTypeVariable(t *testing.T) {
	c := checker.NewChecker()
	_, ok := c.GetTypeSize(nil)
	assert.False(t, ok)
	_, ok = c.GetTypeSize(ast.TraitType{Name: "Printable"})
	assert.False(t, ok)
	_, ok = c.GetTypeSize(ast.TypeVariable{Name: "T"})
	assert.False(t, ok)

	_, ok = c.GetTypeAlignment(nil)
	assert.False(t, ok)
	_, ok = c.GetTypeAlignment(ast.TraitType{Name: "Printable"})
	assert.False(t, ok)
	_, ok = c.GetTypeAlignment(ast.TypeVariable{Name: "T"})
	assert.False(t, ok)
}

func TestClassLayoutPadsFieldsAndTrailer(t *testing.T) {
	c := checker.NewChecker()
	// a: i8 (offset 0, size 1) ; padding to 4 ; b: i32 (offset 4, size 4) ; c: i8 (offset 8, size 1)
	// trailing pad to align 4 => size 12
	require.NoError(t, c.RegisterClass(ast.Range{}, "Padded", checker.ClassInfo{
		Fields: []util.Pair[string, ast.Type]{
			util.NewPair("a", ast.Type(ast.BasicType{Name: "i8"})),
			util.NewPair("b", ast.Type(ast.BasicType{Name: "i32"})),
			util.NewPair("c", ast.Type(ast.BasicType{Name: "i8"})),
		},
	}))
	size, ok := c.GetTypeSize(ast.ClassType{Name: "Padded"})
	require.True(t, ok)
	assert.Equal(t, 12, size)

	align, ok := c.GetTypeAlignment(ast.ClassType{Name: "Padded"})
	require.True(t, ok)
	assert.Equal(t, 4, align)
}

func TestClassLayoutSkipsFieldsWithUnknownSize(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterClass(ast.Range{}, "HasOpaqueField", checker.ClassInfo{
		Fields: []util.Pair[string, ast.Type]{
			util.NewPair("tag", ast.Type(ast.BasicType{Name: "i8"})),
			util.NewPair("v", ast.Type(ast.TypeVariable{Name: "T"})),
		},
	}))
	size, ok := c.GetTypeSize(ast.ClassType{Name: "HasOpaqueField"})
	require.True(t, ok)
	assert.Equal(t, 1, size)
}

func TestClassLayoutUnregisteredClassIsUnknown(t *testing.T) {
	c := checker.NewChecker()
	size, ok := c.GetTypeSize(ast.ClassType{Name: "Ghost"})
	assert.False(t, ok)
	assert.Equal(t, 8, size)
}
