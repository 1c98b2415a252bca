package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/checker"
)

func printableTrait(c *checker.Checker) checker.Trait {
	return checker.Trait{
		Name:    "Printable",
		Methods: map[string]ast.FunctionType{"print": {Return: c.GetVoidType()}},
	}
}

func TestRegisterTraitRejectsDuplicateName(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterTrait(ast.Range{}, printableTrait(c)))
	err := c.RegisterTrait(ast.Range{}, printableTrait(c))
	require.Error(t, err)
}

func TestRegisterTraitImplFailsOnUnknownTrait(t *testing.T) {
	c := checker.NewChecker()
	err := c.RegisterTraitImpl(ast.Range{}, checker.TraitImpl{TraitName: "Printable", Target: c.GetIntType()})
	require.Error(t, err)
}

func TestRegisterTraitImplFailsOnMissingMethod(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterTrait(ast.Range{}, printableTrait(c)))
	err := c.RegisterTraitImpl(ast.Range{}, checker.TraitImpl{TraitName: "Printable", Target: c.GetIntType()})
	require.Error(t, err)
}

func TestRegisterTraitImplFailsOnSignatureMismatch(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterTrait(ast.Range{}, printableTrait(c)))
	err := c.RegisterTraitImpl(ast.Range{}, checker.TraitImpl{
		TraitName: "Printable",
		Target:    c.GetIntType(),
		MethodImpls: map[string]ast.FunctionType{
			"print": {Params: []ast.Type{c.GetIntType()}, Return: c.GetVoidType()},
		},
	})
	require.Error(t, err)
}

func TestDoesTypeImplementTraitFirstWins(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterTrait(ast.Range{}, printableTrait(c)))
	require.NoError(t, c.RegisterTraitImpl(ast.Range{}, checker.TraitImpl{
		TraitName:   "Printable",
		Target:      c.GetIntType(),
		MethodImpls: map[string]ast.FunctionType{"print": {Return: c.GetVoidType()}},
	}))

	ok, err := c.DoesTypeImplementTrait(ast.Range{}, c.GetIntType(), "Printable")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DoesTypeImplementTrait(ast.Range{}, c.GetBoolType(), "Printable")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.DoesTypeImplementTrait(ast.Range{}, c.GetIntType(), "NotRegistered")
	require.Error(t, err)
}

func TestGetTraitImplReturnsFirstRegistered(t *testing.T) {
	c := checker.NewChecker()
	require.NoError(t, c.RegisterTrait(ast.Range{}, printableTrait(c)))
	impl := checker.TraitImpl{
		TraitName:   "Printable",
		Target:      c.GetIntType(),
		MethodImpls: map[string]ast.FunctionType{"print": {Return: c.GetVoidType()}},
	}
	require.NoError(t, c.RegisterTraitImpl(ast.Range{}, impl))

	got, ok := c.GetTraitImpl("Printable", c.GetIntType())
	require.True(t, ok)
	assert.Equal(t, impl.Target, got.Target)

	_, ok = c.GetTraitImpl("Printable", c.GetBoolType())
	assert.False(t, ok)
}
