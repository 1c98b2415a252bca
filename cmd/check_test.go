package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tocin-lang/tocin/checker"
)

func TestScenariosAllSucceed(t *testing.T) {
	scenarios := []func(*checker.Checker) (string, error){
		scenarioNumericWidening,
		scenarioClassHierarchy,
		scenarioGenericInstantiation,
		scenarioCircularDependency,
		scenarioFunctionUnification,
		scenarioClassLayout,
		scenarioTypeUtils,
	}
	for _, s := range scenarios {
		c := checker.NewChecker()
		result, err := s(c)
		require.NoError(t, err)
		assert.NotEmpty(t, result)
	}
}

func TestScenarioNumericWideningResult(t *testing.T) {
	c := checker.NewChecker()
	result, err := scenarioNumericWidening(c)
	require.NoError(t, err)
	assert.Equal(t, "float", result)
}

func TestScenarioClassHierarchyResult(t *testing.T) {
	c := checker.NewChecker()
	result, err := scenarioClassHierarchy(c)
	require.NoError(t, err)
	assert.Equal(t, "Dog<:Animal=true Dog<:Cat=false", result)
}

func TestScenarioGenericInstantiationResult(t *testing.T) {
	c := checker.NewChecker()
	result, err := scenarioGenericInstantiation(c)
	require.NoError(t, err)
	assert.Equal(t, "*int", result)
}
