package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/checker"
	"github.com/tocin-lang/tocin/diag"
	"github.com/tocin-lang/tocin/internal/log"
	"github.com/tocin-lang/tocin/util"
)

// CheckCmd stands in for the real front end's driver: it builds a small
// illustrative registry and trait table, then runs the specification's
// worked scenarios through the façade methods they need and prints the
// outcome. It does not call every façade method: MangleType, the
// nullable/copyable/movable predicates, the alias and lookup queries and
// CheckTypeCompatibility, among others, are not used. A real driver would
// instead feed the checker AST nodes produced by a parser.
var CheckCmd = &cobra.Command{
	Use:          "check",
	Short:        "Run the worked type-checking scenarios against a demonstration registry",
	RunE:         runCheck,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(_ *cobra.Command, _ []string) error {
	log.SetLevel(slog.Level(*logLevel))
	c := checker.NewChecker()

	scenarios := []struct {
		name string
		run  func(*checker.Checker) (string, error)
	}{
		{"S1: int + float unifies to float", scenarioNumericWidening},
		{"S2: nominal subclass walk", scenarioClassHierarchy},
		{"S3: generic instantiation with a trait constraint", scenarioGenericInstantiation},
		{"S4: circular dependency via a bare field vs. a pointer field", scenarioCircularDependency},
		{"S5: unifying a concrete function with an unbound one", scenarioFunctionUnification},
		{"S6: class layout with interior and trailing padding", scenarioClassLayout},
		{"S7: factory constructors and type-predicate façade", scenarioTypeUtils},
	}

	for _, s := range scenarios {
		result, err := s.run(c)
		if err != nil {
			if d, ok := err.(diag.Diagnostic); ok {
				fmt.Printf("%-55s FAILED: %s\n", s.name, diag.FormatWithCode(d))
				continue
			}
			fmt.Printf("%-55s FAILED: %v\n", s.name, err)
			continue
		}
		fmt.Printf("%-55s %s\n", s.name, result)
	}

	return nil
}

func scenarioNumericWidening(c *checker.Checker) (string, error) {
	expr := ast.Binary{
		Op:   ast.OpAdd,
		Left: ast.Literal{Kind: ast.NumberLiteral, Text: "3"},
		Right: ast.Literal{Kind: ast.NumberLiteral, Text: "2.5"},
	}
	t, err := c.InferType(expr)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func scenarioClassHierarchy(c *checker.Checker) (string, error) {
	pos := ast.Range{}
	if err := c.RegisterClass(pos, "Animal", checker.ClassInfo{}); err != nil {
		return "", err
	}
	if err := c.RegisterClass(pos, "Mammal", checker.ClassInfo{Superclass: "Animal"}); err != nil {
		return "", err
	}
	if err := c.RegisterClass(pos, "Dog", checker.ClassInfo{Superclass: "Mammal"}); err != nil {
		return "", err
	}
	if err := c.RegisterClass(pos, "Cat", checker.ClassInfo{Superclass: "Mammal"}); err != nil {
		return "", err
	}
	dogIsAnimal, err := c.IsSubtype(pos, ast.ClassType{Name: "Dog"}, ast.ClassType{Name: "Animal"})
	if err != nil {
		return "", err
	}
	dogIsCat, err := c.IsSubtype(pos, ast.ClassType{Name: "Dog"}, ast.ClassType{Name: "Cat"})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Dog<:Animal=%v Dog<:Cat=%v", dogIsAnimal, dogIsCat), nil
}

func scenarioGenericInstantiation(c *checker.Checker) (string, error) {
	pos := ast.Range{}
	if err := c.RegisterTrait(pos, checker.Trait{
		Name: "Printable",
		Methods: map[string]ast.FunctionType{
			"print": {Params: []ast.Type{ast.TypeVariable{Name: "Self"}}, Return: c.GetVoidType()},
		},
	}); err != nil {
		return "", err
	}
	if err := c.RegisterTraitImpl(pos, checker.TraitImpl{
		TraitName: "Printable",
		Target:    c.GetIntType(),
		MethodImpls: map[string]ast.FunctionType{
			"print": {Params: []ast.Type{ast.TypeVariable{Name: "Self"}}, Return: c.GetVoidType()},
		},
	}); err != nil {
		return "", err
	}
	if err := c.RegisterGenericType(pos, "Box", []checker.TypeParameter{
		{Name: "T", Constraints: []checker.TypeConstraint{{TraitName: "Printable"}}},
	}, ast.PointerType{Pointee: ast.TypeVariable{Name: "T"}}); err != nil {
		return "", err
	}
	boxOfInt, err := c.InstantiateGenericType(pos, "Box", []ast.Type{c.GetIntType()})
	if err != nil {
		return "", err
	}
	return boxOfInt.String(), nil
}

func scenarioCircularDependency(c *checker.Checker) (string, error) {
	pos := ast.Range{}
	if err := c.RegisterClass(pos, "BadNode", checker.ClassInfo{
		Fields: []util.Pair[string, ast.Type]{util.NewPair("next", ast.Type(ast.ClassType{Name: "BadNode"}))},
	}); err != nil {
		return "", err
	}
	if err := c.RegisterClass(pos, "GoodNode", checker.ClassInfo{
		Fields: []util.Pair[string, ast.Type]{util.NewPair("next", ast.Type(ast.PointerType{Pointee: ast.ClassType{Name: "GoodNode"}}))},
	}); err != nil {
		return "", err
	}
	if _, err := c.ValidateType(pos, ast.ClassType{Name: "BadNode"}); err == nil {
		return "", fmt.Errorf("expected BadNode to fail circular-dependency validation")
	}
	if _, err := c.ValidateType(pos, ast.ClassType{Name: "GoodNode"}); err != nil {
		return "", err
	}
	return "BadNode rejected, GoodNode (pointer-broken cycle) accepted", nil
}

func scenarioFunctionUnification(c *checker.Checker) (string, error) {
	pos := ast.Range{}
	concrete := ast.FunctionType{Params: []ast.Type{c.GetIntType()}, Return: c.GetBoolType()}
	unbound := ast.FunctionType{Params: []ast.Type{ast.TypeVariable{Name: "a"}}, Return: ast.TypeVariable{Name: "b"}}
	result, err := c.UnifyTypes(pos, concrete, unbound)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func scenarioClassLayout(c *checker.Checker) (string, error) {
	pos := ast.Range{}
	if err := c.RegisterClass(pos, "Padded", checker.ClassInfo{
		Fields: []util.Pair[string, ast.Type]{
			util.NewPair("a", ast.Type(ast.BasicType{Name: "i8"})),
			util.NewPair("b", ast.Type(ast.BasicType{Name: "i32"})),
			util.NewPair("c", ast.Type(ast.BasicType{Name: "i8"})),
		},
	}); err != nil {
		return "", err
	}
	size, ok := c.GetTypeSize(ast.ClassType{Name: "Padded"})
	if !ok {
		return "", fmt.Errorf("expected Padded to have a known size")
	}
	align, _ := c.GetTypeAlignment(ast.ClassType{Name: "Padded"})
	return fmt.Sprintf("size=%d align=%d", size, align), nil
}

func scenarioTypeUtils(c *checker.Checker) (string, error) {
	boxed := c.MakePointerType(c.GetIntType())
	option := c.MakeOptionType(c.GetStringType())
	result := c.MakeResultType(c.GetIntType(), c.GetStringType())
	array := c.MakeArrayType(c.GetFloatType())
	reference := c.MakeReferenceType(c.GetBoolType())

	if !c.IsPointerType(boxed) {
		return "", fmt.Errorf("expected MakePointerType to build a Pointer")
	}
	if !c.IsGenericType(option) || !c.IsGenericType(result) {
		return "", fmt.Errorf("expected MakeOptionType/MakeResultType to build Generics")
	}
	if !c.IsArrayType(array) {
		return "", fmt.Errorf("expected MakeArrayType to build an Array-shaped Generic")
	}
	if !c.IsReferenceType(reference) {
		return "", fmt.Errorf("expected MakeReferenceType to build a Reference")
	}
	if !c.IsIntegral(c.GetIntType()) || !c.IsFloating(c.GetFloatType()) || !c.IsNumeric(c.GetIntType()) {
		return "", fmt.Errorf("expected int/float to be integral/floating/numeric")
	}
	if c.IsSigned(ast.BasicType{Name: "u32"}) {
		return "", fmt.Errorf("expected u32 to be unsigned")
	}
	if !c.IsFunctionType(ast.FunctionType{Return: c.GetVoidType()}) {
		return "", fmt.Errorf("expected a FunctionType to report as a function")
	}
	if !c.IsVoidType(c.GetVoidType()) {
		return "", fmt.Errorf("expected void to report as void")
	}

	return fmt.Sprintf("%s %s %s %s %s", boxed, option, result, array, reference), nil
}
