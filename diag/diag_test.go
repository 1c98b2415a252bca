package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
)

func TestEveryDiagnosticCarriesItsCode(t *testing.T) {
	pos := ast.Range{}
	cases := []struct {
		name string
		d    diag.Diagnostic
		code diag.Code
	}{
		{"NilType", diag.New(diag.NilType{Positioner: pos, Operation: "unifyTypes"}), diag.ShapeError},
		{"NilExpr", diag.New(diag.NilExpr{Positioner: pos}), diag.ShapeError},
		{"NotGeneric", diag.New(diag.NotGeneric{Positioner: pos, Got: ast.BasicType{Name: "int"}}), diag.ShapeError},
		{"UnknownType", diag.New(diag.UnknownType{Positioner: pos, Name: "Foo"}), diag.NameError},
		{"UnknownVariable", diag.New(diag.UnknownVariable{Positioner: pos, Name: "x"}), diag.NameError},
		{"UnknownTrait", diag.New(diag.UnknownTrait{Positioner: pos, Name: "Printable"}), diag.NameError},
		{"GenericArityMismatch", diag.New(diag.GenericArityMismatch{Positioner: pos, Name: "Box", Want: 1, Got: 2}), diag.ArityError},
		{"FunctionArityMismatch", diag.New(diag.FunctionArityMismatch{Positioner: pos, Want: 1, Got: 2}), diag.ArityError},
		{"ConstructorMismatch", diag.New(diag.ConstructorMismatch{Positioner: pos, Left: "Box", Right: "Option"}), diag.ArityError},
		{"ConstraintViolation", diag.New(diag.ConstraintViolation{Positioner: pos, Arg: ast.BasicType{Name: "int"}, Trait: "Printable"}), diag.ConstraintError},
		{"StructuralMismatch", diag.New(diag.StructuralMismatch{Positioner: pos, Method: "print", Detail: "missing"}), diag.StructuralError},
		{"CircularDependency", diag.New(diag.CircularDependency{Positioner: pos, Name: "Node"}), diag.CircularError},
		{"OccursFailure", diag.New(diag.OccursFailure{Positioner: pos, Var: "a"}), diag.OccursError},
		{"Incompatible", diag.New(diag.Incompatible{Positioner: pos, Left: ast.BasicType{Name: "int"}, Right: ast.BasicType{Name: "bool"}}), diag.IncompatibleError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.d.Code())
			assert.NotEmpty(t, tc.d.Error())
		})
	}
}

func TestRegistrationCarriesItsOwnCode(t *testing.T) {
	d := diag.New(diag.NewRegistration(ast.Range{}, "type already registered: int", diag.NameError))
	assert.Equal(t, diag.NameError, d.Code())
	assert.Equal(t, "type already registered: int", d.Error())
}

func TestFormatWithCodeIncludesTheNumericCode(t *testing.T) {
	d := diag.New(diag.UnknownType{Positioner: ast.Range{}, Name: "Foo"})
	formatted := diag.FormatWithCode(d)
	assert.Contains(t, formatted, "E002")
	assert.Contains(t, formatted, "unknown type: Foo")
}
