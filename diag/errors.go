package diag

import (
	"fmt"

	"github.com/tocin-lang/tocin/ast"
)

// NilType is a shape error: an operation received a nil type.
type NilType struct {
	ast.Positioner
	Operation string
	stack     []byte
}

func (e NilType) Error() string          { return fmt.Sprintf("nil type passed to %s", e.Operation) }
func (e NilType) Code() Code             { return ShapeError }
func (e NilType) getStack() []byte       { return e.stack }
func (e NilType) withStack(s []byte) Diagnostic { e.stack = s; return e }

// NilExpr is a shape error: inferType received a nil expression.
type NilExpr struct {
	ast.Positioner
	stack []byte
}

func (e NilExpr) Error() string          { return "cannot infer type of nil expression" }
func (e NilExpr) Code() Code             { return ShapeError }
func (e NilExpr) getStack() []byte       { return e.stack }
func (e NilExpr) withStack(s []byte) Diagnostic { e.stack = s; return e }

// NotGeneric is a shape error: a generic-only operation received a non-Generic type.
type NotGeneric struct {
	ast.Positioner
	Got   ast.Type
	stack []byte
}

func (e NotGeneric) Error() string {
	return fmt.Sprintf("expected a generic type, got %s", e.Got)
}
func (e NotGeneric) Code() Code             { return ShapeError }
func (e NotGeneric) getStack() []byte       { return e.stack }
func (e NotGeneric) withStack(s []byte) Diagnostic { e.stack = s; return e }

// UnknownType is a name error: a Basic name has no registry entry.
type UnknownType struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e UnknownType) Error() string          { return fmt.Sprintf("unknown type: %s", e.Name) }
func (e UnknownType) Code() Code             { return NameError }
func (e UnknownType) getStack() []byte       { return e.stack }
func (e UnknownType) withStack(s []byte) Diagnostic { e.stack = s; return e }

// UnknownVariable is a name error: inferType of a Variable found no binding.
type UnknownVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e UnknownVariable) Error() string          { return fmt.Sprintf("unknown variable: %s", e.Name) }
func (e UnknownVariable) Code() Code             { return NameError }
func (e UnknownVariable) getStack() []byte       { return e.stack }
func (e UnknownVariable) withStack(s []byte) Diagnostic { e.stack = s; return e }

// UnknownTrait is a name error: a trait name has no registry entry.
type UnknownTrait struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e UnknownTrait) Error() string          { return fmt.Sprintf("unknown trait: %s", e.Name) }
func (e UnknownTrait) Code() Code             { return NameError }
func (e UnknownTrait) getStack() []byte       { return e.stack }
func (e UnknownTrait) withStack(s []byte) Diagnostic { e.stack = s; return e }

// GenericArityMismatch fires when a generic instantiation's argument count
// disagrees with its declared type-parameter count.
type GenericArityMismatch struct {
	ast.Positioner
	Name     string
	Want, Got int
	stack    []byte
}

func (e GenericArityMismatch) Error() string {
	return fmt.Sprintf("%s expects %d type argument(s), got %d", e.Name, e.Want, e.Got)
}
func (e GenericArityMismatch) Code() Code             { return ArityError }
func (e GenericArityMismatch) getStack() []byte       { return e.stack }
func (e GenericArityMismatch) withStack(s []byte) Diagnostic { e.stack = s; return e }

// FunctionArityMismatch fires when two function types being unified
// disagree on parameter count.
type FunctionArityMismatch struct {
	ast.Positioner
	Want, Got int
	stack     []byte
}

func (e FunctionArityMismatch) Error() string {
	return fmt.Sprintf("function arity mismatch: expected %d parameter(s), got %d", e.Want, e.Got)
}
func (e FunctionArityMismatch) Code() Code             { return ArityError }
func (e FunctionArityMismatch) getStack() []byte       { return e.stack }
func (e FunctionArityMismatch) withStack(s []byte) Diagnostic { e.stack = s; return e }

// ConstructorMismatch fires when two Generic types being unified have
// different constructor names (or, transitively, different arity).
type ConstructorMismatch struct {
	ast.Positioner
	Left, Right string
	stack       []byte
}

func (e ConstructorMismatch) Error() string {
	return fmt.Sprintf("generic constructors don't match: %s vs %s", e.Left, e.Right)
}
func (e ConstructorMismatch) Code() Code             { return ArityError }
func (e ConstructorMismatch) getStack() []byte       { return e.stack }
func (e ConstructorMismatch) withStack(s []byte) Diagnostic { e.stack = s; return e }

// ConstraintViolation fires when a generic instantiation's type argument
// does not implement a required trait constraint.
type ConstraintViolation struct {
	ast.Positioner
	Arg   ast.Type
	Trait string
	stack []byte
}

func (e ConstraintViolation) Error() string {
	return fmt.Sprintf("type %s does not satisfy trait constraint %s", e.Arg, e.Trait)
}
func (e ConstraintViolation) Code() Code             { return ConstraintError }
func (e ConstraintViolation) getStack() []byte       { return e.stack }
func (e ConstraintViolation) withStack(s []byte) Diagnostic { e.stack = s; return e }

// StructuralMismatch fires when a trait impl's method signature disagrees
// with the trait's declared signature.
type StructuralMismatch struct {
	ast.Positioner
	Method string
	Detail string
	stack  []byte
}

func (e StructuralMismatch) Error() string {
	return fmt.Sprintf("method %s: %s", e.Method, e.Detail)
}
func (e StructuralMismatch) Code() Code             { return StructuralError }
func (e StructuralMismatch) getStack() []byte       { return e.stack }
func (e StructuralMismatch) withStack(s []byte) Diagnostic { e.stack = s; return e }

// CircularDependency fires when a non-pointer, non-reference type graph
// contains a cycle.
type CircularDependency struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e CircularDependency) Error() string {
	return fmt.Sprintf("Circular type dependency in class: %s", e.Name)
}
func (e CircularDependency) Code() Code             { return CircularError }
func (e CircularDependency) getStack() []byte       { return e.stack }
func (e CircularDependency) withStack(s []byte) Diagnostic { e.stack = s; return e }

// OccursFailure fires when unification would bind a type variable to a term
// containing itself.
type OccursFailure struct {
	ast.Positioner
	Var   string
	stack []byte
}

func (e OccursFailure) Error() string          { return "Circular type dependency" }
func (e OccursFailure) Code() Code             { return OccursError }
func (e OccursFailure) getStack() []byte       { return e.stack }
func (e OccursFailure) withStack(s []byte) Diagnostic { e.stack = s; return e }

// Incompatible fires when two types can neither unify nor subtype one
// another.
type Incompatible struct {
	ast.Positioner
	Left, Right ast.Type
	stack       []byte
}

func (e Incompatible) Error() string {
	return fmt.Sprintf("cannot unify incompatible types: %s and %s", e.Left, e.Right)
}
func (e Incompatible) Code() Code             { return IncompatibleError }
func (e Incompatible) getStack() []byte       { return e.stack }
func (e Incompatible) withStack(s []byte) Diagnostic { e.stack = s; return e }

// Registration is a local error for duplicate registration of a type,
// generic type, class or trait. It carries a caller-chosen code shared with
// the lookup-time diagnostics above (the checker passes NameError) rather
// than inventing a ninth taxonomy entry. A missing or mismatched trait-impl
// method is reported as StructuralMismatch instead. code is unexported, so
// construction goes through NewRegistration.
type Registration struct {
	ast.Positioner
	Message string
	code    Code
	stack   []byte
}

// NewRegistration builds a Registration diagnostic with the given code.
func NewRegistration(pos ast.Positioner, message string, code Code) Registration {
	return Registration{Positioner: pos, Message: message, code: code}
}

func (e Registration) Error() string          { return e.Message }
func (e Registration) Code() Code             { return e.code }
func (e Registration) getStack() []byte       { return e.stack }
func (e Registration) withStack(s []byte) Diagnostic { e.stack = s; return e }
