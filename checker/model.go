// Package checker implements the type-checking core: registry, trait table,
// inference, unification, subtyping, generic instantiation, circular-
// dependency detection, layout and mangling. It is a synchronous computation
// over ast.Type/ast.Expr values supplied by a driver; see Checker for the
// façade.
package checker

import (
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/util"
)

// variance mirrors frontend/types/variance.go's varianceInfo: the design
// leaves generics invariant today but carries the field so a future
// extension does not need to touch every call site that consults it.
type variance struct {
	covariant, contravariant bool
}

var (
	varianceInvariant = variance{}
)

// ClassInfo is a class's nominal metadata: its superclass (empty if none),
// its ordered field list, and whether it is move-only. Fields pairs a name
// with its type the way frontend/types/datatypes.go pairs a record's fields
// ([]util.Pair[ir.Var, SimpleType]) rather than declaring a bespoke struct.
type ClassInfo struct {
	Superclass string
	Fields     []util.Pair[string, ast.Type]
	MoveOnly   bool
}

// TypeConstraint demands that a generic instantiation's argument implement
// the named trait.
type TypeConstraint struct {
	TraitName string
}

// TypeParameter is one formal parameter of a generic type, with its ordered
// constraints.
type TypeParameter struct {
	Name        string
	Constraints []TypeConstraint
	variance    variance
}

// Trait is a named method-signature set; the first parameter of each
// signature is conventionally the receiver.
type Trait struct {
	Name    string
	Methods map[string]ast.FunctionType
}

// TraitImpl associates a trait, a concrete target type, and the method
// implementations honoring that trait's signatures.
type TraitImpl struct {
	TraitName   string
	Target      ast.Type
	MethodImpls map[string]ast.FunctionType
}
