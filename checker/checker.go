package checker

import (
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
	"github.com/tocin-lang/tocin/internal/log"
)

var checkerLogger = log.DefaultLogger.With("section", "checker")

// Checker is the façade described in the external interfaces: a single
// object encapsulating the registry and trait tables plus a variable
// environment, exposing every fallible operation as a (result, error) pair.
// A build phase (registerX calls) must complete before the query phase
// (everything else) runs concurrently across goroutines; Checker itself
// holds no mutex, matching the single-threaded-cooperative model.
type Checker struct {
	reg    *registry
	traits *traitTable
	vars   map[string]ast.Type
}

// NewChecker returns a Checker with the built-in types bootstrapped and an
// empty variable environment.
func NewChecker() *Checker {
	return &Checker{
		reg:    newRegistry(),
		traits: newTraitTable(),
		vars:   make(map[string]ast.Type),
	}
}

// BindVariable adds name to the variable environment inferType(Variable)
// consults. The driver owns the environment's lifetime; the Checker just
// holds a flat map for the single compilation unit it serves.
func (c *Checker) BindVariable(name string, t ast.Type) {
	c.vars[name] = t
}

// RegisterType inserts a nominal basic/class/trait name into the registry.
// Fails if name is already present — built-in shadowing is disallowed.
func (c *Checker) RegisterType(pos ast.Positioner, name string, t ast.Type) error {
	return c.reg.registerType(pos, name, t)
}

// RegisterAlias maps name to t; idempotent, last write wins.
func (c *Checker) RegisterAlias(name string, t ast.Type) {
	c.reg.registerAlias(name, t)
}

// RegisterGenericType records a generic's type-parameter list (with
// constraints) and its body definition.
func (c *Checker) RegisterGenericType(pos ast.Positioner, name string, params []TypeParameter, definition ast.Type) error {
	return c.reg.registerGenericType(pos, name, params, definition)
}

// RegisterClass stores a class's inheritance chain and fields.
func (c *Checker) RegisterClass(pos ast.Positioner, name string, info ClassInfo) error {
	return c.reg.registerClass(pos, name, info)
}

// LookupType is a read-only registry query.
func (c *Checker) LookupType(name string) (ast.Type, bool) { return c.reg.lookupType(name) }

// ResolveAlias is a read-only registry query.
func (c *Checker) ResolveAlias(name string) (ast.Type, bool) { return c.reg.resolveAlias(name) }

// GetTypeParameters is a read-only registry query.
func (c *Checker) GetTypeParameters(name string) ([]TypeParameter, bool) {
	return c.reg.getTypeParameters(name)
}

// GetClassInfo is a read-only registry query.
func (c *Checker) GetClassInfo(name string) (ClassInfo, bool) { return c.reg.getClassInfo(name) }

// GetIntType, GetFloatType, ... are the infallible built-in accessors.
func (c *Checker) GetIntType() ast.Type    { return c.reg.getIntType() }
func (c *Checker) GetFloatType() ast.Type  { return c.reg.getFloatType() }
func (c *Checker) GetBoolType() ast.Type   { return c.reg.getBoolType() }
func (c *Checker) GetStringType() ast.Type { return c.reg.getStringType() }
func (c *Checker) GetVoidType() ast.Type   { return c.reg.getVoidType() }
func (c *Checker) GetNullType() ast.Type   { return c.reg.getNullType() }

// MakeArrayType builds the Generic spelling Array<elem>, the shape a front
// end that desugars list literals through the generic machinery (rather
// than the dedicated ArrayType constructor) would reach for.
func (c *Checker) MakeArrayType(elem ast.Type) ast.Type {
	return ast.GenericType{Constructor: "Array", Args: []ast.Type{elem}}
}

// MakePointerType builds a non-unique Pointer to pointee.
func (c *Checker) MakePointerType(pointee ast.Type) ast.Type {
	return ast.PointerType{Pointee: pointee}
}

// MakeReferenceType builds a non-mutable Reference to referent.
func (c *Checker) MakeReferenceType(referent ast.Type) ast.Type {
	return ast.ReferenceType{Referent: referent}
}

// MakeOptionType builds the Generic spelling Option<inner>.
func (c *Checker) MakeOptionType(inner ast.Type) ast.Type {
	return ast.GenericType{Constructor: "Option", Args: []ast.Type{inner}}
}

// MakeResultType builds the Generic spelling Result<ok, err>.
func (c *Checker) MakeResultType(ok, err ast.Type) ast.Type {
	return ast.GenericType{Constructor: "Result", Args: []ast.Type{ok, err}}
}

// RegisterTrait declares a trait's method-signature set. Fails if the name
// is already present.
func (c *Checker) RegisterTrait(pos ast.Positioner, trait Trait) error {
	return c.traits.registerTrait(pos, trait)
}

// RegisterTraitImpl associates a trait, target type and method
// implementations. Fails if the trait is unknown, a required method is
// missing, or an implemented method's signature disagrees with the trait's.
func (c *Checker) RegisterTraitImpl(pos ast.Positioner, impl TraitImpl) error {
	return c.traits.registerTraitImpl(pos, impl)
}

// GetTrait is a read-only trait-table query.
func (c *Checker) GetTrait(name string) (Trait, bool) { return c.traits.getTrait(name) }

// GetTraitImpl is a read-only trait-table query; target match uses
// structural equality.
func (c *Checker) GetTraitImpl(traitName string, target ast.Type) (TraitImpl, bool) {
	return c.traits.getTraitImpl(traitName, target)
}

// DoesTypeImplementTrait reports whether t has a registered impl for
// traitName, failing if traitName itself was never declared.
func (c *Checker) DoesTypeImplementTrait(pos ast.Positioner, t ast.Type, traitName string) (bool, error) {
	if _, ok := c.traits.getTrait(traitName); !ok {
		return false, diag.New(diag.UnknownTrait{Positioner: pos, Name: traitName})
	}
	return c.traits.doesTypeImplementTrait(t, traitName), nil
}

// CheckTraitConstraints verifies t satisfies every constraint, failing on
// the first one it does not.
func (c *Checker) CheckTraitConstraints(pos ast.Positioner, t ast.Type, constraints []TypeConstraint) error {
	for _, constraint := range constraints {
		ok, err := c.DoesTypeImplementTrait(pos, t, constraint.TraitName)
		if err != nil {
			return err
		}
		if !ok {
			return diag.New(diag.ConstraintViolation{Positioner: pos, Arg: t, Trait: constraint.TraitName})
		}
	}
	return nil
}

// TypesEqual is the structural-equality relation of §3.
func (c *Checker) TypesEqual(t1, t2 ast.Type) bool { return typesEqual(t1, t2) }

// ValidateType checks t for well-formedness: not nil, no circular
// dependency, and — for a Basic name — a registry entry; for a Generic, that
// every argument validates and that the instantiation itself is valid.
func (c *Checker) ValidateType(pos ast.Positioner, t ast.Type) (ast.Type, error) {
	if t == nil {
		return nil, diag.New(diag.NilType{Positioner: pos, Operation: "validateType"})
	}
	if err := c.checkCircularDependency(pos, t); err != nil {
		return nil, err
	}
	switch t := t.(type) {
	case ast.BasicType:
		if _, ok := c.reg.lookupType(t.Name); !ok {
			return nil, diag.New(diag.UnknownType{Positioner: pos, Name: t.Name})
		}
		return t, nil
	case ast.GenericType:
		for _, arg := range t.Args {
			if _, err := c.ValidateType(pos, arg); err != nil {
				return nil, err
			}
		}
		if _, err := c.ValidateGenericInstantiation(pos, t, t.Args); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return t, nil
	}
}

// CheckTypeCompatibility reports whether from can be used where to is
// expected: an exact structural match, or a subtyping relationship.
func (c *Checker) CheckTypeCompatibility(pos ast.Positioner, from, to ast.Type) (bool, error) {
	if from == nil || to == nil {
		return false, diag.New(diag.NilType{Positioner: pos, Operation: "checkTypeCompatibility"})
	}
	if typesEqual(from, to) {
		return true, nil
	}
	return c.IsSubtype(pos, from, to)
}
