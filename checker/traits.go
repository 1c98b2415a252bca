package checker

import (
	"fmt"

	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
	"github.com/tocin-lang/tocin/internal/log"
)

var traitsLogger = log.DefaultLogger.With("section", "traits")

// traitTable is write-once for trait declarations: re-registering a trait
// name is an error. Implementations are append-only; the first impl
// registered for a (trait, target) pair wins on lookup, later ones are kept
// but never found by getTraitImpl/doesTypeImplementTrait.
type traitTable struct {
	traits map[string]Trait
	impls  []TraitImpl
}

func newTraitTable() *traitTable {
	return &traitTable{traits: make(map[string]Trait)}
}

func (tt *traitTable) registerTrait(pos ast.Positioner, trait Trait) error {
	if _, ok := tt.traits[trait.Name]; ok {
		return diag.New(diag.NewRegistration(pos, fmt.Sprintf("trait already registered: %s", trait.Name), diag.NameError))
	}
	tt.traits[trait.Name] = trait
	traitsLogger.Debug("registered trait", "name", trait.Name, "methods", len(trait.Methods))
	return nil
}

// registerTraitImpl fails if the trait is unknown, if any declared method is
// unimplemented, or if an implemented method's signature disagrees with the
// trait's declaration. On success the impl is appended even if a prior impl
// already exists for the same (trait, target) pair — first registered still
// wins on lookup, per the write-once-for-lookup, append-only-for-storage
// contract.
func (tt *traitTable) registerTraitImpl(pos ast.Positioner, impl TraitImpl) error {
	trait, ok := tt.traits[impl.TraitName]
	if !ok {
		return diag.New(diag.UnknownTrait{Positioner: pos, Name: impl.TraitName})
	}
	for methodName, want := range trait.Methods {
		got, ok := impl.MethodImpls[methodName]
		if !ok {
			return diag.New(diag.StructuralMismatch{
				Positioner: pos,
				Method:     methodName,
				Detail:     "missing method implementation",
			})
		}
		if err := checkSignatureMatches(pos, methodName, got, want); err != nil {
			return err
		}
	}
	tt.impls = append(tt.impls, impl)
	traitsLogger.Debug("registered trait impl", "trait", impl.TraitName, "target", impl.Target)
	return nil
}

func checkSignatureMatches(pos ast.Positioner, methodName string, got, want ast.FunctionType) error {
	if len(got.Params) != len(want.Params) {
		return diag.New(diag.StructuralMismatch{
			Positioner: pos,
			Method:     methodName,
			Detail:     fmt.Sprintf("parameter count mismatch: expected %d, got %d", len(want.Params), len(got.Params)),
		})
	}
	for i := range want.Params {
		if !typesEqual(got.Params[i], want.Params[i]) {
			return diag.New(diag.StructuralMismatch{
				Positioner: pos,
				Method:     methodName,
				Detail:     fmt.Sprintf("parameter %d type mismatch: expected %s, got %s", i, want.Params[i], got.Params[i]),
			})
		}
	}
	if !typesEqual(got.Return, want.Return) {
		return diag.New(diag.StructuralMismatch{
			Positioner: pos,
			Method:     methodName,
			Detail:     fmt.Sprintf("return type mismatch: expected %s, got %s", want.Return, got.Return),
		})
	}
	return nil
}

func (tt *traitTable) getTrait(name string) (Trait, bool) {
	t, ok := tt.traits[name]
	return t, ok
}

// getTraitImpl returns the first impl registered for (traitName, target),
// comparing target by structural equality, not identity.
func (tt *traitTable) getTraitImpl(traitName string, target ast.Type) (TraitImpl, bool) {
	for _, impl := range tt.impls {
		if impl.TraitName == traitName && typesEqual(impl.Target, target) {
			return impl, true
		}
	}
	return TraitImpl{}, false
}

// doesTypeImplementTrait performs a linear scan, returning true on the
// first structural-equality hit.
func (tt *traitTable) doesTypeImplementTrait(t ast.Type, traitName string) bool {
	for _, impl := range tt.impls {
		if impl.TraitName == traitName && typesEqual(impl.Target, t) {
			return true
		}
	}
	return false
}
