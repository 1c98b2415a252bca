package checker

import "github.com/tocin-lang/tocin/ast"

// IsSubtype answers sub <: super. It never fails: an unknown trait or class
// simply cannot be reached by the walk below, so the relation degrades to
// false rather than erroring — callers that need to distinguish "false"
// from "unknown name" go through CheckTypeCompatibility or
// DoesTypeImplementTrait instead.
func (c *Checker) IsSubtype(pos ast.Positioner, sub, super ast.Type) (bool, error) {
	return c.isSubtype(sub, super), nil
}

func (c *Checker) isSubtype(sub, super ast.Type) bool {
	if sub == nil || super == nil {
		return false
	}

	// null is a subtype of every pointer type.
	if b, ok := sub.(ast.BasicType); ok && b.Name == "null" {
		if _, ok := super.(ast.PointerType); ok {
			return true
		}
	}

	if typesEqual(sub, super) {
		return true
	}

	// Trait targets: super being a Trait asks whether sub implements it,
	// regardless of sub's own shape. This has to run before the shape
	// switch below, or a ClassType/GenericType/FunctionType sub never falls
	// through to it.
	if superT, ok := super.(ast.TraitType); ok {
		return c.traits.doesTypeImplementTrait(sub, superT.Name)
	}

	switch subT := sub.(type) {
	case ast.ClassType:
		superT, ok := super.(ast.ClassType)
		if !ok {
			return false
		}
		return c.isClassDescendant(subT.Name, superT.Name)

	case ast.GenericType:
		superT, ok := super.(ast.GenericType)
		if !ok {
			return false
		}
		if subT.Constructor != superT.Constructor || len(subT.Args) != len(superT.Args) {
			return false
		}
		for i := range subT.Args {
			if !typesEqual(subT.Args[i], superT.Args[i]) {
				return false
			}
		}
		return true

	case ast.FunctionType:
		superT, ok := super.(ast.FunctionType)
		if !ok || len(subT.Params) != len(superT.Params) {
			return false
		}
		for i := range subT.Params {
			// Parameters are contravariant.
			if !c.isSubtype(superT.Params[i], subT.Params[i]) {
				return false
			}
		}
		// Return type is covariant.
		return c.isSubtype(subT.Return, superT.Return)
	}

	return false
}

// isClassDescendant walks the nominal superclass chain starting at name,
// stopping at the first class with no registered info (an undeclared or
// built-in root) or an empty superclass field.
func (c *Checker) isClassDescendant(name, ancestor string) bool {
	current := name
	for {
		info, ok := c.reg.getClassInfo(current)
		if !ok {
			return false
		}
		if info.Superclass == ancestor {
			return true
		}
		if info.Superclass == "" {
			return false
		}
		current = info.Superclass
	}
}
