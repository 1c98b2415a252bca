package checker

import "github.com/tocin-lang/tocin/ast"

// occursIn is the occurs-check: does the unifier's candidate binding varName
// appear anywhere inside t's structural fields? A Generic whose constructor
// name coincides with varName counts as an occurrence, the same way a Basic
// whose name coincides does — both can be the textual stand-in for a type
// parameter before substitution has run.
func occursIn(varName string, t ast.Type) bool {
	if t == nil {
		return false
	}
	switch t := t.(type) {
	case ast.TypeVariable:
		return t.Name == varName
	case ast.BasicType:
		return t.Name == varName
	case ast.PointerType:
		return occursIn(varName, t.Pointee)
	case ast.ReferenceType:
		return occursIn(varName, t.Referent)
	case ast.ArrayType:
		return occursIn(varName, t.Elem)
	case ast.FunctionType:
		if occursIn(varName, t.Return) {
			return true
		}
		for _, p := range t.Params {
			if occursIn(varName, p) {
				return true
			}
		}
		return false
	case ast.GenericType:
		if t.Constructor == varName {
			return true
		}
		for _, a := range t.Args {
			if occursIn(varName, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
