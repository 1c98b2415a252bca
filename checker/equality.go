package checker

import "github.com/tocin-lang/tocin/ast"

// typesEqual is the structural-equality relation of the data model: names
// match for nominals, flags and structural fields match recursively for
// everything else. It never looks at pointer identity.
func typesEqual(t1, t2 ast.Type) bool {
	if t1 == nil && t2 == nil {
		return true
	}
	if t1 == nil || t2 == nil {
		return false
	}
	switch a := t1.(type) {
	case ast.BasicType:
		b, ok := t2.(ast.BasicType)
		return ok && a.Name == b.Name
	case ast.PointerType:
		b, ok := t2.(ast.PointerType)
		return ok && a.Unique == b.Unique && typesEqual(a.Pointee, b.Pointee)
	case ast.ReferenceType:
		b, ok := t2.(ast.ReferenceType)
		return ok && a.Mutable == b.Mutable && typesEqual(a.Referent, b.Referent)
	case ast.ArrayType:
		b, ok := t2.(ast.ArrayType)
		return ok && a.Size == b.Size && typesEqual(a.Elem, b.Elem)
	case ast.FunctionType:
		b, ok := t2.(ast.FunctionType)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !typesEqual(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return typesEqual(a.Return, b.Return)
	case ast.ClassType:
		b, ok := t2.(ast.ClassType)
		return ok && a.Name == b.Name
	case ast.TraitType:
		b, ok := t2.(ast.TraitType)
		return ok && a.Name == b.Name
	case ast.GenericType:
		b, ok := t2.(ast.GenericType)
		if !ok || a.Constructor != b.Constructor || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !typesEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case ast.TypeVariable:
		b, ok := t2.(ast.TypeVariable)
		return ok && a.Name == b.Name
	default:
		return false
	}
}

var numericNames = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"f32": true, "f64": true,
	"int": true, "int32": true, "int64": true,
	"uint32": true, "uint64": true,
	"float": true, "float32": true, "float64": true, "double": true,
}

var floatNames = map[string]bool{
	"f32": true, "f64": true,
	"float": true, "float32": true, "float64": true, "double": true,
}

// isNumericType reports whether t is one of the integer or floating basic
// types, by name. It is the "numeric" test unify's widening rule (§4.4
// step 3) is keyed on.
func isNumericType(t ast.Type) bool {
	b, ok := t.(ast.BasicType)
	return ok && numericNames[b.Name]
}

// isFloatType reports whether t is one of the floating basic types.
func isFloatType(t ast.Type) bool {
	b, ok := t.(ast.BasicType)
	return ok && floatNames[b.Name]
}
