package checker

import "github.com/tocin-lang/tocin/ast"

// IsIntegral reports whether t names one of the fixed-width or generic
// integer basics.
func (c *Checker) IsIntegral(t ast.Type) bool {
	b, ok := t.(ast.BasicType)
	if !ok {
		return false
	}
	switch b.Name {
	case "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "int", "int32", "int64", "uint32", "uint64":
		return true
	default:
		return false
	}
}

// IsFloating reports whether t names one of the floating-point basics.
func (c *Checker) IsFloating(t ast.Type) bool {
	return isFloatType(t)
}

// IsNumeric reports whether t is integral or floating.
func (c *Checker) IsNumeric(t ast.Type) bool {
	return isNumericType(t)
}

// IsSigned reports whether t is a numeric basic that is not one of the
// unsigned widths. Non-numeric types are reported as unsigned, matching the
// source's behavior of answering false for anything it cannot recognize as
// numeric at all.
func (c *Checker) IsSigned(t ast.Type) bool {
	b, ok := t.(ast.BasicType)
	if !ok {
		return false
	}
	switch b.Name {
	case "u8", "u16", "u32", "u64", "uint32", "uint64":
		return false
	default:
		return c.IsNumeric(t)
	}
}

// IsPointerType reports whether t is a Pointer.
func (c *Checker) IsPointerType(t ast.Type) bool {
	_, ok := t.(ast.PointerType)
	return ok
}

// IsReferenceType reports whether t is a Reference.
func (c *Checker) IsReferenceType(t ast.Type) bool {
	_, ok := t.(ast.ReferenceType)
	return ok
}

// IsArrayType reports whether t is an Array, or a Generic instantiation of
// the built-in Array/Vec constructors (the two spellings a front end might
// desugar a list literal's static type to).
func (c *Checker) IsArrayType(t ast.Type) bool {
	switch tt := t.(type) {
	case ast.ArrayType:
		return true
	case ast.GenericType:
		return tt.Constructor == "Array" || tt.Constructor == "Vec"
	default:
		return false
	}
}

// IsFunctionType reports whether t is a Function.
func (c *Checker) IsFunctionType(t ast.Type) bool {
	_, ok := t.(ast.FunctionType)
	return ok
}

// IsGenericType reports whether t is a Generic.
func (c *Checker) IsGenericType(t ast.Type) bool {
	_, ok := t.(ast.GenericType)
	return ok
}

// IsVoidType reports whether t is the canonical void Basic.
func (c *Checker) IsVoidType(t ast.Type) bool {
	b, ok := t.(ast.BasicType)
	return ok && b.Name == "void"
}
