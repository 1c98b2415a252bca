package checker

import "github.com/tocin-lang/tocin/ast"

// basicSizes and basicAligns give size and alignment in bytes for every
// built-in name on a 64-bit target. Aliases resolve to their canonical
// width before this table is consulted.
var basicSizes = map[string]int{
	"i8": 1, "u8": 1, "bool": 1,
	"i16": 2, "u16": 2,
	"i32": 4, "u32": 4, "f32": 4,
	"i64": 8, "u64": 8, "f64": 8,
	"int": 4, "float": 4, "double": 8,
	"void": 0,
	"null": 8,
	// string is a (pointer, length) pair.
	"string": 16,
}

var basicAligns = map[string]int{
	"i8": 1, "u8": 1, "bool": 1,
	"i16": 2, "u16": 2,
	"i32": 4, "u32": 4, "f32": 4,
	"i64": 8, "u64": 8, "f64": 8,
	"int": 4, "float": 4, "double": 8,
	"void": 1,
	"null": 8,
	"string": 8,
}

const pointerSize, pointerAlign = 8, 8

// dynamicArraySize/Align model a dynamic array (N=0) as pointer-sized, used
// when an ArrayType carries no fixed Size, or when a fixed-size array's
// element size is itself unknown.
const dynamicArraySize, dynamicArrayAlign = 8, 8

// GetTypeSize returns t's size in bytes and true, resolving aliases and
// recursing through the structural constructors; a Class's size folds in
// field padding (each field starts at a multiple of its own alignment) plus
// trailing padding so the whole class is a multiple of its own alignment.
// It returns (0, false) for a nil type, a Trait (an interface contract has
// no representation of its own) or a TypeVariable (unresolved), and for a
// Basic name with neither a size-table entry nor a registered alias. An
// unregistered class name gives (8, false).
func (c *Checker) GetTypeSize(t ast.Type) (int, bool) {
	if t == nil {
		return 0, false
	}
	switch tt := t.(type) {
	case ast.BasicType:
		if resolved, ok := c.reg.resolveAlias(tt.Name); ok {
			return c.GetTypeSize(resolved)
		}
		if size, ok := basicSizes[tt.Name]; ok {
			return size, true
		}
		return 0, false
	case ast.PointerType:
		return pointerSize, true
	case ast.ReferenceType:
		return pointerSize, true
	case ast.FunctionType:
		return pointerSize, true
	case ast.ArrayType:
		if tt.Size > 0 {
			if elemSize, ok := c.GetTypeSize(tt.Elem); ok {
				return elemSize * tt.Size, true
			}
		}
		return dynamicArraySize, true
	case ast.ClassType:
		size, _, ok := c.classLayout(tt.Name)
		return size, ok
	case ast.GenericType:
		return pointerSize, true
	default:
		// TraitType and TypeVariable: no concrete representation.
		return 0, false
	}
}

// GetTypeAlignment mirrors GetTypeSize's recursion but returns the required
// alignment instead. A Trait, a TypeVariable, or a Basic name with neither a
// table entry nor an alias gives (1, false); a nil type gives (0, false); an
// unregistered class name gives (8, false).
func (c *Checker) GetTypeAlignment(t ast.Type) (int, bool) {
	if t == nil {
		return 0, false
	}
	switch tt := t.(type) {
	case ast.BasicType:
		if resolved, ok := c.reg.resolveAlias(tt.Name); ok {
			return c.GetTypeAlignment(resolved)
		}
		if align, ok := basicAligns[tt.Name]; ok {
			return align, true
		}
		return 1, false
	case ast.PointerType:
		return pointerAlign, true
	case ast.ReferenceType:
		return pointerAlign, true
	case ast.FunctionType:
		return pointerAlign, true
	case ast.ArrayType:
		if tt.Size > 0 {
			if align, ok := c.GetTypeAlignment(tt.Elem); ok {
				return align, true
			}
		}
		return dynamicArrayAlign, true
	case ast.ClassType:
		_, align, ok := c.classLayout(tt.Name)
		return align, ok
	case ast.GenericType:
		return pointerAlign, true
	default:
		return 1, false
	}
}

// classLayout computes a class's (size, alignment) by placing fields in
// declaration order, padding each to its own alignment, and padding the
// whole structure to be a multiple of the widest field's alignment. A field
// whose own size or alignment is unknown contributes nothing, matching how
// an opaque member is skipped rather than faulted. An unregistered class
// name has no fields to lay out and is treated as pointer-sized.
func (c *Checker) classLayout(name string) (size, align int, ok bool) {
	info, known := c.reg.getClassInfo(name)
	if !known {
		return pointerSize, pointerAlign, false
	}
	offset, maxAlign := 0, 1
	for _, field := range info.Fields {
		fieldSize, sizeOk := c.GetTypeSize(field.Snd)
		fieldAlign, alignOk := c.GetTypeAlignment(field.Snd)
		if !sizeOk || !alignOk {
			continue
		}
		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
		offset = alignUp(offset, fieldAlign) + fieldSize
	}
	return alignUp(offset, maxAlign), maxAlign, true
}

func alignUp(offset, align int) int {
	if align <= 1 {
		return offset
	}
	rem := offset % align
	if rem == 0 {
		return offset
	}
	return offset + (align - rem)
}
