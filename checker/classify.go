package checker

import "github.com/tocin-lang/tocin/ast"

// noCopyNominals names built-in resource handles that are never copyable
// regardless of how they were declared: duplicating a file descriptor,
// socket, mutex or thread handle by value would silently duplicate the
// handle, not the resource it refers to.
var noCopyNominals = map[string]bool{
	"File": true, "Socket": true, "Mutex": true, "Thread": true,
}

// IsNullable reports whether t is a Pointer. Nothing else in the type
// model carries a null state of its own.
func (c *Checker) IsNullable(t ast.Type) bool {
	_, ok := t.(ast.PointerType)
	return ok
}

// IsCopyable reports whether a value of t can be duplicated by a bitwise or
// field-wise copy: false for move-only classes, unique pointers, and the
// built-in resource-handle nominals; true otherwise.
func (c *Checker) IsCopyable(t ast.Type) bool {
	switch tt := t.(type) {
	case ast.PointerType:
		return !tt.Unique
	case ast.BasicType:
		return !noCopyNominals[tt.Name]
	case ast.ClassType:
		if noCopyNominals[tt.Name] {
			return false
		}
		info, ok := c.reg.getClassInfo(tt.Name)
		return !ok || !info.MoveOnly
	default:
		return true
	}
}

// IsMovable is true for every type.
func (c *Checker) IsMovable(t ast.Type) bool {
	return true
}
