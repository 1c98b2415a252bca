// Package ast defines the fixed variant set the checker consumes: the nine
// type shapes and seven expression shapes named in the specification. A real
// front end would own a much richer AST; here we define only the checker-
// facing subset, since the lexer and parser that would produce a full tree
// are external collaborators (see the module's design notes).
package ast

import (
	"strconv"
	"strings"
)

// Type is a tagged sum over the nine type shapes. Dispatch is a type switch
// over the concrete variants below rather than a class hierarchy with
// downcasts — the exhaustiveness of a switch is machine-checkable, a failed
// downcast cascade is not.
type Type interface {
	typeNode()
	String() string
}

// BasicType names a built-in width, a float kind, bool/string/void/null, or
// a user-defined nominal simple name.
type BasicType struct {
	Name string
}

func (BasicType) typeNode()      {}
func (t BasicType) String() string { return t.Name }

// PointerType is an exclusive-ownership-capable pointer. Unique pointers are
// non-copyable (see checker.IsCopyable).
type PointerType struct {
	Pointee Type
	Unique  bool
}

func (PointerType) typeNode() {}
func (t PointerType) String() string {
	if t.Unique {
		return "unique*" + t.Pointee.String()
	}
	return "*" + t.Pointee.String()
}

// ReferenceType is a borrow of its Referent, mutable or not.
type ReferenceType struct {
	Referent Type
	Mutable  bool
}

func (ReferenceType) typeNode() {}
func (t ReferenceType) String() string {
	if t.Mutable {
		return "&mut " + t.Referent.String()
	}
	return "&" + t.Referent.String()
}

// ArrayType is a fixed-size (Size>0) or dynamically-sized (Size==0) sequence.
type ArrayType struct {
	Elem Type
	Size int
}

func (ArrayType) typeNode() {}
func (t ArrayType) String() string {
	if t.Size == 0 {
		return "[]" + t.Elem.String()
	}
	return "[" + strconv.Itoa(t.Size) + "]" + t.Elem.String()
}

// FunctionType is an ordered parameter list plus a return type.
type FunctionType struct {
	Params []Type
	Return Type
}

func (FunctionType) typeNode() {}
func (t FunctionType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.Return.String()
}

// ClassType is a nominal type resolved through the registry for its fields
// and superclass.
type ClassType struct {
	Name string
}

func (ClassType) typeNode()      {}
func (t ClassType) String() string { return t.Name }

// TraitType is a nominal type resolved through the trait table for its
// method set.
type TraitType struct {
	Name string
}

func (TraitType) typeNode()      {}
func (t TraitType) String() string { return t.Name }

// GenericType is a constructor name plus ordered type arguments, e.g.
// Array<int> or a user generic Box<T>.
type GenericType struct {
	Constructor string
	Args        []Type
}

func (GenericType) typeNode() {}
func (t GenericType) String() string {
	if len(t.Args) == 0 {
		return t.Constructor
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Constructor + "<" + strings.Join(parts, ", ") + ">"
}

// TypeVariable is the unifier's unknown.
type TypeVariable struct {
	Name string
}

func (TypeVariable) typeNode()      {}
func (t TypeVariable) String() string { return "'" + t.Name }
