package checker

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
)

// checkCircularDependency walks t's field graph looking for a class that
// reaches itself without passing through a Pointer or Reference. Those two
// constructors break the cycle: a self-referential node via a pointer field
// is a perfectly ordinary linked structure, not an infinitely-sized one.
//
// This is the single DFS both ValidateType and layout computation rely on —
// there is deliberately no second copy of this walk anywhere else in the
// package.
func (c *Checker) checkCircularDependency(pos ast.Positioner, t ast.Type) error {
	return c.circularWalk(pos, t, set.New[string](8))
}

func (c *Checker) circularWalk(pos ast.Positioner, t ast.Type, visiting *set.Set[string]) error {
	switch tt := t.(type) {
	case ast.PointerType, ast.ReferenceType:
		return nil

	case ast.ClassType:
		if visiting.Contains(tt.Name) {
			return diag.New(diag.CircularDependency{Positioner: pos, Name: tt.Name})
		}
		info, ok := c.reg.getClassInfo(tt.Name)
		if !ok {
			return nil
		}
		visiting.Insert(tt.Name)
		for _, field := range info.Fields {
			if err := c.circularWalk(pos, field.Snd, visiting); err != nil {
				return err
			}
		}
		if info.Superclass != "" {
			if err := c.circularWalk(pos, ast.ClassType{Name: info.Superclass}, visiting); err != nil {
				return err
			}
		}
		visiting.Remove(tt.Name)
		return nil

	case ast.GenericType:
		for _, arg := range tt.Args {
			if err := c.circularWalk(pos, arg, visiting); err != nil {
				return err
			}
		}
		return nil

	case ast.ArrayType:
		return c.circularWalk(pos, tt.Elem, visiting)

	case ast.BasicType:
		if visiting.Contains(tt.Name) {
			return diag.New(diag.CircularDependency{Positioner: pos, Name: tt.Name})
		}
		definition, ok := c.reg.getTypeDefinition(tt.Name)
		if !ok {
			return nil
		}
		visiting.Insert(tt.Name)
		if err := c.circularWalk(pos, definition, visiting); err != nil {
			return err
		}
		visiting.Remove(tt.Name)
		return nil

	default:
		// FunctionType, Trait and TypeVariable nodes don't carry further
		// field graph; functions are reached through a code pointer
		// regardless of how they're spelled.
		return nil
	}
}
