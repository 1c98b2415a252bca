package checker

import (
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
)

// UnifyTypes computes the most general type both t1 and t2 can stand for, or
// fails with Incompatible. The steps run in order and the first applicable
// one decides the outcome:
//
//  1. structural equality — t1 as-is.
//  2. either side is a type variable — bind to the other side, rejecting an
//     occurs-check failure.
//  3. both sides are numeric basics — widen to float if either is floating,
//     otherwise to int.
//  4. both Function — unify pointwise, same arity required.
//  5. both Array — unify element types.
//  6. both Generic — same constructor and arity required, unify args
//     pointwise.
//  7. otherwise — fall back to subtyping in either direction.
//  8. otherwise — Incompatible.
func (c *Checker) UnifyTypes(pos ast.Positioner, t1, t2 ast.Type) (ast.Type, error) {
	if t1 == nil || t2 == nil {
		return nil, diag.New(diag.NilType{Positioner: pos, Operation: "unifyTypes"})
	}

	if typesEqual(t1, t2) {
		return t1, nil
	}

	if v, ok := t1.(ast.TypeVariable); ok {
		if occursIn(v.Name, t2) {
			return nil, diag.New(diag.OccursFailure{Positioner: pos, Var: v.Name})
		}
		return t2, nil
	}
	if v, ok := t2.(ast.TypeVariable); ok {
		if occursIn(v.Name, t1) {
			return nil, diag.New(diag.OccursFailure{Positioner: pos, Var: v.Name})
		}
		return t1, nil
	}

	if isNumericType(t1) && isNumericType(t2) {
		if isFloatType(t1) || isFloatType(t2) {
			return c.GetFloatType(), nil
		}
		return c.GetIntType(), nil
	}

	if f1, ok := t1.(ast.FunctionType); ok {
		f2, ok := t2.(ast.FunctionType)
		if !ok {
			return c.unifyBySubtype(pos, t1, t2)
		}
		if len(f1.Params) != len(f2.Params) {
			return nil, diag.New(diag.FunctionArityMismatch{Positioner: pos, Want: len(f1.Params), Got: len(f2.Params)})
		}
		params := make([]ast.Type, len(f1.Params))
		for i := range f1.Params {
			p, err := c.UnifyTypes(pos, f1.Params[i], f2.Params[i])
			if err != nil {
				return nil, err
			}
			params[i] = p
		}
		ret, err := c.UnifyTypes(pos, f1.Return, f2.Return)
		if err != nil {
			return nil, err
		}
		return ast.FunctionType{Params: params, Return: ret}, nil
	}

	if a1, ok := t1.(ast.ArrayType); ok {
		a2, ok := t2.(ast.ArrayType)
		if !ok {
			return c.unifyBySubtype(pos, t1, t2)
		}
		elem, err := c.UnifyTypes(pos, a1.Elem, a2.Elem)
		if err != nil {
			return nil, err
		}
		size := a1.Size
		if a1.Size != a2.Size {
			size = 0
		}
		return ast.ArrayType{Elem: elem, Size: size}, nil
	}

	if g1, ok := t1.(ast.GenericType); ok {
		g2, ok := t2.(ast.GenericType)
		if !ok {
			return c.unifyBySubtype(pos, t1, t2)
		}
		if g1.Constructor != g2.Constructor || len(g1.Args) != len(g2.Args) {
			return nil, diag.New(diag.ConstructorMismatch{Positioner: pos, Left: g1.Constructor, Right: g2.Constructor})
		}
		args := make([]ast.Type, len(g1.Args))
		for i := range g1.Args {
			a, err := c.UnifyTypes(pos, g1.Args[i], g2.Args[i])
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return ast.GenericType{Constructor: g1.Constructor, Args: args}, nil
	}

	return c.unifyBySubtype(pos, t1, t2)
}

// unifyBySubtype is step 7/8: neither side's shape matched, so the last
// resort is asking whether one subtypes the other. The supertype side wins
// because it is the more general of the two.
func (c *Checker) unifyBySubtype(pos ast.Positioner, t1, t2 ast.Type) (ast.Type, error) {
	if c.isSubtype(t1, t2) {
		return t2, nil
	}
	if c.isSubtype(t2, t1) {
		return t1, nil
	}
	return nil, diag.New(diag.Incompatible{Positioner: pos, Left: t1, Right: t2})
}
