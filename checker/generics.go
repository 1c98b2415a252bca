package checker

import "github.com/tocin-lang/tocin/ast"
import "github.com/tocin-lang/tocin/diag"

// InstantiateGenericType substitutes args for name's declared type
// parameters throughout its body definition, after checking arity and every
// parameter's trait constraints. The substitution rebuilds a node only when
// one of its descendants actually changed, so an instantiation that leaves
// most of a large definition untouched shares structure with it rather than
// deep-copying.
func (c *Checker) InstantiateGenericType(pos ast.Positioner, name string, args []ast.Type) (ast.Type, error) {
	params, ok := c.reg.getTypeParameters(name)
	if !ok {
		return nil, diag.New(diag.UnknownType{Positioner: pos, Name: name})
	}
	if len(params) != len(args) {
		return nil, diag.New(diag.GenericArityMismatch{Positioner: pos, Name: name, Want: len(params), Got: len(args)})
	}
	for i, p := range params {
		if err := c.CheckTraitConstraints(pos, args[i], p.Constraints); err != nil {
			return nil, err
		}
	}
	definition, ok := c.reg.getTypeDefinition(name)
	if !ok {
		return nil, diag.New(diag.UnknownType{Positioner: pos, Name: name})
	}
	sub := make(map[string]ast.Type, len(params))
	for i, p := range params {
		sub[p.Name] = args[i]
	}
	return substitute(definition, sub), nil
}

// ValidateGenericInstantiation checks that g's own constructor can be
// instantiated with args, failing NotGeneric if g is not itself a Generic.
func (c *Checker) ValidateGenericInstantiation(pos ast.Positioner, t ast.Type, args []ast.Type) (ast.Type, error) {
	g, ok := t.(ast.GenericType)
	if !ok {
		return nil, diag.New(diag.NotGeneric{Positioner: pos, Got: t})
	}
	return c.InstantiateGenericType(pos, g.Constructor, args)
}

// substitute rewrites every free occurrence of a name in sub throughout t.
func substitute(t ast.Type, sub map[string]ast.Type) ast.Type {
	result, _ := substituteRec(t, sub)
	return result
}

// substituteRec returns the substituted node and whether anything actually
// changed; callers use the bool to decide whether to keep sharing the
// original node or build a new one.
func substituteRec(t ast.Type, sub map[string]ast.Type) (ast.Type, bool) {
	switch tt := t.(type) {
	case ast.TypeVariable:
		if repl, ok := sub[tt.Name]; ok {
			return repl, true
		}
		return tt, false

	case ast.BasicType:
		if repl, ok := sub[tt.Name]; ok {
			return repl, true
		}
		return tt, false

	case ast.PointerType:
		pointee, changed := substituteRec(tt.Pointee, sub)
		if !changed {
			return tt, false
		}
		return ast.PointerType{Pointee: pointee, Unique: tt.Unique}, true

	case ast.ReferenceType:
		referent, changed := substituteRec(tt.Referent, sub)
		if !changed {
			return tt, false
		}
		return ast.ReferenceType{Referent: referent, Mutable: tt.Mutable}, true

	case ast.ArrayType:
		elem, changed := substituteRec(tt.Elem, sub)
		if !changed {
			return tt, false
		}
		return ast.ArrayType{Elem: elem, Size: tt.Size}, true

	case ast.FunctionType:
		anyChanged := false
		params := make([]ast.Type, len(tt.Params))
		for i, p := range tt.Params {
			np, changed := substituteRec(p, sub)
			if changed {
				anyChanged = true
				params[i] = np
			} else {
				params[i] = p
			}
		}
		ret, retChanged := substituteRec(tt.Return, sub)
		if retChanged {
			anyChanged = true
		} else {
			ret = tt.Return
		}
		if !anyChanged {
			return tt, false
		}
		return ast.FunctionType{Params: params, Return: ret}, true

	case ast.GenericType:
		anyChanged := false
		args := make([]ast.Type, len(tt.Args))
		for i, a := range tt.Args {
			na, changed := substituteRec(a, sub)
			if changed {
				anyChanged = true
				args[i] = na
			} else {
				args[i] = a
			}
		}
		if !anyChanged {
			return tt, false
		}
		return ast.GenericType{Constructor: tt.Constructor, Args: args}, true

	default:
		return t, false
	}
}
