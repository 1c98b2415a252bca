package checker

import (
	"fmt"
	"strings"

	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
	"github.com/tocin-lang/tocin/util"
)

// InferType computes expr's type, recursing into subexpressions and
// unifying where two subexpressions must agree (both operands of a binary
// operator, every element of a list literal). A call's argument count and
// type conformance against the callee's parameters are not checked here;
// that is left to the caller via UnifyTypes/CheckTypeCompatibility.
func (c *Checker) InferType(expr ast.Expr) (ast.Type, error) {
	if expr == nil {
		return nil, diag.New(diag.NilExpr{Positioner: ast.Range{}})
	}

	switch e := expr.(type) {
	case ast.Literal:
		return c.inferLiteral(e), nil

	case ast.Binary:
		left, err := c.InferType(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.InferType(e.Right)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case ast.OpEq, ast.OpNeq, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
			if _, err := c.UnifyTypes(e, left, right); err != nil {
				return nil, err
			}
			return c.GetBoolType(), nil
		default:
			return c.UnifyTypes(e, left, right)
		}

	case ast.Unary:
		operand, err := c.InferType(e.Operand)
		if err != nil {
			return nil, err
		}
		if e.Op == ast.OpNot {
			return c.GetBoolType(), nil
		}
		return operand, nil

	case ast.Variable:
		t, ok := c.vars[e.Name]
		if !ok {
			return nil, diag.New(diag.UnknownVariable{Positioner: e, Name: e.Name})
		}
		return t, nil

	case ast.Call:
		return c.inferCall(e)

	case ast.Lambda:
		return c.inferLambda(e)

	case ast.List:
		return c.inferList(e)

	default:
		return nil, diag.New(diag.NilExpr{Positioner: ast.Range{}})
	}
}

func (c *Checker) inferLiteral(e ast.Literal) ast.Type {
	switch e.Kind {
	case ast.BoolLiteral:
		return c.GetBoolType()
	case ast.StringLiteral:
		return c.GetStringType()
	default: // NumberLiteral
		if strings.Contains(e.Text, ".") {
			return c.GetFloatType()
		}
		return c.GetIntType()
	}
}

// inferCall infers only the callee's type and requires it to be a Function,
// returning its return type. Argument count and type conformance are the
// caller's responsibility, to be checked separately via UnifyTypes or
// CheckTypeCompatibility against fn.Params.
func (c *Checker) inferCall(e ast.Call) (ast.Type, error) {
	calleeType, err := c.InferType(e.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeType.(ast.FunctionType)
	if !ok {
		return nil, diag.New(diag.StructuralMismatch{
			Positioner: e,
			Method:     "call",
			Detail:     fmt.Sprintf("%s is not callable", calleeType),
		})
	}
	return fn.Return, nil
}

func (c *Checker) inferLambda(e ast.Lambda) (ast.Type, error) {
	params := make([]ast.Type, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.Type
	}
	bodyType, err := c.InferType(e.Body)
	if err != nil {
		return nil, err
	}
	retType := e.ReturnType
	if retType == nil {
		retType = bodyType
	} else if _, err := c.UnifyTypes(e, retType, bodyType); err != nil {
		return nil, err
	}
	return ast.FunctionType{Params: params, Return: retType}, nil
}

// inferList infers a list literal's element type as the type of its first
// element, unified against every later element. An empty list has no
// element to anchor on; rather than failing outright (the base behavior the
// specification describes), it stands in a fresh type variable named
// deterministically from the list's source position — a later unification
// against this list's use site binds it. Two empty lists at different
// source positions get distinct, non-interfering variables; re-inferring
// the same list node yields the same name.
func (c *Checker) inferList(e ast.List) (ast.Type, error) {
	if len(e.Elements) == 0 {
		return ast.ArrayType{Elem: ast.TypeVariable{Name: util.MangledIdentFrom(e, "emptyListElem")}, Size: 0}, nil
	}
	elemType, err := c.InferType(e.Elements[0])
	if err != nil {
		return nil, err
	}
	for _, el := range e.Elements[1:] {
		t, err := c.InferType(el)
		if err != nil {
			return nil, err
		}
		elemType, err = c.UnifyTypes(e, elemType, t)
		if err != nil {
			return nil, err
		}
	}
	return ast.ArrayType{Elem: elemType, Size: len(e.Elements)}, nil
}
