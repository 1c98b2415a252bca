package ast

// Expr is a tagged sum over the seven expression shapes the inference
// engine dispatches on.
type Expr interface {
	Positioner
	exprNode()
}

// LiteralKind mirrors the lexer's token classification: the checker only
// ever asks which kind a literal token was, never re-derives it by parsing
// the text (beyond the "." float test for NumberLiteral).
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	BoolLiteral
	StringLiteral
)

// Literal is a literal token as produced by the lexer.
type Literal struct {
	Range
	Kind LiteralKind
	// Text is the literal's source text. For NumberLiteral it is inspected
	// only for the presence of '.' to distinguish int from float.
	Text string
	// Bool is meaningful only when Kind == BoolLiteral.
	Bool bool
}

func (Literal) exprNode() {}

// BinaryOp identifies the operator of a Binary expression.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	// OpOther covers operators the spec leaves as implementation-defined
	// extensions (modulo, shifts, logical and/or).
	OpOther
)

// Binary is a two-operand expression.
type Binary struct {
	Range
	Op          BinaryOp
	Left, Right Expr
}

func (Binary) exprNode() {}

// UnaryOp identifies the operator of a Unary expression.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

// Unary is a one-operand expression.
type Unary struct {
	Range
	Op      UnaryOp
	Operand Expr
}

func (Unary) exprNode() {}

// Variable references a name bound in the surrounding environment.
type Variable struct {
	Range
	Name string
}

func (Variable) exprNode() {}

// Call applies Callee, which must infer to a FunctionType, to Args.
type Call struct {
	Range
	Callee Expr
	Args   []Expr
}

func (Call) exprNode() {}

// Param is a single declared lambda parameter.
type Param struct {
	Name string
	Type Type
}

// Lambda is a function literal with declared parameter and return types.
type Lambda struct {
	Range
	Params     []Param
	ReturnType Type
	Body       Expr
}

func (Lambda) exprNode() {}

// List is an array literal.
type List struct {
	Range
	Elements []Expr
}

func (List) exprNode() {}
