package loxlang

// Expr is a node of an expression tree. Every node exclusively owns its children.
type Expr interface {
	isExpr()
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type Unary struct {
	Operator Token
	Right    Expr
}

type Grouping struct {
	Expr Expr
}

type LiteralExpr struct {
	Value Literal
}

func (Binary) isExpr()      {}
func (Unary) isExpr()       {}
func (Grouping) isExpr()    {}
func (LiteralExpr) isExpr() {}

var (
	_ Expr = Binary{}
	_ Expr = Unary{}
	_ Expr = Grouping{}
	_ Expr = LiteralExpr{}
)
