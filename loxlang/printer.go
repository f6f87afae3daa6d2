package loxlang

import (
	"fmt"
	"strings"
)

// PrintExpr renders expr fully parenthesized, operators first.
func PrintExpr(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {

	case Binary:
		sb.WriteString("(")
		sb.WriteString(expr.Operator.Lexeme)
		sb.WriteString(" ")
		printExpr(sb, expr.Left)
		sb.WriteString(" ")
		printExpr(sb, expr.Right)
		sb.WriteString(")")

	case Unary:
		sb.WriteString("(")
		sb.WriteString(expr.Operator.Lexeme)
		sb.WriteString(" ")
		printExpr(sb, expr.Right)
		sb.WriteString(")")

	case Grouping:
		sb.WriteString("(group ")
		printExpr(sb, expr.Expr)
		sb.WriteString(")")

	case LiteralExpr:
		if expr.Value == nil {
			sb.WriteString("nil")
			return
		}
		sb.WriteString(expr.Value.String())

	default:
		panic(fmt.Errorf("unknown expression type: %T", expr))
	}
}
