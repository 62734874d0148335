package parser

// Parser resolves the literal source text of a check expression
type Parser interface {
	ExpressionSource(filename string, line int) (string, error)
}
