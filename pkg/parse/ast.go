// Package parse builds an abstract syntax tree from a lex.Token stream.
package parse

import "github.com/jaikdean/ShapeScript/pkg/lex"

// Statement is one top-level or block-body statement.
type Statement interface {
	Range() lex.SourceRange
}

// Expr is a value-producing expression.
type Expr interface {
	Range() lex.SourceRange
}

// DefineStmt binds name to the value of an expression in the current scope.
type DefineStmt struct {
	Name  string
	Value Expr
	Span  lex.SourceRange
}

func (s *DefineStmt) Range() lex.SourceRange { return s.Span }

// BlockCallStmt invokes a block construct (a geometry primitive, a group,
// a user-defined block) with leading argument expressions and an optional
// brace-delimited body of child statements.
type BlockCallStmt struct {
	Name string
	Args []Expr
	Body []Statement
	Span lex.SourceRange
}

func (s *BlockCallStmt) Range() lex.SourceRange { return s.Span }

// ForLoopStmt repeats Body once per value of Variable ranging from..to,
// optionally stepping by Step.
type ForLoopStmt struct {
	Variable string
	From, To Expr
	Step     Expr // nil if no explicit step
	Body     []Statement
	Span     lex.SourceRange
}

func (s *ForLoopStmt) Range() lex.SourceRange { return s.Span }

// IfElseStmt conditionally runs Then or Else.
type IfElseStmt struct {
	Condition  Expr
	Then, Else []Statement
	Span       lex.SourceRange
}

func (s *IfElseStmt) Range() lex.SourceRange { return s.Span }

// ImportStmt resolves and evaluates the script at Path, merging its
// top-level definitions into the current scope.
type ImportStmt struct {
	Path Expr
	Span lex.SourceRange
}

func (s *ImportStmt) Range() lex.SourceRange { return s.Span }

// CommandStmt is a side-effecting statement with no body, e.g. `translate
// 1 0 0` or `print "hi"`.
type CommandStmt struct {
	Name string
	Args []Expr
	Span lex.SourceRange
}

func (s *CommandStmt) Range() lex.SourceRange { return s.Span }

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
	Span  lex.SourceRange
}

func (e *NumberLit) Range() lex.SourceRange { return e.Span }

// StringLit is a string literal (escape sequences already resolved).
type StringLit struct {
	Value string
	Span  lex.SourceRange
}

func (e *StringLit) Range() lex.SourceRange { return e.Span }

// ColorLit is a `#RRGGBB`-style literal, parsed by pkg/eval into a
// geom.Color at evaluation time.
type ColorLit struct {
	Hex  string
	Span lex.SourceRange
}

func (e *ColorLit) Range() lex.SourceRange { return e.Span }

// Ident references a name bound in the current or an enclosing scope.
type Ident struct {
	Name string
	Span lex.SourceRange
}

func (e *Ident) Range() lex.SourceRange { return e.Span }

// TupleExpr is a juxtaposed sequence of expressions with no operator
// between them (e.g. `1 2 3`, broadcast to a vector at evaluation time).
type TupleExpr struct {
	Elements []Expr
	Span     lex.SourceRange
}

func (e *TupleExpr) Range() lex.SourceRange { return e.Span }

// BinaryExpr applies an infix operator.
type BinaryExpr struct {
	Op          string
	Left, Right Expr
	Span        lex.SourceRange
}

func (e *BinaryExpr) Range() lex.SourceRange { return e.Span }

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Span    lex.SourceRange
}

func (e *UnaryExpr) Range() lex.SourceRange { return e.Span }

// CallExpr invokes a named function with parenthesized arguments, e.g.
// `sin(x)`.
type CallExpr struct {
	Callee string
	Args   []Expr
	Span   lex.SourceRange
}

func (e *CallExpr) Range() lex.SourceRange { return e.Span }

// BlockExpr is a block construct used as a value-producing expression,
// e.g. a nested `path { ... }` passed as an argument.
type BlockExpr struct {
	Name string
	Args []Expr
	Body []Statement
	Span lex.SourceRange
}

func (e *BlockExpr) Range() lex.SourceRange { return e.Span }
