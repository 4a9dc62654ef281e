package parse

import (
	"github.com/jaikdean/ShapeScript/pkg/lex"
)

// Program is the parsed top-level statement list.
type Program struct {
	Statements []Statement
}

// Parse builds a Program from a lexed token stream.
func Parse(tokens []lex.Token) (*Program, error) {
	p := &parser{tokens: tokens}
	stmts, err := p.parseStatements(true)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lex.EOF); err != nil {
		return nil, err
	}
	return &Program{Statements: stmts}, nil
}

type parser struct {
	tokens []lex.Token
	pos    int
}

func (p *parser) cur() lex.Token  { return p.tokens[p.pos] }
func (p *parser) kind() lex.Kind  { return p.cur().Kind }
func (p *parser) advance() lex.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) check(k lex.Kind) bool { return p.kind() == k }

func (p *parser) expect(k lex.Kind) error {
	if p.kind() != k {
		return p.unexpected()
	}
	p.advance()
	return nil
}

func (p *parser) unexpected() error {
	return &Error{Kind: ErrUnexpectedToken, Range: p.cur().Range, Hint: "unexpected " + p.kind().String() + " \"" + p.cur().Text + "\""}
}

func (p *parser) skipLinebreaks() {
	for p.check(lex.Linebreak) {
		p.advance()
	}
}

// parseStatements reads statements separated by linebreaks until EOF
// (topLevel) or an RBrace.
func (p *parser) parseStatements(topLevel bool) ([]Statement, error) {
	var out []Statement
	p.skipLinebreaks()
	for {
		if topLevel && p.check(lex.EOF) {
			break
		}
		if !topLevel && p.check(lex.RBrace) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		out = append(out, stmt)
		if !p.check(lex.Linebreak) && !p.check(lex.EOF) && !p.check(lex.RBrace) {
			return nil, p.unexpected()
		}
		p.skipLinebreaks()
	}
	return out, nil
}

func (p *parser) parseStatement() (Statement, error) {
	start := p.cur().Range

	switch {
	case p.check(lex.Keyword) && p.cur().Text == "define":
		return p.parseDefine(start)
	case p.check(lex.Keyword) && p.cur().Text == "for":
		return p.parseForLoop(start)
	case p.check(lex.Keyword) && p.cur().Text == "if":
		return p.parseIfElse(start)
	case p.check(lex.Keyword) && p.cur().Text == "import":
		return p.parseImport(start)
	case p.check(lex.Identifier):
		return p.parseIdentifierStatement(start)
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) parseDefine(start lex.SourceRange) (Statement, error) {
	p.advance() // "define"
	if !p.check(lex.Identifier) {
		return nil, &Error{Kind: ErrExpectedIdentifier, Range: p.cur().Range, Hint: "define needs a name"}
	}
	name := p.advance().Text
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &DefineStmt{Name: name, Value: value, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) parseForLoop(start lex.SourceRange) (Statement, error) {
	p.advance() // "for"
	if !p.check(lex.Identifier) {
		return nil, &Error{Kind: ErrExpectedIdentifier, Range: p.cur().Range, Hint: "for needs a loop variable"}
	}
	variable := p.advance().Text

	from, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !(p.check(lex.Infix) && p.cur().Text == "to") && !(p.check(lex.Prefix) && p.cur().Text == "to") {
		return nil, &Error{Kind: ErrUnexpectedToken, Range: p.cur().Range, Hint: "for loop range needs \"to\""}
	}
	p.advance()
	to, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var step Expr
	if (p.check(lex.Infix) || p.check(lex.Prefix)) && p.cur().Text == "step" {
		p.advance()
		step, err = p.parseAdditive()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}
	return &ForLoopStmt{Variable: variable, From: from, To: to, Step: step, Body: body, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) parseIfElse(start lex.SourceRange) (Statement, error) {
	p.advance() // "if"
	// The condition ends before the then-branch's opening brace; parsing it
	// on its own keeps a trailing name (`if flag {`) from being read as the
	// block expression `flag { ... }`.
	end := p.pos
	for k := p.tokens[end].Kind; k != lex.LBrace && k != lex.Linebreak && k != lex.EOF; k = p.tokens[end].Kind {
		end++
	}
	sub := &parser{tokens: append(append([]lex.Token(nil), p.tokens[p.pos:end]...), lex.Token{Kind: lex.EOF, Range: p.tokens[end].Range})}
	cond, err := sub.parseExpr()
	if err == nil && !sub.check(lex.EOF) {
		err = sub.unexpected()
	}
	if err != nil {
		return nil, err
	}
	p.pos = end
	thenBody, err := p.parseBraceBody()
	if err != nil {
		return nil, err
	}
	var elseBody []Statement
	save := p.pos
	p.skipLinebreaks()
	if p.check(lex.Keyword) && p.cur().Text == "else" {
		p.advance()
		elseBody, err = p.parseBraceBody()
		if err != nil {
			return nil, err
		}
	} else {
		p.pos = save
	}
	return &IfElseStmt{Condition: cond, Then: thenBody, Else: elseBody, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) parseImport(start lex.SourceRange) (Statement, error) {
	p.advance() // "import"
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &ImportStmt{Path: value, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) parseIdentifierStatement(start lex.SourceRange) (Statement, error) {
	name := p.advance().Text
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if p.check(lex.LBrace) {
		body, err := p.parseBraceBody()
		if err != nil {
			return nil, err
		}
		return &BlockCallStmt{Name: name, Args: args, Body: body, Span: spanTo(start, p.cur().Range)}, nil
	}
	return &CommandStmt{Name: name, Args: args, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) parseBraceBody() ([]Statement, error) {
	if err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(false)
	if err != nil {
		return nil, err
	}
	if err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}
	return body, nil
}

// parseExprList parses zero or more full expressions in sequence (each
// consumed greedily by parseExpr), stopping when the next token can't
// start a new one.
func (p *parser) parseExprList() ([]Expr, error) {
	var out []Expr
	for p.canStartExpr() {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// parseValue parses one or more juxtaposed expressions into a single
// value: a bare expression if there's exactly one, a TupleExpr otherwise.
func (p *parser) parseValue() (Expr, error) {
	start := p.cur().Range
	exprs, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if len(exprs) == 0 {
		return nil, &Error{Kind: ErrExpectedExpression, Range: p.cur().Range, Hint: "expected a value"}
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &TupleExpr{Elements: exprs, Span: spanTo(start, p.cur().Range)}, nil
}

func (p *parser) canStartExpr() bool {
	switch p.kind() {
	case lex.Number, lex.String, lex.HexColor, lex.Identifier, lex.LParen:
		return true
	case lex.Prefix:
		return true
	default:
		return false
	}
}

// Operator precedence, lowest to highest: or < and < equality < relational
// < range(to/step) < additive < multiplicative < unary < primary.

func (p *parser) parseExpr() (Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (Expr, error) {
	return p.parseBinaryLevel(p.parseAnd, "or")
}

func (p *parser) parseAnd() (Expr, error) {
	return p.parseBinaryLevel(p.parseEquality, "and")
}

func (p *parser) parseEquality() (Expr, error) {
	return p.parseBinaryLevel(p.parseRelational, "=", "<>")
}

func (p *parser) parseRelational() (Expr, error) {
	return p.parseBinaryLevel(p.parseRange, "<", ">", "<=", ">=")
}

func (p *parser) parseRange() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.isOperator("to") {
		return left, nil
	}
	start := left.Range()
	p.advance()
	to, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	result := Expr(&BinaryExpr{Op: "to", Left: left, Right: to, Span: spanTo(start, p.cur().Range)})
	if p.isOperator("step") {
		p.advance()
		step, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		result = &BinaryExpr{Op: "step", Left: result, Right: step, Span: spanTo(start, p.cur().Range)}
	}
	return result, nil
}

func (p *parser) parseAdditive() (Expr, error) {
	return p.parseBinaryLevel(p.parseMultiplicative, "+", "-")
}

func (p *parser) parseMultiplicative() (Expr, error) {
	return p.parseBinaryLevel(p.parseUnary, "*", "/")
}

// parseBinaryLevel parses a left-associative chain of next-level
// expressions joined by any operator in ops (matched against Infix/Prefix
// tokens by text, since word-operators like "and"/"to" may lex as either
// depending on context).
func (p *parser) parseBinaryLevel(next func() (Expr, error), ops ...string) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.isOperator(ops...) {
		op := p.advance().Text
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right, Span: spanTo(left.Range(), p.cur().Range)}
	}
	return left, nil
}

func (p *parser) isOperator(ops ...string) bool {
	if !p.check(lex.Infix) && !p.check(lex.Prefix) {
		return false
	}
	for _, op := range ops {
		if p.cur().Text == op {
			return true
		}
	}
	return false
}

func (p *parser) parseUnary() (Expr, error) {
	if p.check(lex.Prefix) && (p.cur().Text == "-" || p.cur().Text == "not") {
		start := p.cur().Range
		op := p.advance().Text
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand, Span: spanTo(start, p.cur().Range)}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	start := p.cur().Range
	switch p.kind() {
	case lex.Number:
		tok := p.advance()
		return &NumberLit{Value: tok.NumberValue, Span: start}, nil
	case lex.String:
		tok := p.advance()
		return &StringLit{Value: tok.Text, Span: start}, nil
	case lex.HexColor:
		tok := p.advance()
		return &ColorLit{Hex: tok.Text, Span: start}, nil
	case lex.LParen:
		p.advance()
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lex.RParen); err != nil {
			return nil, err
		}
		return value, nil
	case lex.Identifier:
		name := p.advance().Text
		if p.check(lex.LParen) {
			p.advance()
			var args []Expr
			if !p.check(lex.RParen) {
				var err error
				args, err = p.parseCallArgs()
				if err != nil {
					return nil, err
				}
			}
			if err := p.expect(lex.RParen); err != nil {
				return nil, err
			}
			return &CallExpr{Callee: name, Args: args, Span: spanTo(start, p.cur().Range)}, nil
		}
		if p.check(lex.LBrace) {
			body, err := p.parseBraceBody()
			if err != nil {
				return nil, err
			}
			return &BlockExpr{Name: name, Body: body, Span: spanTo(start, p.cur().Range)}, nil
		}
		return &Ident{Name: name, Span: start}, nil
	default:
		return nil, &Error{Kind: ErrExpectedExpression, Range: p.cur().Range, Hint: "expected a value, got " + p.kind().String()}
	}
}

func (p *parser) parseCallArgs() ([]Expr, error) {
	var args []Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.check(lex.RParen) {
			break
		}
	}
	return args, nil
}

func spanTo(start, end lex.SourceRange) lex.SourceRange {
	return lex.SourceRange{Start: start.Start, End: end.Start}
}
