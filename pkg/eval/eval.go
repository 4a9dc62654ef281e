package eval

import (
	"fmt"

	"github.com/jaikdean/ShapeScript/pkg/font"
	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/logging"
	"github.com/jaikdean/ShapeScript/pkg/parse"
	"github.com/jaikdean/ShapeScript/pkg/scene"
)

// Options configures one Evaluate call.
type Options struct {
	IsCancelled  func() bool
	Importer     Importer
	URLResolver  URLResolver
	DebugSink    DebugSink
	FontProvider font.Provider
	Rand         *Source
	BaseURL      string
}

// Evaluator walks a parsed program against a stack of scopes, accumulating
// a scene.Scene as it goes.
type Evaluator struct {
	scope        *Scope
	isCancelled  func() bool
	importer     Importer
	urlResolver  URLResolver
	debugSink    DebugSink
	fontProvider font.Provider
	baseURL      string
	imported     map[string]bool
}

// Evaluate runs program's top-level statements and returns the resulting
// Scene. Options may be the zero value: with no importer, `import` fails
// with an ErrFileAccessRestricted runtime error; with no font provider,
// `text` falls back to font.Noop and yields an empty outline.
func Evaluate(program *parse.Program, opts Options) (*scene.Scene, error) {
	if opts.IsCancelled == nil {
		opts.IsCancelled = func() bool { return false }
	}
	if opts.Rand == nil {
		opts.Rand = NewSource(1)
	}
	fp := opts.FontProvider
	if fp == nil {
		fp = font.Noop{}
	}
	ev := &Evaluator{
		scope:        newRootScope(opts.Rand),
		isCancelled:  opts.IsCancelled,
		importer:     opts.Importer,
		urlResolver:  opts.URLResolver,
		debugSink:    opts.DebugSink,
		fontProvider: fp,
		baseURL:      opts.BaseURL,
		imported:     map[string]bool{},
	}
	if err := ev.execStatements(program.Statements); err != nil {
		return nil, err
	}
	sc := scene.New()
	sc.Background = ev.scope.Background
	for _, v := range ev.scope.Children {
		if g, ok := v.(GeometryValue); ok {
			sc.Children = append(sc.Children, g.Geometry)
		}
	}
	return sc, nil
}

func (ev *Evaluator) pushChild() *Scope {
	ev.scope = ev.scope.Child()
	return ev.scope
}

func (ev *Evaluator) pop() {
	if ev.scope.Parent != nil {
		ev.scope = ev.scope.Parent
	}
}

func (ev *Evaluator) checkCancelled(loc lex.SourceRange) error {
	if ev.isCancelled() {
		logging.Logger().Warn("evaluation cancelled", "line", loc.Start.Line, "col", loc.Start.Column)
		return Cancelled
	}
	return nil
}

func (ev *Evaluator) execStatements(stmts []parse.Statement) error {
	for _, st := range stmts {
		if err := ev.checkCancelled(st.Range()); err != nil {
			return err
		}
		if err := ev.execStatement(st); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execStatement(st parse.Statement) error {
	switch s := st.(type) {
	case *parse.DefineStmt:
		v, err := ev.evalExpr(s.Value)
		if err != nil {
			return err
		}
		ev.scope.Define(s.Name, v)
		return nil

	case *parse.CommandStmt:
		return ev.execCommand(s.Name, s.Args, s.Span)

	case *parse.BlockCallStmt:
		v, err := ev.callBlock(s.Name, s.Args, s.Body, s.Span)
		if err != nil {
			return err
		}
		if v != nil {
			ev.scope.AddChild(v)
		}
		return nil

	case *parse.ForLoopStmt:
		return ev.execForLoop(s)

	case *parse.IfElseStmt:
		cond, err := ev.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		b, ok := asBool(cond)
		if !ok {
			return typeErr(s.Span, "if condition must be a boolean")
		}
		if b {
			return ev.execStatements(s.Then)
		}
		return ev.execStatements(s.Else)

	case *parse.ImportStmt:
		return ev.execImport(s)

	default:
		return typeErr(st.Range(), fmt.Sprintf("unsupported statement %T", st))
	}
}

func (ev *Evaluator) execForLoop(s *parse.ForLoopStmt) error {
	from, err := ev.evalExpr(s.From)
	if err != nil {
		return err
	}
	to, err := ev.evalExpr(s.To)
	if err != nil {
		return err
	}
	fromN, ok := asNumber(from)
	toN, ok2 := asNumber(to)
	if !ok || !ok2 {
		return typeErr(s.Span, "for loop range must be numeric")
	}
	step := 1.0
	if s.Step != nil {
		stepV, err := ev.evalExpr(s.Step)
		if err != nil {
			return err
		}
		stepN, ok := asNumber(stepV)
		if !ok {
			return typeErr(s.Span, "for loop step must be numeric")
		}
		step = stepN
	}
	if step == 0 {
		return typeErr(s.Span, "for loop step must not be zero")
	}

	for v := fromN; (step > 0 && v <= toN+1e-9) || (step < 0 && v >= toN-1e-9); v += step {
		if err := ev.checkCancelled(s.Span); err != nil {
			return err
		}
		ev.scope.Define(s.Variable, Number(v))
		if err := ev.execStatements(s.Body); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execImport(s *parse.ImportStmt) error {
	v, err := ev.evalExpr(s.Path)
	if err != nil {
		return err
	}
	p, ok := asString(v)
	if !ok {
		return typeErr(s.Span, "import path must be a string")
	}
	url := p
	if ev.urlResolver != nil {
		resolved, err := ev.urlResolver.ResolveURL(ev.baseURL, p)
		if err != nil {
			return &RuntimeError{Kind: ErrImportError, Range: s.Span, Hint: "resolving " + p, Inner: err}
		}
		url = resolved
	}
	if ev.imported[url] {
		logging.Logger().Debug("import already resolved, skipping", "url", url)
		return nil
	}
	ev.imported[url] = true
	logging.Logger().Debug("resolving import", "url", url)

	if ev.importer == nil {
		return &RuntimeError{Kind: ErrFileAccessRestricted, Range: s.Span, Hint: "no importer configured for " + url}
	}
	data, err := ev.importer.Import(url)
	if err != nil {
		return &RuntimeError{Kind: ErrFileNotFound, Range: s.Span, Hint: url, Inner: err}
	}
	tokens, err := lex.Tokenize(string(data))
	if err != nil {
		return &RuntimeError{Kind: ErrFileParsingError, Range: s.Span, Hint: url, Inner: err}
	}
	prog, err := parse.Parse(tokens)
	if err != nil {
		return &RuntimeError{Kind: ErrFileParsingError, Range: s.Span, Hint: url, Inner: err}
	}
	return ev.execStatements(prog.Statements)
}

func (ev *Evaluator) evalArgs(args []parse.Expr) ([]Value, error) {
	out := make([]Value, len(args))
	for i, a := range args {
		v, err := ev.evalExpr(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (ev *Evaluator) evalExpr(expr parse.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parse.NumberLit:
		return Number(e.Value), nil
	case *parse.StringLit:
		return String(e.Value), nil
	case *parse.ColorLit:
		c, ok := asColor(String(e.Hex))
		if !ok {
			return nil, typeErr(e.Span, "invalid color literal "+e.Hex)
		}
		return ColorValue(c), nil
	case *parse.Ident:
		if v, ok := ev.scope.Lookup(e.Name); ok {
			return v, nil
		}
		if sym, ok := ev.scope.LookupSymbol(e.Name); ok && sym.Kind == SymbolConstant {
			return sym.Constant, nil
		}
		return nil, &RuntimeError{Kind: ErrUnknownSymbol, Range: e.Span, Hint: e.Name}
	case *parse.TupleExpr:
		elems, err := ev.evalArgs(e.Elements)
		if err != nil {
			return nil, err
		}
		return TupleValue{Elements: elems}, nil
	case *parse.BinaryExpr:
		l, err := ev.evalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		r, err := ev.evalExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return evalBinary(e.Op, l, r, e.Span)
	case *parse.UnaryExpr:
		v, err := ev.evalExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return evalUnary(e.Op, v, e.Span)
	case *parse.CallExpr:
		return ev.callFunction(e.Callee, e.Args, e.Span)
	case *parse.BlockExpr:
		return ev.callBlock(e.Name, e.Args, e.Body, e.Span)
	default:
		return nil, typeErr(expr.Range(), fmt.Sprintf("unsupported expression %T", expr))
	}
}

func (ev *Evaluator) callFunction(name string, argExprs []parse.Expr, loc lex.SourceRange) (Value, error) {
	sym, ok := ev.scope.LookupSymbol(name)
	if !ok || sym.Kind != SymbolFunction {
		return nil, &RuntimeError{Kind: ErrUnknownSymbol, Range: loc, Hint: name}
	}
	args, err := ev.evalArgs(argExprs)
	if err != nil {
		return nil, err
	}
	return sym.Function(ev, args, loc)
}

func (ev *Evaluator) execCommand(name string, argExprs []parse.Expr, loc lex.SourceRange) error {
	sym, ok := ev.scope.LookupSymbol(name)
	if !ok {
		return &RuntimeError{Kind: ErrUnknownSymbol, Range: loc, Hint: name}
	}
	args, err := ev.evalArgs(argExprs)
	if err != nil {
		return err
	}
	switch sym.Kind {
	case SymbolCommand:
		return sym.Command(ev, args, loc)
	case SymbolFunction:
		_, err := sym.Function(ev, args, loc)
		return err
	default:
		return typeErr(loc, name+" is not a command")
	}
}

func (ev *Evaluator) callBlock(name string, argExprs []parse.Expr, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	sym, ok := ev.scope.LookupSymbol(name)
	if !ok || sym.Kind != SymbolBlock {
		return nil, &RuntimeError{Kind: ErrUnknownSymbol, Range: loc, Hint: name}
	}
	args, err := ev.evalArgs(argExprs)
	if err != nil {
		return nil, err
	}
	return sym.Block(ev, args, body, loc)
}
