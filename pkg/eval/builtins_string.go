package eval

import (
	"strings"

	"github.com/jaikdean/ShapeScript/pkg/lex"
)

func registerStringBuiltins(s *Scope) {
	fn := func(name string, f FunctionFunc) { s.DefineSymbol(name, &Symbol{Kind: SymbolFunction, Function: f}) }

	fn("split", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		if len(args) != 2 {
			return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "split takes a string and a separator"}
		}
		str, ok1 := asString(args[0])
		sep, ok2 := asString(args[1])
		if !ok1 || !ok2 {
			return nil, typeErr(loc, "split takes two strings")
		}
		parts := strings.Split(str, sep)
		elems := make([]Value, len(parts))
		for i, p := range parts {
			elems[i] = String(p)
		}
		return ListValue{Elements: elems, Element: KindString}, nil
	})

	fn("join", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "join takes a list and an optional separator"}
		}
		list, ok := args[0].(ListValue)
		if !ok {
			return nil, typeErr(loc, "join takes a list of strings")
		}
		sep := ""
		if len(args) == 2 {
			s, ok := asString(args[1])
			if !ok {
				return nil, typeErr(loc, "join's separator must be a string")
			}
			sep = s
		}
		parts := make([]string, len(list.Elements))
		for i, e := range list.Elements {
			parts[i] = e.String()
		}
		return String(strings.Join(parts, sep)), nil
	})

	fn("trim", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		v, err := oneArg(args, loc, "trim")
		if err != nil {
			return nil, err
		}
		str, ok := asString(v)
		if !ok {
			return nil, typeErr(loc, "trim needs a string")
		}
		return String(strings.TrimSpace(str)), nil
	})
}
