package eval

import (
	"math"

	"github.com/jaikdean/ShapeScript/pkg/lex"
)

func registerMathBuiltins(s *Scope) {
	fn := func(name string, f FunctionFunc) { s.DefineSymbol(name, &Symbol{Kind: SymbolFunction, Function: f}) }
	cmd := func(name string, f CommandFunc) { s.DefineSymbol(name, &Symbol{Kind: SymbolCommand, Command: f}) }
	con := func(name string, v Value) { s.DefineSymbol(name, &Symbol{Kind: SymbolConstant, Constant: v}) }

	con("pi", Number(math.Pi))
	con("true", Boolean(true))
	con("false", Boolean(false))

	unary := func(f func(float64) float64) FunctionFunc {
		return func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
			v, err := oneArg(args, loc, "math function")
			if err != nil {
				return nil, err
			}
			n, ok := asNumber(v)
			if !ok {
				return nil, typeErr(loc, "expected a number")
			}
			return Number(f(n)), nil
		}
	}

	fn("round", unary(math.Round))
	fn("floor", unary(math.Floor))
	fn("ceil", unary(math.Ceil))
	fn("abs", unary(math.Abs))
	fn("sqrt", unary(math.Sqrt))
	fn("cos", unary(func(x float64) float64 { return math.Cos(x * math.Pi / 180) }))
	fn("sin", unary(func(x float64) float64 { return math.Sin(x * math.Pi / 180) }))
	fn("tan", unary(func(x float64) float64 { return math.Tan(x * math.Pi / 180) }))
	fn("acos", unary(func(x float64) float64 { return math.Acos(x) * 180 / math.Pi }))
	fn("asin", unary(func(x float64) float64 { return math.Asin(x) * 180 / math.Pi }))
	fn("atan", unary(func(x float64) float64 { return math.Atan(x) * 180 / math.Pi }))

	fn("pow", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		if len(args) != 2 {
			return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "pow takes two numbers"}
		}
		a, ok1 := asNumber(args[0])
		b, ok2 := asNumber(args[1])
		if !ok1 || !ok2 {
			return nil, typeErr(loc, "pow takes two numbers")
		}
		return Number(math.Pow(a, b)), nil
	})

	fn("atan2", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		if len(args) != 2 {
			return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "atan2 takes two numbers"}
		}
		y, ok1 := asNumber(args[0])
		x, ok2 := asNumber(args[1])
		if !ok1 || !ok2 {
			return nil, typeErr(loc, "atan2 takes two numbers")
		}
		return Number(math.Atan2(y, x) * 180 / math.Pi), nil
	})

	variadic := func(reduce func(a, b float64) float64) FunctionFunc {
		return func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
			if len(args) == 0 {
				return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "needs at least one number"}
			}
			best, ok := asNumber(args[0])
			if !ok {
				return nil, typeErr(loc, "expected a number")
			}
			for _, a := range args[1:] {
				n, ok := asNumber(a)
				if !ok {
					return nil, typeErr(loc, "expected a number")
				}
				best = reduce(best, n)
			}
			return Number(best), nil
		}
	}
	fn("max", variadic(math.Max))
	fn("min", variadic(math.Min))

	cmd("seed", func(ev *Evaluator, args []Value, loc lex.SourceRange) error {
		v, err := oneArg(args, loc, "seed")
		if err != nil {
			return err
		}
		n, ok := asNumber(v)
		if !ok {
			return typeErr(loc, "seed needs a number")
		}
		if ev.scope.Random != nil {
			ev.scope.Random.Seed(uint64(n))
		}
		return nil
	})

	fn("rnd", func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error) {
		if ev.scope.Random == nil {
			return Number(0), nil
		}
		return Number(ev.scope.Random.Float64()), nil
	})
}
