package eval

import (
	"math"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/lex"
)

func geomVec(v VectorValue) geom.Vector { return geom.Vector(v) }

func vectorOp(op string, a, b geom.Vector) geom.Vector {
	switch op {
	case "+":
		return a.Add(b)
	case "-":
		return a.Sub(b)
	case "*":
		return geom.New(a.X*b.X, a.Y*b.Y, a.Z*b.Z)
	default:
		return geom.New(safeDiv(a.X, b.X), safeDiv(a.Y, b.Y), safeDiv(a.Z, b.Z))
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func evalBinary(op string, left, right Value, loc lex.SourceRange) (Value, error) {
	switch op {
	case "and":
		l, lok := asBool(left)
		r, rok := asBool(right)
		if !lok || !rok {
			return nil, typeErr(loc, "and needs two booleans")
		}
		return Boolean(l && r), nil
	case "or":
		l, lok := asBool(left)
		r, rok := asBool(right)
		if !lok || !rok {
			return nil, typeErr(loc, "or needs two booleans")
		}
		return Boolean(l || r), nil
	case "=", "<>":
		eq := valuesEqual(left, right)
		if op == "<>" {
			eq = !eq
		}
		return Boolean(eq), nil
	case "<", ">", "<=", ">=":
		l, lok := asNumber(left)
		r, rok := asNumber(right)
		if !lok || !rok {
			return nil, typeErr(loc, "comparison needs two numbers")
		}
		switch op {
		case "<":
			return Boolean(l < r), nil
		case ">":
			return Boolean(l > r), nil
		case "<=":
			return Boolean(l <= r), nil
		default:
			return Boolean(l >= r), nil
		}
	case "to":
		from, fok := asNumber(left)
		to, tok := asNumber(right)
		if !fok || !tok {
			return nil, typeErr(loc, "range needs two numbers")
		}
		return numberRange(from, to, 1), nil
	case "step":
		rng, ok := left.(ListValue)
		step, sok := asNumber(right)
		if !ok || !sok || step == 0 {
			return nil, typeErr(loc, "step needs a range and a non-zero step")
		}
		if len(rng.Elements) < 2 {
			return rng, nil
		}
		from := float64(rng.Elements[0].(Number))
		to := float64(rng.Elements[len(rng.Elements)-1].(Number))
		return numberRange(from, to, step), nil
	case "+", "-", "*", "/":
		return evalArithmetic(op, left, right, loc)
	default:
		return nil, typeErr(loc, "unknown operator "+op)
	}
}

func evalArithmetic(op string, left, right Value, loc lex.SourceRange) (Value, error) {
	if ls, ok := left.(String); ok && op == "+" {
		if rs, ok := right.(String); ok {
			return String(string(ls) + string(rs)), nil
		}
	}
	if lv, lok := left.(VectorValue); lok {
		if rv, rok := asVector(right); rok {
			return VectorValue(vectorOp(op, geomVec(lv), rv)), nil
		}
	}
	if rv, rok := right.(VectorValue); rok {
		if lv, lok := asVector(left); lok {
			return VectorValue(vectorOp(op, lv, geomVec(rv))), nil
		}
	}
	l, lok := asNumber(left)
	r, rok := asNumber(right)
	if !lok || !rok {
		return nil, typeErr(loc, "arithmetic needs two numbers, or a vector and a number")
	}
	switch op {
	case "+":
		return Number(l + r), nil
	case "-":
		return Number(l - r), nil
	case "*":
		return Number(l * r), nil
	default:
		if r == 0 {
			return nil, typeErr(loc, "division by zero")
		}
		return Number(l / r), nil
	}
}

func evalUnary(op string, operand Value, loc lex.SourceRange) (Value, error) {
	switch op {
	case "-":
		if n, ok := asNumber(operand); ok {
			return Number(-n), nil
		}
		if v, ok := asVector(operand); ok {
			return VectorValue(v.Negated()), nil
		}
		return nil, typeErr(loc, "unary - needs a number or vector")
	case "not":
		b, ok := asBool(operand)
		if !ok {
			return nil, typeErr(loc, "not needs a boolean")
		}
		return Boolean(!b), nil
	default:
		return nil, typeErr(loc, "unknown unary operator "+op)
	}
}

func numberRange(from, to, step float64) ListValue {
	var elems []Value
	if step > 0 {
		for v := from; v <= to+1e-9; v += step {
			elems = append(elems, Number(v))
		}
	} else {
		for v := from; v >= to-1e-9; v += step {
			elems = append(elems, Number(v))
		}
	}
	return ListValue{Elements: elems, Element: KindNumber}
}

func valuesEqual(a, b Value) bool {
	an, aok := asNumber(a)
	bn, bok := asNumber(b)
	if aok && bok {
		return math.Abs(an-bn) < 1e-9
	}
	as, aok := asString(a)
	bs, bok := asString(b)
	if aok && bok {
		return as == bs
	}
	return a.String() == b.String()
}

func typeErr(loc lex.SourceRange, hint string) error {
	return &RuntimeError{Kind: ErrTypeMismatch, Range: loc, Hint: hint}
}
