package expr

import (
	"errors"
	"fmt"
	"math"
)

// Evaluation errors.
var (
	// ErrUnboundVariable indicates a variable with no binding in the environment.
	ErrUnboundVariable = errors.New("expr: unbound variable")

	// ErrUnboundParam indicates a parameter slot index outside the supplied
	// parameter values.
	ErrUnboundParam = errors.New("expr: unbound parameter slot")
)

// Env supplies numeric values for the symbolic leaves of an expression:
// variable bindings by name and parameter-slot values by index.
type Env struct {
	Vars   map[string]float64
	Params []float64
}

// Eval numerically evaluates e under env. Evaluation fails if e references a
// variable absent from env.Vars or a parameter slot beyond len(env.Params).
func Eval(e Expr, env Env) (float64, error) {
	return e.eval(env)
}

func mathPow(b, e float64) float64 { return math.Pow(b, e) }

func (n *num) eval(Env) (float64, error) { return n.v, nil }

func (v *Variable) eval(env Env) (float64, error) {
	val, ok := env.Vars[v.name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, v.name)
	}
	return val, nil
}

func (p *par) eval(env Env) (float64, error) {
	if p.idx < 0 || p.idx >= len(env.Params) {
		return 0, fmt.Errorf("%w: par[%d] with %d value(s)", ErrUnboundParam, p.idx, len(env.Params))
	}
	return env.Params[p.idx], nil
}

func (s *sum) eval(env Env) (float64, error) {
	acc := 0.0
	for _, t := range s.terms {
		v, err := t.eval(env)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

func (s *sumsq) eval(env Env) (float64, error) {
	acc := 0.0
	for _, t := range s.terms {
		v, err := t.eval(env)
		if err != nil {
			return 0, err
		}
		acc += v * v
	}
	return acc, nil
}

func (p *prod) eval(env Env) (float64, error) {
	acc := 1.0
	for _, f := range p.factors {
		v, err := f.eval(env)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (s *sub2) eval(env Env) (float64, error) {
	a, err := s.a.eval(env)
	if err != nil {
		return 0, err
	}
	b, err := s.b.eval(env)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

func (d *div) eval(env Env) (float64, error) {
	a, err := d.a.eval(env)
	if err != nil {
		return 0, err
	}
	b, err := d.b.eval(env)
	if err != nil {
		return 0, err
	}
	return a / b, nil
}

func (p *pow) eval(env Env) (float64, error) {
	b, err := p.base.eval(env)
	if err != nil {
		return 0, err
	}
	e, err := p.exp.eval(env)
	if err != nil {
		return 0, err
	}
	return math.Pow(b, e), nil
}

func (f *fn) eval(env Env) (float64, error) {
	a, err := f.arg.eval(env)
	if err != nil {
		return 0, err
	}
	switch f.kind {
	case fnSqrt:
		return math.Sqrt(a), nil
	case fnSin:
		return math.Sin(a), nil
	default:
		return math.Cos(a), nil
	}
}
