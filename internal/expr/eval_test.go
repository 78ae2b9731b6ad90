package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	x, v := Var("x"), Var("v")
	env := Env{Vars: map[string]float64{"x": 2, "v": 3}}

	e := Sum(Prod(Num(2), x), Pow(v, Num(2)))
	got, err := Eval(e, env)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, got, 1e-12)

	e = Div(Num(1), Sqrt(SumSq(x, v)))
	got, err = Eval(e, env)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt(13), got, 1e-12)

	e = Sub(Sin(x), Cos(x))
	got, err = Eval(e, env)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(2)-math.Cos(2), got, 1e-12)
}

func TestEvalParams(t *testing.T) {
	e := Prod(Par(0), Var("x"))
	env := Env{Vars: map[string]float64{"x": 4}, Params: []float64{2.5}}

	got, err := Eval(e, env)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-12)
}

func TestEvalUnbound(t *testing.T) {
	_, err := Eval(Var("q"), Env{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnboundVariable)

	_, err = Eval(Par(1), Env{Params: []float64{1.0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnboundParam)
}

func TestSubs(t *testing.T) {
	x, y := Var("x"), Var("y")

	e := Sum(Prod(Num(2), x), y)
	got := Subs(e, map[string]Expr{"x": Num(0)})
	// the substituted term collapses through the normal constructors
	assert.True(t, got.Equal(y), "got %s", got)

	got = Subs(Sin(x), map[string]Expr{"x": y})
	assert.True(t, got.Equal(Sin(y)))

	// no bindings means no rebuild
	assert.True(t, Subs(e, nil).Equal(e))
}

func TestVars(t *testing.T) {
	e := Sum(Prod(Var("b"), Var("a")), Sqrt(SumSq(Var("c"), Par(0))))
	assert.Equal(t, []string{"a", "b", "c"}, Vars(e))
}
