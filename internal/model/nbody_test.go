package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/symdyn/internal/expr"
)

func TestNBodyLayout(t *testing.T) {
	dyn, err := NBody(2)
	require.NoError(t, err)
	require.Len(t, dyn, 12)

	wantNames := []string{
		"x_0", "y_0", "z_0", "vx_0", "vy_0", "vz_0",
		"x_1", "y_1", "z_1", "vx_1", "vy_1", "vz_1",
	}
	for i, name := range wantNames {
		assert.Equal(t, name, dyn[i].State.Name())
	}

	// position derivatives are the matching velocities
	assert.True(t, dyn[0].RHS.Equal(expr.Var("vx_0")))
	assert.True(t, dyn[8].RHS.Equal(expr.Var("vz_1")))
}

func TestNBodyZeroMasses(t *testing.T) {
	dyn, err := NBody(2, WithMasses(expr.Num(0), expr.Num(0)))
	require.NoError(t, err)
	require.Len(t, dyn, 12)

	zero := expr.Num(0)
	for _, i := range []int{3, 4, 5, 9, 10, 11} {
		assert.True(t, dyn[i].RHS.Equal(zero), "equation %d: got %s", i, dyn[i].RHS)
	}
}

func TestNBodyGconst(t *testing.T) {
	dyn, err := NBody(2, WithGconst(5))
	require.NoError(t, err)

	for _, i := range []int{3, 4, 5, 9, 10, 11} {
		assert.Contains(t, dyn[i].RHS.String(), "5.0000000000000")
	}
}

func TestNBodyPotential(t *testing.T) {
	pot, err := NBodyPotential(2)
	require.NoError(t, err)

	vars := expr.MakeVars("x_0", "y_0", "z_0", "x_1", "y_1", "z_1")
	x0, y0, z0, x1, y1, z1 := vars[0], vars[1], vars[2], vars[3], vars[4], vars[5]

	want := expr.Neg(expr.Div(expr.Num(1), expr.Sqrt(expr.SumSq(
		expr.Sub(x1, x0),
		expr.Sub(y1, y0),
		expr.Sub(z1, z0),
	))))
	assert.True(t, pot.Equal(want), "got %s\nwant %s", pot, want)
}

func TestNBodyEnergy(t *testing.T) {
	en, err := NBodyEnergy(2, WithMasses(expr.Num(0), expr.Num(0)))
	require.NoError(t, err)
	assert.True(t, en.Equal(expr.Num(0)), "got %s", en)

	en, err = NBodyEnergy(2, WithGconst(5))
	require.NoError(t, err)
	assert.Contains(t, en.String(), "5.0000000000000")

	// kinetic part: each unit mass contributes 0.5*|v_i|^2
	en, err = NBodyEnergy(2)
	require.NoError(t, err)
	assert.Contains(t, en.String(), "sum_sq(vx_0, vy_0, vz_0)")
	assert.Contains(t, en.String(), "sum_sq(vx_1, vy_1, vz_1)")
}

func TestNBodyParametricMass(t *testing.T) {
	dyn, err := NBody(2, WithMasses(expr.Par(0), expr.Par(1)))
	require.NoError(t, err)

	// body 0 is accelerated by body 1's mass slot and vice versa
	assert.Contains(t, dyn[3].RHS.String(), "par[1]")
	assert.Contains(t, dyn[9].RHS.String(), "par[0]")
}

func TestNBodyShortMassList(t *testing.T) {
	// missing masses are massless bodies
	dyn, err := NBody(3, WithMasses(expr.Num(1)))
	require.NoError(t, err)
	require.Len(t, dyn, 18)

	// bodies 1 and 2 are massless, so body 0 feels nothing
	for _, i := range []int{3, 4, 5} {
		assert.True(t, dyn[i].RHS.Equal(expr.Num(0)), "equation %d: got %s", i, dyn[i].RHS)
	}
	// body 1 is pulled by body 0 only
	assert.False(t, dyn[9].RHS.Equal(expr.Num(0)))
}

func TestNBodyErrors(t *testing.T) {
	_, err := NBody(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyCount)

	_, err = NBodyPotential(0)
	assert.ErrorIs(t, err, ErrBodyCount)

	_, err = NBody(2, WithMasses(expr.Num(1), expr.Num(1), expr.Num(1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMassCount)
}

func TestNBodyAccelerationShape(t *testing.T) {
	dyn, err := NBody(3)
	require.NoError(t, err)

	// with three bodies every acceleration is a two-term sum
	rhs := dyn[3].RHS.String()
	assert.Equal(t, 2, strings.Count(rhs, "**-1.5"))
}
