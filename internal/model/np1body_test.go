package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/symdyn/internal/expr"
)

func TestNP1BodyLayout(t *testing.T) {
	dyn, err := NP1Body(2)
	require.NoError(t, err)
	require.Len(t, dyn, 6)

	wantNames := []string{"x_1", "y_1", "z_1", "vx_1", "vy_1", "vz_1"}
	for i, name := range wantNames {
		assert.Equal(t, name, dyn[i].State.Name())
	}
	assert.True(t, dyn[0].RHS.Equal(expr.Var("vx_1")))

	dyn, err = NP1Body(4)
	require.NoError(t, err)
	assert.Len(t, dyn, 18)
}

func TestNP1BodyZeroMasses(t *testing.T) {
	dyn, err := NP1Body(2, WithMasses(expr.Num(0), expr.Num(0)))
	require.NoError(t, err)

	for _, i := range []int{3, 4, 5} {
		assert.True(t, dyn[i].RHS.Equal(expr.Num(0)), "equation %d: got %s", i, dyn[i].RHS)
	}
}

func TestNP1BodyCombinedParameter(t *testing.T) {
	// the direct term carries G*(m_0+m_1) = 5*(1+1) = 10
	dyn, err := NP1Body(2, WithGconst(5))
	require.NoError(t, err)

	for _, i := range []int{3, 4, 5} {
		assert.Contains(t, dyn[i].RHS.String(), "10.0000000000000")
	}

	rel := expr.MakeVars("x_1", "y_1", "z_1")
	r2 := expr.SumSq(rel[0], rel[1], rel[2])
	want := expr.Prod(rel[0], expr.Prod(expr.Num(-1), expr.Num(10), expr.Pow(r2, expr.Num(-1.5))))
	assert.True(t, dyn[3].RHS.Equal(want), "got %s\nwant %s", dyn[3].RHS, want)
}

func TestNP1BodyPotential(t *testing.T) {
	pot, err := NP1BodyPotential(2)
	require.NoError(t, err)

	rel := expr.MakeVars("x_1", "y_1", "z_1")
	want := expr.Neg(expr.Div(expr.Num(1), expr.Sqrt(expr.SumSq(rel[0], rel[1], rel[2]))))
	assert.True(t, pot.Equal(want), "got %s\nwant %s", pot, want)
}

func TestNP1BodyEnergy(t *testing.T) {
	// an all-massless system carries no energy at all
	en, err := NP1BodyEnergy(2, WithMasses())
	require.NoError(t, err)
	assert.True(t, en.Equal(expr.Num(0)), "got %s", en)

	en, err = NP1BodyEnergy(2, WithGconst(5))
	require.NoError(t, err)
	assert.Contains(t, en.String(), "5.0000000000000")

	// the kinetic part references only relative velocities
	for _, name := range expr.Vars(en) {
		assert.NotContains(t, name, "_0")
	}
}

func TestNP1BodyIndirectTerms(t *testing.T) {
	dyn, err := NP1Body(3)
	require.NoError(t, err)

	// body 1's acceleration: one direct term plus two indirect terms from
	// body 2 (mutual attraction and the primary's recoil)
	rhs := dyn[3].RHS.String()
	assert.Contains(t, rhs, "x_2")
	assert.Contains(t, rhs, "sum_sq(x_1, y_1, z_1)")
	assert.Contains(t, rhs, "sum_sq(x_2, y_2, z_2)")
	assert.Contains(t, rhs, "sum_sq((x_2 - x_1), (y_2 - y_1), (z_2 - z_1))")
}

func TestNP1BodyErrors(t *testing.T) {
	_, err := NP1Body(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyCount)

	_, err = NP1BodyEnergy(2, WithMasses(expr.Num(1), expr.Num(1), expr.Num(1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMassCount)
}
