package model

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/symdyn/internal/expr"
)

// requireStateConvention checks that the left-hand sides of sys are exactly
// the expected state names, in order and without duplicates.
func requireStateConvention(t *testing.T, sys System, want []string) {
	t.Helper()
	require.Equal(t, len(want), sys.StateDim())

	seen := make(map[string]bool)
	for i, v := range sys.States() {
		assert.Equal(t, want[i], v.Name())
		assert.False(t, seen[v.Name()], "duplicate state %s", v.Name())
		seen[v.Name()] = true
	}
}

func TestStateConventionAllModels(t *testing.T) {
	particle := []string{"x", "y", "z", "vx", "vy", "vz"}

	mas, err := Mascon(singleMasconCfg())
	require.NoError(t, err)
	requireStateConvention(t, mas, particle)

	rot, err := Rotating([]float64{1, 2, 3})
	require.NoError(t, err)
	requireStateConvention(t, rot, particle)

	fix, err := FixedCentres(fixedCentresTestCfg())
	require.NoError(t, err)
	requireStateConvention(t, fix, particle)

	var nbodyWant []string
	for i := 0; i < 3; i++ {
		nbodyWant = append(nbodyWant,
			fmt.Sprintf("x_%d", i), fmt.Sprintf("y_%d", i), fmt.Sprintf("z_%d", i),
			fmt.Sprintf("vx_%d", i), fmt.Sprintf("vy_%d", i), fmt.Sprintf("vz_%d", i))
	}
	nb, err := NBody(3)
	require.NoError(t, err)
	requireStateConvention(t, nb, nbodyWant)

	np, err := NP1Body(3)
	require.NoError(t, err)
	requireStateConvention(t, np, nbodyWant[6:])

	requireStateConvention(t, Pendulum(), []string{"x", "v"})
}

func TestSystemString(t *testing.T) {
	s := Pendulum().String()
	assert.Contains(t, s, "dx/dt = v")
	assert.Contains(t, s, "dv/dt = ")
}

func TestSharedSubexpressions(t *testing.T) {
	// the velocity variable appears both as a state and inside other
	// equations; equality between the two occurrences is structural
	dyn := Pendulum()
	assert.True(t, dyn[0].RHS.Equal(dyn[1].State))

	// rebuilt systems are structurally identical
	a, err := NBody(2, WithGconst(3))
	require.NoError(t, err)
	b, err := NBody(2, WithGconst(3))
	require.NoError(t, err)
	for i := range a {
		assert.True(t, a[i].RHS.Equal(b[i].RHS))
	}
}

func TestEvalOfBuiltDynamics(t *testing.T) {
	// the symbolic pendulum evaluates to the closed-form acceleration
	dyn := Pendulum(WithGravity(9.81))
	got, err := expr.Eval(dyn[1].RHS, expr.Env{Vars: map[string]float64{"x": 0.3}})
	require.NoError(t, err)
	assert.InDelta(t, -9.81*math.Sin(0.3), got, 1e-12)
}
