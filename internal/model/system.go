package model

import (
	"fmt"
	"strings"

	"github.com/san-kum/symdyn/internal/expr"
)

// Equation pairs a state variable with its time-derivative expression.
type Equation struct {
	State *expr.Variable
	RHS   expr.Expr
}

// System is an ordered list of state equations. The order is fixed by the
// naming convention: a position triple followed by a velocity triple per
// body, bodies in input order. Left-hand-side variables are unique and cover
// exactly the state dimension of the model.
type System []Equation

// StateDim returns the number of state variables.
func (s System) StateDim() int { return len(s) }

// States returns the left-hand-side variables in equation order.
func (s System) States() []*expr.Variable {
	out := make([]*expr.Variable, len(s))
	for i, eq := range s {
		out[i] = eq.State
	}
	return out
}

// String renders the system one equation per line, in order.
func (s System) String() string {
	var b strings.Builder
	for _, eq := range s {
		fmt.Fprintf(&b, "d%s/dt = %s\n", eq.State.Name(), eq.RHS.String())
	}
	return b.String()
}

// particleVars returns the canonical single-particle state variables
// (x, y, z) and (vx, vy, vz).
func particleVars() (pos, vel [3]*expr.Variable) {
	pos = [3]*expr.Variable{expr.Var("x"), expr.Var("y"), expr.Var("z")}
	vel = [3]*expr.Variable{expr.Var("vx"), expr.Var("vy"), expr.Var("vz")}
	return pos, vel
}

// bodyVars returns the state variables of body i under the per-body naming
// convention (x_i, y_i, z_i) and (vx_i, vy_i, vz_i).
func bodyVars(i int) (pos, vel [3]*expr.Variable) {
	pos = [3]*expr.Variable{
		expr.Var(fmt.Sprintf("x_%d", i)),
		expr.Var(fmt.Sprintf("y_%d", i)),
		expr.Var(fmt.Sprintf("z_%d", i)),
	}
	vel = [3]*expr.Variable{
		expr.Var(fmt.Sprintf("vx_%d", i)),
		expr.Var(fmt.Sprintf("vy_%d", i)),
		expr.Var(fmt.Sprintf("vz_%d", i)),
	}
	return pos, vel
}

// particleSystem assembles the standard six-equation layout for a single
// test particle: positions differentiate to velocities, velocities to the
// supplied acceleration components.
func particleSystem(accel [3]expr.Expr) System {
	pos, vel := particleVars()
	sys := make(System, 0, 6)
	for i := 0; i < 3; i++ {
		sys = append(sys, Equation{State: pos[i], RHS: vel[i]})
	}
	for i := 0; i < 3; i++ {
		sys = append(sys, Equation{State: vel[i], RHS: accel[i]})
	}
	return sys
}
