package model

import "github.com/san-kum/symdyn/internal/expr"

// pendulumOpts carries the pendulum parameters: gravitational acceleration
// and rod length, both defaulting to 1.
type pendulumOpts struct {
	gconst float64
	length float64
}

// PendulumOption configures [Pendulum] and [PendulumEnergy].
type PendulumOption func(*pendulumOpts)

// WithGravity overrides the gravitational acceleration (default 1).
func WithGravity(g float64) PendulumOption {
	return func(o *pendulumOpts) { o.gconst = g }
}

// WithLength overrides the pendulum length (default 1).
func WithLength(l float64) PendulumOption {
	return func(o *pendulumOpts) { o.length = l }
}

func resolvePendulum(opts []PendulumOption) pendulumOpts {
	o := pendulumOpts{gconst: 1, length: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Pendulum builds the simple pendulum with state x (angle) and v (angular
// velocity): dx/dt = v, dv/dt = -(gconst/l)*sin(x). Only the ratio gconst/l
// enters the dynamics; the length appears independently in the energy.
func Pendulum(opts ...PendulumOption) System {
	o := resolvePendulum(opts)
	x, v := expr.Var("x"), expr.Var("v")
	return System{
		{State: x, RHS: v},
		{State: v, RHS: expr.Prod(expr.Num(-o.gconst/o.length), expr.Sin(x))},
	}
}

// PendulumEnergy returns 0.5*l^2*v^2 + gconst*l*(1 - cos(x)), the energy of
// a unit-mass bob.
func PendulumEnergy(opts ...PendulumOption) expr.Expr {
	o := resolvePendulum(opts)
	x, v := expr.Var("x"), expr.Var("v")
	kin := expr.Prod(expr.Num(0.5*o.length*o.length), expr.Pow(v, expr.Num(2)))
	pot := expr.Prod(expr.Num(o.gconst*o.length), expr.Sub(expr.Num(1), expr.Cos(x)))
	return expr.Add(kin, pot)
}
