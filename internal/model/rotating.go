package model

import "github.com/san-kum/symdyn/internal/expr"

// rotatingAccel expands the rotating-frame pseudo-acceleration
// -2w x v - w x (w x r) component-wise. No cross-product primitive exists,
// so each component is a flat sum of products; terms that collapse to the
// exact constant 0 (e.g. for zero angular-velocity components) are dropped
// by the sum normalization.
func rotatingAccel(om [3]expr.Expr) [3]expr.Expr {
	pos, vel := particleVars()

	// w x r
	c := [3]expr.Expr{
		expr.Sub(expr.Prod(om[1], pos[2]), expr.Prod(om[2], pos[1])),
		expr.Sub(expr.Prod(om[2], pos[0]), expr.Prod(om[0], pos[2])),
		expr.Sub(expr.Prod(om[0], pos[1]), expr.Prod(om[1], pos[0])),
	}

	var accel [3]expr.Expr
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		accel[i] = expr.Sum(
			// centrifugal: -(w x (w x r))
			expr.Prod(om[k], c[j]),
			expr.Prod(expr.Num(-1), om[j], c[k]),
			// Coriolis: -2 w x v
			expr.Prod(expr.Num(-2), om[j], vel[k]),
			expr.Prod(expr.Num(2), om[k], vel[j]),
		)
	}
	return accel
}

// rotatingPotential builds the centrifugal potential
// 0.5 * ((w . r)^2 - |w|^2 * |r|^2) from sum and sum-of-squares primitives.
func rotatingPotential(om [3]expr.Expr) expr.Expr {
	pos, _ := particleVars()
	wDotR := expr.Sum(
		expr.Prod(om[0], pos[0]),
		expr.Prod(om[1], pos[1]),
		expr.Prod(om[2], pos[2]),
	)
	w2 := expr.SumSq(om[0], om[1], om[2])
	r2 := expr.SumSq(pos[0], pos[1], pos[2])
	return expr.Prod(expr.Num(0.5), expr.Sub(expr.Pow(wDotR, expr.Num(2)), expr.Prod(w2, r2)))
}

// omegaVector validates an angular-velocity input for the given model name.
func omegaVector(omega any, modelName string) ([3]expr.Expr, error) {
	vec, err := toExprVector(omega, "omega array", modelName, 3)
	if err != nil {
		return [3]expr.Expr{}, err
	}
	return [3]expr.Expr{vec[0], vec[1], vec[2]}, nil
}

// Rotating builds the dynamics of a unit-mass test particle subject only to
// the pseudo-forces of a frame rotating with angular velocity omega
// (a 3-element array-like of numbers or expressions).
func Rotating(omega any) (System, error) {
	om, err := omegaVector(omega, "rotating")
	if err != nil {
		return nil, err
	}
	return particleSystem(rotatingAccel(om)), nil
}

// RotatingPotential returns the centrifugal potential of the rotating frame.
func RotatingPotential(omega any) (expr.Expr, error) {
	om, err := omegaVector(omega, "rotating")
	if err != nil {
		return nil, err
	}
	return rotatingPotential(om), nil
}

// RotatingEnergy returns the energy of a unit-mass particle in the rotating
// frame: kinetic term plus centrifugal potential.
func RotatingEnergy(omega any) (expr.Expr, error) {
	om, err := omegaVector(omega, "rotating")
	if err != nil {
		return nil, err
	}
	_, vel := particleVars()
	kin := expr.Prod(expr.Num(0.5), expr.SumSq(vel[0], vel[1], vel[2]))
	return expr.Add(kin, rotatingPotential(om)), nil
}
