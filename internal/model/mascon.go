package model

import (
	"fmt"

	"github.com/san-kum/symdyn/internal/expr"
)

// MasconConfig configures the mascon builders. Gconst and Masses describe the
// point masses (each mass may be a numeric constant or any expression, e.g. a
// parameter slot), Positions is an n x 3 array-like of mascon positions, and
// Omega is an optional 3-element angular velocity of the observation frame
// (nil means an inertial frame).
type MasconConfig struct {
	Gconst    float64
	Masses    []expr.Expr
	Positions any
	Omega     any
}

// pointMassAccel builds the gravitational acceleration of a unit-mass test
// particle at r = (x, y, z) due to fixed point masses:
// G * sum_j (pos_j - r) * (m_j * |pos_j - r|^-3) per component.
func pointMassAccel(gconst float64, masses []expr.Expr, pts [][]expr.Expr) [3]expr.Expr {
	pos, _ := particleVars()
	var accel [3]expr.Expr
	for i := 0; i < 3; i++ {
		terms := make([]expr.Expr, len(pts))
		for j, p := range pts {
			r2 := expr.SumSq(
				expr.Sub(p[0], pos[0]),
				expr.Sub(p[1], pos[1]),
				expr.Sub(p[2], pos[2]),
			)
			terms[j] = expr.Prod(
				expr.Sub(p[i], pos[i]),
				expr.Prod(masses[j], expr.Pow(r2, expr.Num(-1.5))),
			)
		}
		accel[i] = expr.Prod(expr.Num(gconst), expr.Sum(terms...))
	}
	return accel
}

// pointMassPotential builds -G * sum_j m_j / |pos_j - r|.
func pointMassPotential(gconst float64, masses []expr.Expr, pts [][]expr.Expr) expr.Expr {
	pos, _ := particleVars()
	terms := make([]expr.Expr, len(pts))
	for j, p := range pts {
		r2 := expr.SumSq(
			expr.Sub(p[0], pos[0]),
			expr.Sub(p[1], pos[1]),
			expr.Sub(p[2], pos[2]),
		)
		terms[j] = expr.Div(masses[j], expr.Sqrt(r2))
	}
	return expr.Prod(expr.Num(-gconst), expr.Sum(terms...))
}

func masconInputs(cfg MasconConfig) ([][]expr.Expr, [3]expr.Expr, error) {
	pts, err := toExprMatrix(cfg.Positions, "positions array", "mascon", 3)
	if err != nil {
		return nil, [3]expr.Expr{}, err
	}
	if len(cfg.Masses) != len(pts) {
		return nil, [3]expr.Expr{}, fmt.Errorf("mascon: %d mass(es) for %d position(s): %w",
			len(cfg.Masses), len(pts), ErrMassCount)
	}
	om := [3]expr.Expr{expr.Num(0), expr.Num(0), expr.Num(0)}
	if cfg.Omega != nil {
		om, err = omegaVector(cfg.Omega, "mascon")
		if err != nil {
			return nil, [3]expr.Expr{}, err
		}
	}
	return pts, om, nil
}

// Mascon builds the dynamics of a unit-mass test particle in the field of
// fixed point masses, observed in a frame rotating with cfg.Omega. Velocity
// derivatives are the flat sum of the gravitational acceleration and the
// rotating-frame pseudo-force terms.
func Mascon(cfg MasconConfig) (System, error) {
	pts, om, err := masconInputs(cfg)
	if err != nil {
		return nil, err
	}
	grav := pointMassAccel(cfg.Gconst, cfg.Masses, pts)
	rot := rotatingAccel(om)
	var accel [3]expr.Expr
	for i := 0; i < 3; i++ {
		accel[i] = expr.Sum(grav[i], rot[i])
	}
	return particleSystem(accel), nil
}

// MasconPotential returns the potential of the mascon field plus the
// centrifugal potential of the rotating frame.
func MasconPotential(cfg MasconConfig) (expr.Expr, error) {
	pts, om, err := masconInputs(cfg)
	if err != nil {
		return nil, err
	}
	return expr.Add(pointMassPotential(cfg.Gconst, cfg.Masses, pts), rotatingPotential(om)), nil
}

// MasconEnergy returns the test particle's energy: kinetic term plus
// [MasconPotential].
func MasconEnergy(cfg MasconConfig) (expr.Expr, error) {
	pot, err := MasconPotential(cfg)
	if err != nil {
		return nil, err
	}
	_, vel := particleVars()
	kin := expr.Prod(expr.Num(0.5), expr.SumSq(vel[0], vel[1], vel[2]))
	return expr.Add(kin, pot), nil
}
