package model

import (
	"fmt"

	"github.com/san-kum/symdyn/internal/expr"
)

// FixedCentresConfig configures the fixed-centres builders: a test particle
// orbiting n fixed gravitating centres in an inertial frame.
type FixedCentresConfig struct {
	Gconst    float64
	Masses    []expr.Expr
	Positions any
}

func fixedCentresInputs(cfg FixedCentresConfig) ([][]expr.Expr, error) {
	pts, err := toExprMatrix(cfg.Positions, "positions array", "fixed centres", 3)
	if err != nil {
		return nil, err
	}
	if len(cfg.Masses) != len(pts) {
		return nil, fmt.Errorf("fixed centres: %d mass(es) for %d position(s): %w",
			len(cfg.Masses), len(pts), ErrMassCount)
	}
	return pts, nil
}

// FixedCentres builds the dynamics of a unit-mass test particle attracted by
// fixed gravitating centres.
func FixedCentres(cfg FixedCentresConfig) (System, error) {
	pts, err := fixedCentresInputs(cfg)
	if err != nil {
		return nil, err
	}
	return particleSystem(pointMassAccel(cfg.Gconst, cfg.Masses, pts)), nil
}

// FixedCentresPotential returns -G * sum_j m_j / |pos_j - r|.
func FixedCentresPotential(cfg FixedCentresConfig) (expr.Expr, error) {
	pts, err := fixedCentresInputs(cfg)
	if err != nil {
		return nil, err
	}
	return pointMassPotential(cfg.Gconst, cfg.Masses, pts), nil
}

// FixedCentresEnergy returns the particle's kinetic term plus
// [FixedCentresPotential].
func FixedCentresEnergy(cfg FixedCentresConfig) (expr.Expr, error) {
	pot, err := FixedCentresPotential(cfg)
	if err != nil {
		return nil, err
	}
	_, vel := particleVars()
	kin := expr.Prod(expr.Num(0.5), expr.SumSq(vel[0], vel[1], vel[2]))
	return expr.Add(kin, pot), nil
}
