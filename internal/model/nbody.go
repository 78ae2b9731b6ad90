package model

import (
	"fmt"

	"github.com/san-kum/symdyn/internal/expr"
)

// nbodyOpts carries the optional parameters shared by the n-body builders.
type nbodyOpts struct {
	gconst float64
	masses []expr.Expr
}

// NBodyOption configures the optional parameters of [NBody], [NP1Body] and
// their potential/energy companions.
type NBodyOption func(*nbodyOpts)

// WithGconst overrides the gravitational constant (default 1).
func WithGconst(g float64) NBodyOption {
	return func(o *nbodyOpts) { o.gconst = g }
}

// WithMasses supplies the body masses in body order. Each mass may be a
// numeric constant or any expression (e.g. a parameter slot). A list shorter
// than the body count leaves the remaining bodies massless; omitting the
// option gives every body unit mass.
func WithMasses(masses ...expr.Expr) NBodyOption {
	// an empty call still counts as an explicit (all-massless) list
	return func(o *nbodyOpts) { o.masses = append([]expr.Expr{}, masses...) }
}

// resolveNBody applies defaults and validates n and the masses length.
func resolveNBody(name string, n int, opts []NBodyOption) (nbodyOpts, error) {
	if n < 2 {
		return nbodyOpts{}, fmt.Errorf("%s: got %d bodies: %w", name, n, ErrBodyCount)
	}
	o := nbodyOpts{gconst: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.masses == nil {
		o.masses = make([]expr.Expr, n)
		for i := range o.masses {
			o.masses[i] = expr.Num(1)
		}
	}
	if len(o.masses) > n {
		return nbodyOpts{}, fmt.Errorf("%s: %d mass(es) for %d bodies: %w", name, len(o.masses), n, ErrMassCount)
	}
	for len(o.masses) < n {
		o.masses = append(o.masses, expr.Num(0))
	}
	return o, nil
}

// pairSumSq returns |a - b|^2 for two position triples.
func pairSumSq(a, b [3]*expr.Variable) expr.Expr {
	return expr.SumSq(
		expr.Sub(a[0], b[0]),
		expr.Sub(a[1], b[1]),
		expr.Sub(a[2], b[2]),
	)
}

// NBody builds the inertial-frame dynamics of n mutually gravitating bodies.
// The state has 6n variables x_i, y_i, z_i, vx_i, vy_i, vz_i, bodies in input
// order. Each body's acceleration sums G*m_j*(pos_j-pos_i)*|pos_j-pos_i|^-3
// over all other bodies; a contribution with the exact zero mass reduces to
// the exact symbolic constant 0.
func NBody(n int, opts ...NBodyOption) (System, error) {
	o, err := resolveNBody("nbody", n, opts)
	if err != nil {
		return nil, err
	}
	sys := make(System, 0, 6*n)
	for i := 0; i < n; i++ {
		posI, velI := bodyVars(i)
		var accel [3]expr.Expr
		for k := 0; k < 3; k++ {
			var terms []expr.Expr
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				posJ, _ := bodyVars(j)
				gm := expr.Prod(expr.Num(o.gconst), o.masses[j])
				terms = append(terms, expr.Prod(
					expr.Sub(posJ[k], posI[k]),
					expr.Prod(gm, expr.Pow(pairSumSq(posJ, posI), expr.Num(-1.5))),
				))
			}
			accel[k] = expr.Sum(terms...)
		}
		for k := 0; k < 3; k++ {
			sys = append(sys, Equation{State: posI[k], RHS: velI[k]})
		}
		for k := 0; k < 3; k++ {
			sys = append(sys, Equation{State: velI[k], RHS: accel[k]})
		}
	}
	return sys, nil
}

// NBodyPotential returns -G * sum_{i<j} m_i*m_j / |pos_i - pos_j|.
func NBodyPotential(n int, opts ...NBodyOption) (expr.Expr, error) {
	o, err := resolveNBody("nbody", n, opts)
	if err != nil {
		return nil, err
	}
	var terms []expr.Expr
	for i := 0; i < n; i++ {
		posI, _ := bodyVars(i)
		for j := i + 1; j < n; j++ {
			posJ, _ := bodyVars(j)
			gmm := expr.Prod(expr.Num(o.gconst), o.masses[i], o.masses[j])
			terms = append(terms, expr.Neg(expr.Div(gmm, expr.Sqrt(pairSumSq(posJ, posI)))))
		}
	}
	return expr.Sum(terms...), nil
}

// NBodyEnergy returns the total energy: sum_i 0.5*m_i*|v_i|^2 plus
// [NBodyPotential].
func NBodyEnergy(n int, opts ...NBodyOption) (expr.Expr, error) {
	o, err := resolveNBody("nbody", n, opts)
	if err != nil {
		return nil, err
	}
	kinTerms := make([]expr.Expr, n)
	for i := 0; i < n; i++ {
		_, velI := bodyVars(i)
		kinTerms[i] = expr.Prod(expr.Num(0.5), o.masses[i], expr.SumSq(velI[0], velI[1], velI[2]))
	}
	pot, err := NBodyPotential(n, opts...)
	if err != nil {
		return nil, err
	}
	return expr.Add(expr.Sum(kinTerms...), pot), nil
}
