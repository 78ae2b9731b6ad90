package model

import (
	"github.com/san-kum/symdyn/internal/expr"
)

// NP1Body builds the n-body system of [NBody] re-expressed in the frame of
// body 0, the primary. The state has 6(n-1) variables for bodies 1..n-1,
// holding positions and velocities relative to the primary. Each relative
// acceleration combines the direct two-body attraction, with combined
// gravitational parameter G*(m_0+m_i), and the indirect terms induced on the
// primary by every other secondary.
func NP1Body(n int, opts ...NBodyOption) (System, error) {
	o, err := resolveNBody("np1body", n, opts)
	if err != nil {
		return nil, err
	}
	sys := make(System, 0, 6*(n-1))
	for i := 1; i < n; i++ {
		relI, velI := bodyVars(i)
		mu := expr.Prod(expr.Num(o.gconst), expr.Add(o.masses[0], o.masses[i]))
		r2I := expr.SumSq(relI[0], relI[1], relI[2])
		var accel [3]expr.Expr
		for k := 0; k < 3; k++ {
			terms := []expr.Expr{
				expr.Prod(relI[k], expr.Prod(expr.Num(-1), mu, expr.Pow(r2I, expr.Num(-1.5)))),
			}
			for j := 1; j < n; j++ {
				if j == i {
					continue
				}
				relJ, _ := bodyVars(j)
				gm := expr.Prod(expr.Num(o.gconst), o.masses[j])
				r2J := expr.SumSq(relJ[0], relJ[1], relJ[2])
				terms = append(terms,
					expr.Prod(
						expr.Sub(relJ[k], relI[k]),
						expr.Prod(gm, expr.Pow(pairSumSq(relJ, relI), expr.Num(-1.5))),
					),
					expr.Prod(relJ[k], expr.Prod(expr.Num(-1), gm, expr.Pow(r2J, expr.Num(-1.5)))),
				)
			}
			accel[k] = expr.Sum(terms...)
		}
		for k := 0; k < 3; k++ {
			sys = append(sys, Equation{State: relI[k], RHS: velI[k]})
		}
		for k := 0; k < 3; k++ {
			sys = append(sys, Equation{State: velI[k], RHS: accel[k]})
		}
	}
	return sys, nil
}

// NP1BodyPotential returns the system potential expressed in coordinates
// relative to the primary:
// -G * sum_i m_0*m_i/|rel_i| - G * sum_{i<j} m_i*m_j/|rel_i - rel_j|.
func NP1BodyPotential(n int, opts ...NBodyOption) (expr.Expr, error) {
	o, err := resolveNBody("np1body", n, opts)
	if err != nil {
		return nil, err
	}
	var terms []expr.Expr
	for i := 1; i < n; i++ {
		relI, _ := bodyVars(i)
		gmm := expr.Prod(expr.Num(o.gconst), o.masses[0], o.masses[i])
		r2I := expr.SumSq(relI[0], relI[1], relI[2])
		terms = append(terms, expr.Neg(expr.Div(gmm, expr.Sqrt(r2I))))
	}
	for i := 1; i < n; i++ {
		relI, _ := bodyVars(i)
		for j := i + 1; j < n; j++ {
			relJ, _ := bodyVars(j)
			gmm := expr.Prod(expr.Num(o.gconst), o.masses[i], o.masses[j])
			terms = append(terms, expr.Neg(expr.Div(gmm, expr.Sqrt(pairSumSq(relJ, relI)))))
		}
	}
	return expr.Sum(terms...), nil
}

// NP1BodyEnergy returns the total energy in relative coordinates, assuming
// the system barycentre is at rest: the primary's velocity is recovered as
// v_0 = -(sum_i m_i*u_i)/M with u_i the relative velocities and M the total
// mass, and the kinetic term is 0.5*m_0*|v_0|^2 + sum_i 0.5*m_i*|v_0+u_i|^2.
func NP1BodyEnergy(n int, opts ...NBodyOption) (expr.Expr, error) {
	o, err := resolveNBody("np1body", n, opts)
	if err != nil {
		return nil, err
	}
	totalMass := expr.Sum(o.masses...)

	// primary velocity from momentum conservation
	var v0 [3]expr.Expr
	for k := 0; k < 3; k++ {
		terms := make([]expr.Expr, 0, n-1)
		for i := 1; i < n; i++ {
			_, velI := bodyVars(i)
			terms = append(terms, expr.Prod(o.masses[i], velI[k]))
		}
		v0[k] = expr.Neg(expr.Div(expr.Sum(terms...), totalMass))
	}

	kinTerms := []expr.Expr{
		expr.Prod(expr.Num(0.5), o.masses[0], expr.SumSq(v0[0], v0[1], v0[2])),
	}
	for i := 1; i < n; i++ {
		_, velI := bodyVars(i)
		kinTerms = append(kinTerms, expr.Prod(expr.Num(0.5), o.masses[i], expr.SumSq(
			expr.Add(v0[0], velI[0]),
			expr.Add(v0[1], velI[1]),
			expr.Add(v0[2], velI[2]),
		)))
	}

	pot, err := NP1BodyPotential(n, opts...)
	if err != nil {
		return nil, err
	}
	return expr.Add(expr.Sum(kinTerms...), pot), nil
}
