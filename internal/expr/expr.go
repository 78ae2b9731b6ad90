package expr

// Expr is an immutable symbolic expression tree node.
//
// Nodes are constructed through the package-level constructors, which apply
// the normalizations documented in the package comment. There is no other
// rewriting: what the constructors build is exactly what is stored.
type Expr interface {
	// String renders the expression with 17-significant-digit constants.
	String() string

	// Equal reports structural equality with other.
	Equal(other Expr) bool

	eval(env Env) (float64, error)
	subs(bind map[string]Expr) Expr
	collectVars(set map[string]struct{})
}

// num is a floating-point constant.
type num struct{ v float64 }

// Num returns the constant expression v.
func Num(v float64) Expr { return &num{v: v} }

// Nums converts a slice of floats into constant expressions.
func Nums(vs ...float64) []Expr {
	out := make([]Expr, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}
	return out
}

func (n *num) Equal(other Expr) bool {
	o, ok := other.(*num)
	return ok && n.v == o.v
}

// asNum extracts the constant value of e, if e is a constant.
func asNum(e Expr) (float64, bool) {
	n, ok := e.(*num)
	if !ok {
		return 0, false
	}
	return n.v, true
}

func isZero(e Expr) bool { v, ok := asNum(e); return ok && v == 0 }
func isOne(e Expr) bool  { v, ok := asNum(e); return ok && v == 1 }

// Variable is a named symbolic leaf. Within a model, variables are identified
// uniquely by name.
type Variable struct{ name string }

// Var returns the variable named name.
func Var(name string) *Variable { return &Variable{name: name} }

// MakeVars constructs one variable per name, in order.
func MakeVars(names ...string) []*Variable {
	out := make([]*Variable, len(names))
	for i, n := range names {
		out[i] = Var(n)
	}
	return out
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && v.name == o.name
}

// par is an indexed parameter slot: a placeholder for a numeric constant
// substituted at evaluation time, distinct from a variable.
type par struct{ idx int }

// Par returns the parameter slot with index idx.
func Par(idx int) Expr { return &par{idx: idx} }

func (p *par) Equal(other Expr) bool {
	o, ok := other.(*par)
	return ok && p.idx == o.idx
}

// sum is an n-ary sum.
type sum struct{ terms []Expr }

// Sum returns the flat sum of terms. Nested sums are flattened, terms equal
// to the exact constant 0 are dropped, and an all-constant sum folds to a
// constant; an empty sum is the constant 0 and a single-term sum is the term
// itself.
func Sum(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	allConst := true
	acc := 0.0
	for _, t := range terms {
		if inner, ok := t.(*sum); ok {
			flat = append(flat, inner.terms...)
			allConst = false
			continue
		}
		if isZero(t) {
			continue
		}
		if v, ok := asNum(t); ok {
			acc += v
		} else {
			allConst = false
		}
		flat = append(flat, t)
	}
	if allConst {
		return Num(acc)
	}
	switch len(flat) {
	case 0:
		return Num(0)
	case 1:
		return flat[0]
	}
	return &sum{terms: flat}
}

// Add is a binary convenience over Sum.
func Add(a, b Expr) Expr { return Sum(a, b) }

func (s *sum) Equal(other Expr) bool {
	o, ok := other.(*sum)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// sumsq is an n-ary sum of squares.
type sumsq struct{ terms []Expr }

// SumSq returns the sum of the squares of terms. A sum of squares whose
// operands are all constants folds to a constant; an empty one is 0.
func SumSq(terms ...Expr) Expr {
	allConst := true
	acc := 0.0
	for _, t := range terms {
		v, ok := asNum(t)
		if !ok {
			allConst = false
			break
		}
		acc += v * v
	}
	if allConst {
		return Num(acc)
	}
	cp := make([]Expr, len(terms))
	copy(cp, terms)
	return &sumsq{terms: cp}
}

func (s *sumsq) Equal(other Expr) bool {
	o, ok := other.(*sumsq)
	if !ok || len(s.terms) != len(o.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// prod is an n-ary product with an optional folded leading constant.
type prod struct{ factors []Expr }

// Prod returns the flat product of factors. Nested products are flattened,
// constant factors are folded into a single leading constant, a zero factor
// collapses the whole product to 0, and unit constants are dropped.
func Prod(factors ...Expr) Expr {
	coeff := 1.0
	flat := make([]Expr, 0, len(factors))
	var walk func(fs []Expr)
	walk = func(fs []Expr) {
		for _, f := range fs {
			if inner, ok := f.(*prod); ok {
				walk(inner.factors)
				continue
			}
			if v, ok := asNum(f); ok {
				coeff *= v
				continue
			}
			flat = append(flat, f)
		}
	}
	walk(factors)
	if coeff == 0 {
		return Num(0)
	}
	if len(flat) == 0 {
		return Num(coeff)
	}
	if coeff != 1 {
		flat = append([]Expr{Num(coeff)}, flat...)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &prod{factors: flat}
}

// Mul is a variadic alias for Prod.
func Mul(factors ...Expr) Expr { return Prod(factors...) }

// Neg returns -e, represented as the product of -1 and e.
func Neg(e Expr) Expr { return Prod(Num(-1), e) }

func (p *prod) Equal(other Expr) bool {
	o, ok := other.(*prod)
	if !ok || len(p.factors) != len(o.factors) {
		return false
	}
	for i := range p.factors {
		if !p.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

// sub2 is a binary subtraction. Subtraction is kept nominal (not rewritten
// to a sum) so that difference terms keep their natural shape.
type sub2 struct{ a, b Expr }

// Sub returns a - b. Subtracting the exact constant 0 returns a, subtracting
// from 0 returns the negation of b, and two constants fold.
func Sub(a, b Expr) Expr {
	if isZero(b) {
		return a
	}
	if isZero(a) {
		return Neg(b)
	}
	if av, ok := asNum(a); ok {
		if bv, ok := asNum(b); ok {
			return Num(av - bv)
		}
	}
	return &sub2{a: a, b: b}
}

func (s *sub2) Equal(other Expr) bool {
	o, ok := other.(*sub2)
	return ok && s.a.Equal(o.a) && s.b.Equal(o.b)
}

// div is a binary division.
type div struct{ a, b Expr }

// Div returns a / b. A zero numerator collapses to 0, a unit denominator
// returns the numerator, and two constants fold.
func Div(a, b Expr) Expr {
	if isZero(a) {
		return Num(0)
	}
	if isOne(b) {
		return a
	}
	if av, ok := asNum(a); ok {
		if bv, ok := asNum(b); ok && bv != 0 {
			return Num(av / bv)
		}
	}
	return &div{a: a, b: b}
}

func (d *div) Equal(other Expr) bool {
	o, ok := other.(*div)
	return ok && d.a.Equal(o.a) && d.b.Equal(o.b)
}

// pow is exponentiation with an arbitrary expression exponent.
type pow struct{ base, exp Expr }

// Pow returns base raised to exp. Two constants fold; no other rewriting is
// performed (in particular x**1 is kept as written).
func Pow(base, exp Expr) Expr {
	if bv, ok := asNum(base); ok {
		if ev, ok := asNum(exp); ok {
			return Num(mathPow(bv, ev))
		}
	}
	return &pow{base: base, exp: exp}
}

func (p *pow) Equal(other Expr) bool {
	o, ok := other.(*pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

// fnKind enumerates the unary elementary functions.
type fnKind int

const (
	fnSqrt fnKind = iota
	fnSin
	fnCos
)

func (k fnKind) String() string {
	switch k {
	case fnSqrt:
		return "sqrt"
	case fnSin:
		return "sin"
	case fnCos:
		return "cos"
	default:
		return "unknown"
	}
}

type fn struct {
	kind fnKind
	arg  Expr
}

// Sqrt returns the square root of e.
func Sqrt(e Expr) Expr { return &fn{kind: fnSqrt, arg: e} }

// Sin returns the sine of e.
func Sin(e Expr) Expr { return &fn{kind: fnSin, arg: e} }

// Cos returns the cosine of e.
func Cos(e Expr) Expr { return &fn{kind: fnCos, arg: e} }

func (f *fn) Equal(other Expr) bool {
	o, ok := other.(*fn)
	return ok && f.kind == o.kind && f.arg.Equal(o.arg)
}
