package expr

import "sort"

// Subs returns e with every variable named in bind replaced by its
// replacement expression. The result is rebuilt through the normal
// constructors, so the usual normalizations apply to substituted trees.
func Subs(e Expr, bind map[string]Expr) Expr {
	if len(bind) == 0 {
		return e
	}
	return e.subs(bind)
}

// Vars returns the sorted names of the free variables of e.
func Vars(e Expr) []string {
	set := make(map[string]struct{})
	e.collectVars(set)
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (n *num) subs(map[string]Expr) Expr { return n }
func (p *par) subs(map[string]Expr) Expr { return p }

func (v *Variable) subs(bind map[string]Expr) Expr {
	if r, ok := bind[v.name]; ok {
		return r
	}
	return v
}

func subsAll(es []Expr, bind map[string]Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = e.subs(bind)
	}
	return out
}

func (s *sum) subs(bind map[string]Expr) Expr   { return Sum(subsAll(s.terms, bind)...) }
func (s *sumsq) subs(bind map[string]Expr) Expr { return SumSq(subsAll(s.terms, bind)...) }
func (p *prod) subs(bind map[string]Expr) Expr  { return Prod(subsAll(p.factors, bind)...) }
func (s *sub2) subs(bind map[string]Expr) Expr  { return Sub(s.a.subs(bind), s.b.subs(bind)) }
func (d *div) subs(bind map[string]Expr) Expr   { return Div(d.a.subs(bind), d.b.subs(bind)) }
func (p *pow) subs(bind map[string]Expr) Expr   { return Pow(p.base.subs(bind), p.exp.subs(bind)) }

func (f *fn) subs(bind map[string]Expr) Expr {
	arg := f.arg.subs(bind)
	switch f.kind {
	case fnSqrt:
		return Sqrt(arg)
	case fnSin:
		return Sin(arg)
	default:
		return Cos(arg)
	}
}

func (n *num) collectVars(map[string]struct{}) {}
func (p *par) collectVars(map[string]struct{}) {}

func (v *Variable) collectVars(set map[string]struct{}) { set[v.name] = struct{}{} }

func (s *sum) collectVars(set map[string]struct{}) {
	for _, t := range s.terms {
		t.collectVars(set)
	}
}

func (s *sumsq) collectVars(set map[string]struct{}) {
	for _, t := range s.terms {
		t.collectVars(set)
	}
}

func (p *prod) collectVars(set map[string]struct{}) {
	for _, f := range p.factors {
		f.collectVars(set)
	}
}

func (s *sub2) collectVars(set map[string]struct{}) {
	s.a.collectVars(set)
	s.b.collectVars(set)
}

func (d *div) collectVars(set map[string]struct{}) {
	d.a.collectVars(set)
	d.b.collectVars(set)
}

func (p *pow) collectVars(set map[string]struct{}) {
	p.base.collectVars(set)
	p.exp.collectVars(set)
}

func (f *fn) collectVars(set map[string]struct{}) { f.arg.collectVars(set) }
