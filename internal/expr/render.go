package expr

import (
	"fmt"
	"strings"
)

// formatNum renders a constant with 17 significant digits, enough to round-trip
// any float64 exactly.
func formatNum(v float64) string {
	return fmt.Sprintf("%.17g", v)
}

func (n *num) String() string      { return formatNum(n.v) }
func (v *Variable) String() string { return v.name }
func (p *par) String() string      { return fmt.Sprintf("par[%d]", p.idx) }

func joinExprs(es []Expr, sep string) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func (s *sum) String() string   { return "(" + joinExprs(s.terms, " + ") + ")" }
func (s *sumsq) String() string { return "sum_sq(" + joinExprs(s.terms, ", ") + ")" }
func (p *prod) String() string  { return "(" + joinExprs(p.factors, " * ") + ")" }
func (s *sub2) String() string  { return "(" + s.a.String() + " - " + s.b.String() + ")" }
func (d *div) String() string   { return "(" + d.a.String() + " / " + d.b.String() + ")" }
func (p *pow) String() string   { return "(" + p.base.String() + "**" + p.exp.String() + ")" }
func (f *fn) String() string    { return f.kind.String() + "(" + f.arg.String() + ")" }
