// Package expr provides the symbolic expression primitives consumed by the
// model builders.
//
// Expressions are immutable trees built from a small set of node kinds:
//
//   - [Num]: floating-point constant
//   - [Variable]: named symbolic leaf
//   - [Par]: indexed runtime-substitutable parameter slot
//   - [Sum], [SumSq]: n-ary sum and sum of squares
//   - [Prod], [Div], [Pow], [Sub]: arithmetic
//   - [Sqrt], [Sin], [Cos]: elementary functions
//
// Constructors apply a fixed set of deterministic normalizations (flattening
// of nested sums/products, dropping of exact-zero terms and unit factors,
// constant folding) and nothing else. Two expressions built from the same
// inputs are therefore structurally identical, which is what [Equal] checks:
// equality is structural, never identity-based, so sub-expressions may be
// shared freely by reference.
//
// # Thread Safety
//
// All nodes are immutable after construction and safe for concurrent use.
package expr
