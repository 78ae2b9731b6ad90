package model

import (
	"reflect"

	"github.com/san-kum/symdyn/internal/expr"
)

// toExpr converts a single array element into an expression. Expressions pass
// through unchanged; numeric values become constants.
func toExpr(v any) (expr.Expr, bool) {
	switch x := v.(type) {
	case expr.Expr:
		return x, true
	case float64:
		return expr.Num(x), true
	case float32:
		return expr.Num(float64(x)), true
	case int:
		return expr.Num(float64(x)), true
	case int32:
		return expr.Num(float64(x)), true
	case int64:
		return expr.Num(float64(x)), true
	default:
		return nil, false
	}
}

// unwrap strips interface indirection from a reflected value.
func unwrap(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

func isSeq(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

// dimsOf reports the nesting depth of an array-like value: 0 for scalars,
// 1 for flat sequences, 2 for sequences of sequences, and so on. Depth below
// the first level follows the first element; empty sequences fall back to the
// static element type.
func dimsOf(rv reflect.Value) int {
	rv = unwrap(rv)
	if !isSeq(rv) {
		return 0
	}
	if rv.Len() > 0 {
		return 1 + dimsOf(rv.Index(0))
	}
	d := 1
	t := rv.Type().Elem()
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		d++
		t = t.Elem()
	}
	return d
}

// toExprMatrix validates value as a 2-D array-like with exactly cols columns
// and converts it into a rectangular matrix of expressions. subject and
// modelName scope the error messages, e.g. ("positions array", "mascon").
func toExprMatrix(value any, subject, modelName string, cols int) ([][]expr.Expr, error) {
	rv := unwrap(reflect.ValueOf(value))
	if d := dimsOf(rv); d != 2 {
		return nil, &ShapeError{Subject: subject, Model: modelName, Quantity: "dimensions", Required: 2, Got: d}
	}
	out := make([][]expr.Expr, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		row := unwrap(rv.Index(i))
		if !isSeq(row) {
			return nil, &ConversionError{Subject: subject, Model: modelName}
		}
		if row.Len() != cols {
			return nil, &ShapeError{Subject: subject, Model: modelName, Quantity: "columns", Required: cols, Got: row.Len()}
		}
		out[i] = make([]expr.Expr, cols)
		for j := 0; j < cols; j++ {
			e, ok := toExpr(unwrap(row.Index(j)).Interface())
			if !ok {
				return nil, &ConversionError{Subject: subject, Model: modelName}
			}
			out[i][j] = e
		}
	}
	return out, nil
}

// toExprVector validates value as a flat array-like of exactly wantLen
// elements and converts it into a vector of expressions.
func toExprVector(value any, subject, modelName string, wantLen int) ([]expr.Expr, error) {
	rv := unwrap(reflect.ValueOf(value))
	if d := dimsOf(rv); d != 1 {
		return nil, &ShapeError{Subject: subject, Model: modelName, Quantity: "dimensions", Required: 1, Got: d}
	}
	if rv.Len() != wantLen {
		return nil, &ShapeError{Subject: subject, Model: modelName, Quantity: "elements", Required: wantLen, Got: rv.Len()}
	}
	out := make([]expr.Expr, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e, ok := toExpr(unwrap(rv.Index(i)).Interface())
		if !ok {
			return nil, &ConversionError{Subject: subject, Model: modelName}
		}
		out[i] = e
	}
	return out, nil
}
