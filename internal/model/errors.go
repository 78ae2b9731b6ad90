package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the model package. Callers branch with errors.Is;
// the concrete *ShapeError and *ConversionError values carry the details.
var (
	// ErrShape indicates an array-like input whose dimensionality or column
	// count violates a model's geometric contract.
	ErrShape = errors.New("model: invalid array shape")

	// ErrConversion indicates an array element that cannot be converted into
	// a symbolic expression.
	ErrConversion = errors.New("model: array not convertible to expressions")

	// ErrBodyCount indicates an n-body builder invoked with fewer than two
	// bodies.
	ErrBodyCount = errors.New("model: at least two bodies are required")

	// ErrMassCount indicates a masses sequence whose length does not match
	// the model's body count.
	ErrMassCount = errors.New("model: masses length does not match body count")
)

// ShapeError reports a dimensionality or column-count violation of an
// array-like input. Quantity is either "dimensions" or "columns".
type ShapeError struct {
	Subject  string
	Model    string
	Quantity string
	Required int
	Got      int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("Invalid %s in a %s model: the number of %s must be %d, but it is %d instead",
		e.Subject, e.Model, e.Quantity, e.Required, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// ConversionError reports an array element that could not be turned into an
// expression.
type ConversionError struct {
	Subject string
	Model   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("The %s in a %s model could not be converted into an array of expressions"+
		" - please make sure that the array's values can be converted into heyoka expressions",
		e.Subject, e.Model)
}

func (e *ConversionError) Unwrap() error { return ErrConversion }
