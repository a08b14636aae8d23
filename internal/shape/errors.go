package shape

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidGeometry is matched by every *ValidationError.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDegenerateComposite is returned when a composite has no members
	// or its members have zero total area, so no centroid exists.
	ErrDegenerateComposite = errors.New("degenerate composite")
)

// ValidationError reports which parameter of which shape violated which rule
type ValidationError struct {
	Kind  Kind
	Param string
	Value float64
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s = %s %s", e.Kind, e.Param, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Rule)
}

// Is lets errors.Is match ErrInvalidGeometry
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

func checkLength(kind Kind, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Kind: kind, Param: param, Value: v, Rule: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Kind: kind, Param: param, Value: v, Rule: "must not be negative"}
	}
	return nil
}

func checkLengths(kind Kind, params ...namedLength) error {
	for _, p := range params {
		if err := checkLength(kind, p.name, p.value); err != nil {
			return err
		}
	}
	return nil
}

type namedLength struct {
	name  string
	value float64
}
