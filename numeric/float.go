package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/teranos/measure/errors"
)

// Float is a float64 backend for callers that prefer speed over exactness.
type Float float64

// Parse implements Number.
func (Float) Parse(s string) (Float, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewInvalidValueError("invalid float literal %q", s)
	}
	return Float(0).FromFloat(f)
}

// FromInt implements Number.
func (Float) FromInt(i int64) Float { return Float(i) }

// FromFloat implements Number.
func (Float) FromFloat(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewInvalidValueError("float %v is not finite", f)
	}
	return Float(f), nil
}

// Add implements Number.
func (f Float) Add(o Float) Float { return f + o }

// Sub implements Number.
func (f Float) Sub(o Float) Float { return f - o }

// Mul implements Number.
func (f Float) Mul(o Float) Float { return f * o }

// Quo implements Number.
func (f Float) Quo(o Float) (Float, error) {
	if o == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "%v / %v", f, o)
	}
	q := f / o
	if !q.IsFinite() {
		return 0, errors.NewInvalidValueError("%v / %v is out of range", f, o)
	}
	return q, nil
}

// Neg implements Number.
func (f Float) Neg() Float { return -f }

// Abs implements Number.
func (f Float) Abs() Float { return Float(math.Abs(float64(f))) }

// Pow implements Number.
func (f Float) Pow(n int) Float {
	if n < 0 {
		panic(fmt.Sprintf("numeric: negative exponent %d", n))
	}
	r := Float(1)
	for i := 0; i < n; i++ {
		r *= f
	}
	return r
}

// Cmp implements Number.
func (f Float) Cmp(o Float) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	}
	return 0
}

// Sign implements Number.
func (f Float) Sign() int { return f.Cmp(0) }

// IsZero implements Number.
func (f Float) IsZero() bool { return f == 0 }

// IsFinite implements Number.
func (f Float) IsFinite() bool { return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f)) }

// Float64 implements Number.
func (f Float) Float64() float64 { return float64(f) }

// String implements Number using the shortest representation that round-trips.
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Format implements fmt.Formatter by delegating to float64 formatting.
func (f Float) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if _, ok := s.Precision(); !ok {
			fmt.Fprintf(s, fmt.FormatString(s, 's'), f.String())
			return
		}
		verb = 'g'
	case 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		fmt.Fprintf(s, "%%!%c(numeric.Float=%s)", verb, f.String())
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), float64(f))
}
