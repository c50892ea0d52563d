package measure

import (
	"fmt"

	"github.com/teranos/measure/errors"
)

// LookupKind says how a unit name was being looked up when it failed.
type LookupKind int

const (
	// LookupUnit is a failed lookup while constructing a measure.
	LookupUnit LookupKind = iota
	// LookupAttribute is a failed In call.
	LookupAttribute
	// LookupKey is a failed Get call.
	LookupKey
)

// LookupError reports a unit name that does not resolve in a dimension.
// errors.Is matches it against ErrUnknownUnit and, depending on Kind,
// ErrAttributeNotFound or ErrKeyNotFound.
type LookupError struct {
	Dimension string
	Unit      string
	Kind      LookupKind
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case LookupAttribute:
		return fmt.Sprintf("%s object has no attribute '%s'", e.Dimension, e.Unit)
	case LookupKey:
		return fmt.Sprintf("%s object has no key '%s'", e.Dimension, e.Unit)
	}
	return fmt.Sprintf("unknown unit '%s' for %s", e.Unit, e.Dimension)
}

func (e *LookupError) Unwrap() error {
	switch e.Kind {
	case LookupAttribute:
		return errors.ErrAttributeNotFound
	case LookupKey:
		return errors.ErrKeyNotFound
	}
	return errors.ErrUnknownUnit
}

// TypeMismatchError reports arithmetic between operands that do not combine.
type TypeMismatchError struct {
	Op    string // add, subtract, multiply or divide
	Left  string
	Right string
}

func (e *TypeMismatchError) Error() string {
	switch e.Op {
	case "add":
		return fmt.Sprintf("can't add type '%s' to '%s'", e.Left, e.Right)
	case "subtract":
		return fmt.Sprintf("can't subtract type '%s' from '%s'", e.Right, e.Left)
	case "multiply":
		return fmt.Sprintf("can't multiply type '%s' and '%s'", e.Left, e.Right)
	case "divide":
		return fmt.Sprintf("can't divide type '%s' by '%s'", e.Left, e.Right)
	}
	return fmt.Sprintf("can't %s type '%s' and '%s'", e.Op, e.Left, e.Right)
}

func (e *TypeMismatchError) Unwrap() error { return errors.ErrTypeMismatch }

// UnsupportedError reports an operation that is well typed but undefined,
// such as raising a distance to the fourth power.
type UnsupportedError struct {
	Dimension string
	Op        string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operation not supported: %s %s", e.Dimension, e.Op)
}

func (e *UnsupportedError) Unwrap() error { return errors.ErrNotSupported }
