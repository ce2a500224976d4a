package field

import (
	"errors"
	"fmt"
)

var (
	// ErrContract is matched by every ContractError via errors.Is.
	ErrContract = errors.New("slopefield: contract violation")

	ErrNilFunc = errors.New("field: equation has no function")

	ErrUnknownEquation = errors.New("field: unknown equation")

	ErrDuplicateEquation = errors.New("field: equation already registered")
)

// ContractError reports caller misuse: an argument outside the documented
// range. It is never used for domain faults, which become Undefined.
type ContractError struct {
	Op      string
	Arg     string
	Value   any
	Wrapped error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %v", e.Op, e.Arg, e.Value, e.Wrapped)
}

func (e *ContractError) Unwrap() error {
	return e.Wrapped
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}
