package variant

import (
	"errors"
	"fmt"
)

// ContractViolation is the panic value raised when a caller breaks a
// precondition, such as unwrapping an absent Maybe or an Err Outcome.
// It is never returned as an error.
type ContractViolation struct {
	Op      string
	Message string
	Cause   error
}

func (v *ContractViolation) Error() string {
	if v.Message == "" {
		return fmt.Sprintf("contract violation in %s", v.Op)
	}
	return fmt.Sprintf("contract violation in %s: %s", v.Op, v.Message)
}

func (v *ContractViolation) Unwrap() error {
	return v.Cause
}

// Violate panics with a ContractViolation for op.
func Violate(op, message string, cause error) {
	panic(&ContractViolation{Op: op, Message: message, Cause: cause})
}

// IsContractViolation reports whether a recovered panic value is a ContractViolation.
func IsContractViolation(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	var v *ContractViolation
	return errors.As(err, &v)
}
