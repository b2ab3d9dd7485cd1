package errs

import "fmt"

// NotFoundError covers both missing resources and ownership mismatches, so a
// caller can't probe for the existence of another tenant's resources.
type NotFoundError struct {
	Resource string
}

func (t NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", t.Resource)
}

type ValidationError struct {
	Err error
}

func (t ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", t.Err)
}

type ConflictError struct {
	Err error
}

func (t ConflictError) Error() string {
	return fmt.Sprintf("conflict: %v", t.Err)
}
