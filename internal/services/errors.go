package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrAuthorDoesNotExist = errors.New("author does not exist")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConflictError reports a duplicate unique field, naming the field and the
// offending value. Handlers map it to 409.
type ConflictError struct {
	Resource string
	Field    string
	Value    any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %v already exists", e.Resource, e.Field, e.Value)
}
