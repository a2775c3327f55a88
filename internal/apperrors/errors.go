package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the resource refuses the requested transition,
// e.g. issuing a book that is already on loan.
var ErrConflict = errors.New("resource state conflict")

// ErrUnauthorized indicates that the caller's credentials were missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")
