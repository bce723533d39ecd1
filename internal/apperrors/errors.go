package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates that an external collaborator (transaction store,
// profile source, classifier) could not be reached or returned a failure.
// Statement generation aborts on this error; it never proceeds with partial
// data.
var ErrUpstream = errors.New("upstream collaborator error")
