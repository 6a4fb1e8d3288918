package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRemoteUnavailable indicates the remote mirror endpoint could not be
// reached, or is not configured at all.
var ErrRemoteUnavailable = errors.New("remote endpoint unavailable")

// ErrRemotePayload indicates the remote mirror answered with a body that
// could not be parsed as a snapshot.
var ErrRemotePayload = errors.New("remote payload malformed")
