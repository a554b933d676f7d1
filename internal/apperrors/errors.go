package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnavailable indicates that a currency is not offered at any branch.
// This is a genuine unavailability condition, distinct from a missing rate
// at a single branch (which merely yields a zero quote).
var ErrUnavailable = errors.New("currency unavailable")

// ErrLocation indicates that no geolocation source produced a usable point.
var ErrLocation = errors.New("location unavailable")
