package services

import "errors"

// ErrValidation marks request-level validation failures, e.g. an order total
// below the minimum chargeable amount.
var ErrValidation = errors.New("validation failed")
