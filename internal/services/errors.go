// Package services defines the business logic for candidate upserts.
// This file centralizes the service-level error types so they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer, never here.
package services

import (
	"fmt"

	"github.com/tbourn/go-candidate-hub/internal/validation"
)

// ValidationError reports that an upsert payload violated one or more field
// rules. It carries the complete list of violations so the caller can show
// every problem in a single response. It is always recoverable; handlers map
// it to a 400, never a 500.
type ValidationError struct {
	Fields []validation.FieldError
}

// Error implements the error interface with a terse summary; the detail
// lives in Fields.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
