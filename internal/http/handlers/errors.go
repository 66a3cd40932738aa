// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These constants are mapped to HTTP responses via the `fail()` helper and
// give clients a stable, machine-readable taxonomy alongside human-readable
// messages. Codes are lowercase snake_case; generic ones mirror HTTP status
// semantics, domain-specific ones cover business outcomes a status alone
// cannot convey.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeUpsertFailed     = "upsert_failed"
)
