// Package validation implements field-level validation for candidate
// payloads. Rules are table-driven and independent: every rule runs against
// the candidate and contributes at most one error, and all violations are
// collected into a single list so callers can report the complete set in one
// response rather than failing on the first field.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/tbourn/go-candidate-hub/internal/domain"
)

// Rule identifiers, stable and machine-readable. Clients branch on these
// rather than on the human-readable message.
const (
	RuleRequired      = "required"
	RuleInvalidFormat = "invalid_format"
	RuleInvalidRange  = "invalid_range"
	RuleOutOfRange    = "out_of_range"
	RuleInvalidURL    = "invalid_url"
	RuleTooLong       = "too_long"
)

// FieldError describes a single rule violation on a candidate field.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field" example:"email"`
	// Rule is the stable identifier of the violated rule.
	Rule string `json:"rule" example:"invalid_format"`
	// Message is a human-readable description, safe to show to users.
	Message string `json:"message" example:"Invalid email address"`
}

// rule couples a field name with a predicate returning zero or one error.
type rule struct {
	field string
	check func(c *domain.Candidate) *FieldError
}

// emailRE matches "local@domain" with at least one dot in the domain and no
// embedded whitespace. Deliberately permissive beyond that; deliverability
// is not this layer's concern.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// candidateRules is the full rule table. Each entry is independent; order
// only affects the order of the returned error list.
var candidateRules = []rule{
	required("first_name", "First name is required", func(c *domain.Candidate) string { return c.FirstName }),
	maxLen("first_name", 255, func(c *domain.Candidate) string { return c.FirstName }),

	required("last_name", "Last name is required", func(c *domain.Candidate) string { return c.LastName }),
	maxLen("last_name", 255, func(c *domain.Candidate) string { return c.LastName }),

	{field: "email", check: checkEmail},
	maxLen("email", 255, func(c *domain.Candidate) string { return c.Email }),

	maxLen("phone_number", 255, func(c *domain.Candidate) string { return c.PhoneNumber }),

	{field: "best_time_to_call", check: func(c *domain.Candidate) *FieldError {
		return checkTimeInterval(c.BestTimeToCall)
	}},
	maxLen("best_time_to_call", 11, func(c *domain.Candidate) string { return c.BestTimeToCall }),

	absoluteURL("linkedin_profile", "Invalid LinkedIn profile URL", func(c *domain.Candidate) string { return c.LinkedInProfile }),
	maxLen("linkedin_profile", 500, func(c *domain.Candidate) string { return c.LinkedInProfile }),

	absoluteURL("github_profile", "Invalid GitHub profile URL", func(c *domain.Candidate) string { return c.GitHubProfile }),
	maxLen("github_profile", 1000, func(c *domain.Candidate) string { return c.GitHubProfile }),

	required("comments", "Comment is required", func(c *domain.Candidate) string { return c.Comments }),
	maxLen("comments", 2000, func(c *domain.Candidate) string { return c.Comments }),
}

// Validate runs every rule against the candidate and returns all violations.
// An empty slice means the candidate is valid.
func Validate(c *domain.Candidate) []FieldError {
	var errs []FieldError
	for _, r := range candidateRules {
		if fe := r.check(c); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// required fails when the value is empty or whitespace-only.
func required(field, msg string, get func(*domain.Candidate) string) rule {
	return rule{field: field, check: func(c *domain.Candidate) *FieldError {
		if strings.TrimSpace(get(c)) == "" {
			return &FieldError{Field: field, Rule: RuleRequired, Message: msg}
		}
		return nil
	}}
}

// maxLen caps the value length in runs of bytes, matching the column widths.
func maxLen(field string, n int, get func(*domain.Candidate) string) rule {
	return rule{field: field, check: func(c *domain.Candidate) *FieldError {
		if len(get(c)) > n {
			return &FieldError{
				Field:   field,
				Rule:    RuleTooLong,
				Message: fmt.Sprintf("Must be at most %d characters", n),
			}
		}
		return nil
	}}
}

// checkEmail enforces presence and a minimal address grammar.
func checkEmail(c *domain.Candidate) *FieldError {
	if strings.TrimSpace(c.Email) == "" {
		return &FieldError{Field: "email", Rule: RuleRequired, Message: "Email is required"}
	}
	if !emailRE.MatchString(c.Email) {
		return &FieldError{Field: "email", Rule: RuleInvalidFormat, Message: "Invalid email address"}
	}
	return nil
}

// absoluteURL accepts empty values; non-empty values must parse as an
// absolute URL carrying both a scheme and a host.
func absoluteURL(field, msg string, get func(*domain.Candidate) string) rule {
	return rule{field: field, check: func(c *domain.Candidate) *FieldError {
		v := get(c)
		if v == "" {
			return nil
		}
		u, err := url.Parse(v)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return &FieldError{Field: field, Rule: RuleInvalidURL, Message: msg}
		}
		return nil
	}}
}
