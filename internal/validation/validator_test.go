package validation

import (
	"strings"
	"testing"

	"github.com/tbourn/go-candidate-hub/internal/domain"
)

// validCandidate returns a payload that passes every rule; tests break one
// field at a time.
func validCandidate() *domain.Candidate {
	return &domain.Candidate{
		Email:           "jane.doe@example.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		PhoneNumber:     "+44 20 7946 0958",
		BestTimeToCall:  "09:00-17:30",
		LinkedInProfile: "https://www.linkedin.com/in/janedoe",
		GitHubProfile:   "https://github.com/janedoe",
		Comments:        "Strong Go background",
	}
}

// hasError reports whether errs contains a violation for field with rule.
func hasError(errs []FieldError, field, rule string) bool {
	for _, e := range errs {
		if e.Field == field && e.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate_ValidCandidate_NoErrors(t *testing.T) {
	if errs := Validate(validCandidate()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidate_OptionalFieldsAbsent_NoErrors(t *testing.T) {
	c := validCandidate()
	c.PhoneNumber = ""
	c.BestTimeToCall = ""
	c.LinkedInProfile = ""
	c.GitHubProfile = ""
	if errs := Validate(c); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		mod   func(c *domain.Candidate)
	}{
		{"first_name empty", "first_name", func(c *domain.Candidate) { c.FirstName = "" }},
		{"first_name whitespace", "first_name", func(c *domain.Candidate) { c.FirstName = "   " }},
		{"last_name empty", "last_name", func(c *domain.Candidate) { c.LastName = "" }},
		{"email empty", "email", func(c *domain.Candidate) { c.Email = "" }},
		{"comments empty", "comments", func(c *domain.Candidate) { c.Comments = "" }},
		{"comments whitespace", "comments", func(c *domain.Candidate) { c.Comments = "\t " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validCandidate()
			tc.mod(c)
			errs := Validate(c)
			if !hasError(errs, tc.field, RuleRequired) {
				t.Fatalf("expected required error on %q, got %+v", tc.field, errs)
			}
		})
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	bad := []string{
		"invalid-email",
		"no-at-sign.example.com",
		"two@@example.com",
		"dotless@example",
		"spaces in@example.com",
		"trailing@example.com ",
	}
	for _, email := range bad {
		c := validCandidate()
		c.Email = email
		errs := Validate(c)
		if !hasError(errs, "email", RuleInvalidFormat) {
			t.Fatalf("email %q: expected invalid_format, got %+v", email, errs)
		}
	}

	good := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co.uk",
		"UPPER@Example.COM",
	}
	for _, email := range good {
		c := validCandidate()
		c.Email = email
		if errs := Validate(c); len(errs) != 0 {
			t.Fatalf("email %q: expected valid, got %+v", email, errs)
		}
	}
}

func TestValidate_ProfileURLs(t *testing.T) {
	for _, field := range []string{"linkedin_profile", "github_profile"} {
		set := func(c *domain.Candidate, v string) {
			if field == "linkedin_profile" {
				c.LinkedInProfile = v
			} else {
				c.GitHubProfile = v
			}
		}

		c := validCandidate()
		set(c, "invalid-url")
		if errs := Validate(c); !hasError(errs, field, RuleInvalidURL) {
			t.Fatalf("%s: expected invalid_url for relative string, got %+v", field, errs)
		}

		c = validCandidate()
		set(c, "http://")
		if errs := Validate(c); !hasError(errs, field, RuleInvalidURL) {
			t.Fatalf("%s: expected invalid_url for scheme-only value, got %+v", field, errs)
		}

		c = validCandidate()
		set(c, "https://example.com/profile")
		if errs := Validate(c); len(errs) != 0 {
			t.Fatalf("%s: expected valid absolute URL, got %+v", field, errs)
		}

		c = validCandidate()
		set(c, "")
		if errs := Validate(c); len(errs) != 0 {
			t.Fatalf("%s: expected empty value to pass, got %+v", field, errs)
		}
	}
}

func TestValidate_MaxLengths(t *testing.T) {
	tests := []struct {
		field string
		limit int
		mod   func(c *domain.Candidate, v string)
	}{
		{"first_name", 255, func(c *domain.Candidate, v string) { c.FirstName = v }},
		{"last_name", 255, func(c *domain.Candidate, v string) { c.LastName = v }},
		{"phone_number", 255, func(c *domain.Candidate, v string) { c.PhoneNumber = v }},
		{"best_time_to_call", 11, func(c *domain.Candidate, v string) { c.BestTimeToCall = v }},
		{"comments", 2000, func(c *domain.Candidate, v string) { c.Comments = v }},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			c := validCandidate()
			tc.mod(c, strings.Repeat("x", tc.limit+1))
			errs := Validate(c)
			if !hasError(errs, tc.field, RuleTooLong) {
				t.Fatalf("expected too_long on %q, got %+v", tc.field, errs)
			}
		})
	}

	// email over the cap also stays tagged with its own field
	c := validCandidate()
	c.Email = strings.Repeat("a", 250) + "@example.com"
	if errs := Validate(c); !hasError(errs, "email", RuleTooLong) {
		t.Fatalf("expected too_long on email, got %+v", errs)
	}

	// URL caps: 500 and 1000 respectively
	c = validCandidate()
	c.LinkedInProfile = "https://example.com/" + strings.Repeat("a", 500)
	if errs := Validate(c); !hasError(errs, "linkedin_profile", RuleTooLong) {
		t.Fatalf("expected too_long on linkedin_profile, got %+v", errs)
	}
	c = validCandidate()
	c.GitHubProfile = "https://example.com/" + strings.Repeat("a", 1000)
	if errs := Validate(c); !hasError(errs, "github_profile", RuleTooLong) {
		t.Fatalf("expected too_long on github_profile, got %+v", errs)
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	c := &domain.Candidate{
		Email:          "not-an-email",
		BestTimeToCall: "12:00-08:00",
		GitHubProfile:  "nope",
	}
	errs := Validate(c)

	want := []struct{ field, rule string }{
		{"first_name", RuleRequired},
		{"last_name", RuleRequired},
		{"email", RuleInvalidFormat},
		{"best_time_to_call", RuleInvalidRange},
		{"github_profile", RuleInvalidURL},
		{"comments", RuleRequired},
	}
	for _, w := range want {
		if !hasError(errs, w.field, w.rule) {
			t.Fatalf("expected %s/%s among %+v", w.field, w.rule, errs)
		}
	}
	if len(errs) != len(want) {
		t.Fatalf("expected exactly %d violations, got %d: %+v", len(want), len(errs), errs)
	}
}
