// Package domain defines the persistence model for job candidates. The type
// is mapped with GORM and forms the core data layer of the candidate hub.
package domain

import "time"

// Candidate represents a job candidate identified internally by an
// autoincrement ID and externally by a unique email address. The email is
// the natural key used by the upsert flow; the ID is assigned by the store
// on first insert and never set by callers.
//
// Fields:
//   - ID: autoincrement primary key, immutable once assigned.
//   - Email: unique natural key (exact-match, case-sensitive).
//   - FirstName / LastName / Comments: required free-text fields.
//   - PhoneNumber: optional, format not validated.
//   - BestTimeToCall: optional "HH:mm-HH:mm" interval.
//   - LinkedInProfile / GitHubProfile: optional absolute URLs.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Candidate struct {
	ID              int64     `json:"id"                gorm:"primaryKey;autoIncrement"`
	Email           string    `json:"email"             gorm:"type:varchar(255);not null;uniqueIndex:ux_candidates_email"`
	FirstName       string    `json:"first_name"        gorm:"type:varchar(255);not null"`
	LastName        string    `json:"last_name"         gorm:"type:varchar(255);not null"`
	PhoneNumber     string    `json:"phone_number,omitempty"      gorm:"type:varchar(255)"`
	BestTimeToCall  string    `json:"best_time_to_call,omitempty" gorm:"type:varchar(11)"`
	LinkedInProfile string    `json:"linkedin_profile,omitempty"  gorm:"type:varchar(500)"`
	GitHubProfile   string    `json:"github_profile,omitempty"    gorm:"type:varchar(1000)"`
	Comments        string    `json:"comments"          gorm:"type:varchar(2000);not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the database table name for Candidate.
func (Candidate) TableName() string { return "candidates" }

// ApplyProfile copies every mutable field of src onto c. ID and Email are
// left untouched: an upsert is a full replace of the profile, never of the
// identity or the natural key.
func (c *Candidate) ApplyProfile(src *Candidate) {
	c.FirstName = src.FirstName
	c.LastName = src.LastName
	c.PhoneNumber = src.PhoneNumber
	c.BestTimeToCall = src.BestTimeToCall
	c.LinkedInProfile = src.LinkedInProfile
	c.GitHubProfile = src.GitHubProfile
	c.Comments = src.Comments
}
