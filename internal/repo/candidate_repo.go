// Package repo implements the persistence layer for the candidate hub,
// backed by GORM. This file provides repository functions for the Candidate
// model.
//
// All functions accept a *gorm.DB handle, making them safe for use within
// transactions or connection-scoped operations. They follow the "thin
// repository" approach: no business logic, only CRUD persistence.
//
// Error semantics:
//   - When a candidate is not found, FindCandidateByEmail returns
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-candidate-hub/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for convenience and consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// FindCandidateByEmail fetches a single candidate by its natural key. The
// returned struct is freshly scanned and aliases nothing the session tracks,
// so callers may mutate it freely before handing it back to an update.
// Returns ErrNotFound if no candidate has that email.
func FindCandidateByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Candidate, error) {
	var c domain.Candidate
	err := db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCandidate inserts a new candidate row. The store assigns the
// autoincrement ID, which GORM writes back onto c.
func CreateCandidate(ctx context.Context, db *gorm.DB, c *domain.Candidate) error {
	return db.WithContext(ctx).Create(c).Error
}

// UpdateCandidate performs an identity-keyed full-row write of c. The row
// must already exist; Save updates every column by primary key.
func UpdateCandidate(ctx context.Context, db *gorm.DB, c *domain.Candidate) error {
	return db.WithContext(ctx).Save(c).Error
}
