// Package services – CandidateService
//
// This file implements CandidateService, the application-level component
// that owns the candidate upsert flow: validate the payload, resolve the
// incoming email against the cache and then the store, merge the profile
// onto the existing identity, persist, and refresh the cache.
//
// Observability: Upsert is OpenTelemetry-instrumented; spans record the
// candidate identity once it is known.
package services

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tbourn/go-candidate-hub/internal/cache"
	"github.com/tbourn/go-candidate-hub/internal/domain"
	"github.com/tbourn/go-candidate-hub/internal/repo"
	"github.com/tbourn/go-candidate-hub/internal/validation"
)

// CandidateService coordinates candidate validation, persistence, and
// caching. It is safe for concurrent use: a single process-wide mutex
// serializes the whole lookup-merge-persist-recache sequence so that two
// concurrent upserts of the same email can never both observe "not found"
// and double-insert.
//
// The lock is deliberately coarse (all emails, not per key); expected
// request volume is low and correctness beats throughput here. The store's
// unique index on email is a backstop, not the mechanism.
type CandidateService struct {
	// DB is the database handle used for all candidate operations.
	DB *gorm.DB
	// Cache holds recently upserted candidates keyed by email. It is read
	// and written only while holding mu.
	Cache *cache.CandidateCache

	mu sync.Mutex
}

// NewCandidateService constructs a CandidateService bound to the given
// database handle and cache.
func NewCandidateService(db *gorm.DB, c *cache.CandidateCache) *CandidateService {
	return &CandidateService{DB: db, Cache: c}
}

// Upsert inserts or updates the candidate identified by in.Email and
// returns the persisted record.
//
// Semantics:
//   - The payload is validated first; on any rule violation Upsert returns
//     *ValidationError carrying the full list and touches neither cache nor
//     store.
//   - If the email is known (cache hit, or store fallback on miss), the
//     incoming profile fields replace the existing record's fields wholesale
//     while ID and Email are preserved, and the row is updated.
//   - Otherwise the candidate is inserted and the store assigns its ID.
//   - The merged record is written back to the cache only after the
//     transaction commits, so the cache never holds state the store refused.
//
// Store failures abort the upsert and propagate to the caller unwrapped.
func (s *CandidateService) Upsert(ctx context.Context, in *domain.Candidate) (*domain.Candidate, error) {
	tr := otel.Tracer("services/CandidateService")
	ctx, span := tr.Start(ctx, "Upsert")
	defer span.End()

	if errs := validation.Validate(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, found, err := s.findExisting(ctx, in.Email)
	if err != nil {
		return nil, err
	}

	if found {
		// Existing identity wins; the incoming payload supplies the profile.
		in.ID = record.ID
		record.ApplyProfile(in)
	} else {
		record = in
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if found {
			return repo.UpdateCandidate(ctx, tx, record)
		}
		return repo.CreateCandidate(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("candidate.id", record.ID),
		attribute.Bool("candidate.updated", found),
	)

	in.ID = record.ID
	s.Cache.Set(record.Email, *record)
	return record, nil
}

// findExisting is the read-through lookup: try the cache, fall back to a
// non-aliasing store read. It reports whether an existing record was found;
// a store miss is not an error. Must be called with mu held.
func (s *CandidateService) findExisting(ctx context.Context, email string) (*domain.Candidate, bool, error) {
	if cached, ok := s.Cache.Get(email); ok {
		return &cached, true, nil
	}
	existing, err := repo.FindCandidateByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return existing, true, nil
}
