package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-candidate-hub/internal/domain"
)

func newTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:candrepo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrate {
		if err := AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedCandidate(t *testing.T, db *gorm.DB, email string) *domain.Candidate {
	t.Helper()
	c := &domain.Candidate{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		Comments:  "seed",
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	return c
}

func TestCreateCandidate_AssignsID(t *testing.T) {
	db := newTestDB(t, true)

	c := &domain.Candidate{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Comments:  "new",
	}
	if err := CreateCandidate(context.Background(), db, c); err != nil {
		t.Fatalf("CreateCandidate: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("expected store-assigned ID, got zero")
	}

	// round-trip
	var got domain.Candidate
	if err := db.First(&got, "id = ?", c.ID).Error; err != nil {
		t.Fatalf("load created candidate: %v", err)
	}
	if got.Email != "jane@example.com" || got.FirstName != "Jane" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestCreateCandidate_Error_NoTable(t *testing.T) {
	db := newTestDB(t, false)
	c := &domain.Candidate{Email: "x@example.com", FirstName: "A", LastName: "B", Comments: "c"}
	if err := CreateCandidate(context.Background(), db, c); err == nil {
		t.Fatalf("expected error creating without table")
	}
}

func TestCreateCandidate_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t, true)
	seedCandidate(t, db, "jane@example.com")

	dup := &domain.Candidate{Email: "jane@example.com", FirstName: "J", LastName: "D", Comments: "dup"}
	if err := CreateCandidate(context.Background(), db, dup); err == nil {
		t.Fatalf("expected unique index violation on duplicate email")
	}
}

func TestFindCandidateByEmail_Found(t *testing.T) {
	db := newTestDB(t, true)
	seeded := seedCandidate(t, db, "jane@example.com")

	got, err := FindCandidateByEmail(context.Background(), db, "jane@example.com")
	if err != nil {
		t.Fatalf("FindCandidateByEmail: %v", err)
	}
	if got.ID != seeded.ID || got.Email != seeded.Email {
		t.Fatalf("mismatch: got %+v want %+v", got, seeded)
	}
}

func TestFindCandidateByEmail_NotFound(t *testing.T) {
	db := newTestDB(t, true)

	_, err := FindCandidateByEmail(context.Background(), db, "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindCandidateByEmail_ExactMatchOnly(t *testing.T) {
	db := newTestDB(t, true)
	seedCandidate(t, db, "jane@example.com")

	// The natural key is exact-match; a different address is a miss.
	if _, err := FindCandidateByEmail(context.Background(), db, "jane+alt@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different address, got %v", err)
	}
}

func TestUpdateCandidate_FullRowReplace(t *testing.T) {
	db := newTestDB(t, true)
	seeded := seedCandidate(t, db, "jane@example.com")

	seeded.FirstName = "Janet"
	seeded.PhoneNumber = "+1 555 0100"
	seeded.Comments = "updated"
	if err := UpdateCandidate(context.Background(), db, seeded); err != nil {
		t.Fatalf("UpdateCandidate: %v", err)
	}

	var got domain.Candidate
	if err := db.First(&got, "id = ?", seeded.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.FirstName != "Janet" || got.PhoneNumber != "+1 555 0100" || got.Comments != "updated" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Email != "jane@example.com" {
		t.Fatalf("email must not change on update: %+v", got)
	}

	var count int64
	db.Model(&domain.Candidate{}).Count(&count)
	if count != 1 {
		t.Fatalf("update created extra rows: %d", count)
	}
}
