// Candidate HTTP handlers.
//
// This file exposes the REST endpoint for candidate records:
//   - POST /candidates  (upsert by email)
//
// Handlers are transport-thin: they bind input, delegate to the application
// service, and translate domain/service errors into HTTP results. The upsert
// either echoes back the persisted candidate or returns the complete list of
// field violations in one response.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-candidate-hub/internal/domain"
	"github.com/tbourn/go-candidate-hub/internal/services"
)

// CandidateService defines the upsert operation consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type CandidateService interface {
	// Upsert inserts or updates the candidate identified by its email and
	// returns the persisted record.
	Upsert(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
}

// Handlers groups the HTTP endpoints of the candidate API. It depends on an
// abstract service interface to keep transport concerns separate from
// business logic.
type Handlers struct {
	candSvc CandidateService
}

// New constructs a Handlers instance bound to the given service.
func New(candSvc CandidateService) *Handlers {
	return &Handlers{candSvc: candSvc}
}

// UpsertCandidateRequest is the JSON payload for creating or updating a
// candidate. The email is the natural key: submitting the same email again
// replaces every profile field of the existing record.
type UpsertCandidateRequest struct {
	Email           string `json:"email" example:"jane.doe@example.com"`
	FirstName       string `json:"first_name" example:"Jane"`
	LastName        string `json:"last_name" example:"Doe"`
	PhoneNumber     string `json:"phone_number,omitempty" example:"+44 20 7946 0958"`
	BestTimeToCall  string `json:"best_time_to_call,omitempty" example:"09:00-17:30"`
	LinkedInProfile string `json:"linkedin_profile,omitempty" example:"https://www.linkedin.com/in/janedoe"`
	GitHubProfile   string `json:"github_profile,omitempty" example:"https://github.com/janedoe"`
	Comments        string `json:"comments" example:"Strong Go background, available from May"`
}

// toDomain maps the request payload onto a domain value. The ID is never
// taken from the caller.
func (r *UpsertCandidateRequest) toDomain() *domain.Candidate {
	return &domain.Candidate{
		Email:           r.Email,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PhoneNumber:     r.PhoneNumber,
		BestTimeToCall:  r.BestTimeToCall,
		LinkedInProfile: r.LinkedInProfile,
		GitHubProfile:   r.GitHubProfile,
		Comments:        r.Comments,
	}
}

// UpsertCandidate godoc
// @ID          upsertCandidate
// @Summary     Create or update a candidate
// @Description Upserts a candidate keyed by email: inserts a new record or fully replaces the profile fields of the existing one. Validation failures return the complete list of field violations.
// @Tags        Candidates
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpsertCandidateRequest  true  "Candidate payload"
//
// @Success     200  {object} domain.Candidate "Persisted candidate"
// @Failure     400  {object} handlers.ErrorResponse "Malformed JSON or validation failure"
// @Failure     500  {object} handlers.ErrorResponse "Persistence failure"
// @Router      /candidates [post]
func (h *Handlers) UpsertCandidate(c *gin.Context) {
	var req UpsertCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	result, err := h.candSvc.Upsert(c.Request.Context(), req.toDomain())
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			failFields(c, http.StatusBadRequest, ErrCodeValidationFailed, ve.Error(), ve.Fields)
			return
		}
		// Store failures are fatal for the request; no internals leak out.
		fail(c, http.StatusInternalServerError, ErrCodeUpsertFailed, "could not save candidate")
		return
	}

	ok(c, http.StatusOK, result)
}
