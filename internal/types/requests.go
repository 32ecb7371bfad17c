package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchRequest represents the request body for /match.
type MatchRequest struct {
	Query            string `json:"query" validate:"required,min=1"`
	CandidateProfile string `json:"candidate_profile"`
}

// MatchResponse represents the parsed match triple returned by /match.
type MatchResponse struct {
	Score       int    `json:"score"`
	Skills      string `json:"skills"`
	Explanation string `json:"explanation"`
}

// SkillsResponse represents the response for /skills.
type SkillsResponse struct {
	Skills string `json:"skills"`
}

// LocationResponse represents the response for /location.
// Location is JSON null when no known location matched the query.
type LocationResponse struct {
	Location *string `json:"location"`
}

// ExperienceResponse represents the response for /experience.
// The estimated year count is serialized as a string.
type ExperienceResponse struct {
	Experience string `json:"experience"`
}

// SearchRequest represents the request body for /search.
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// OutreachRequest represents the request body for /outreach.
// Field names follow the frontend's camelCase contract.
type OutreachRequest struct {
	CandidateEmail  string `json:"candidateEmail" validate:"required,email"`
	Subject         string `json:"subject" validate:"required,min=1"`
	Message         string `json:"message" validate:"required,min=1"`
	CandidateName   string `json:"candidateName" validate:"required,min=1"`
	CandidateResume string `json:"candidateResume" validate:"required,min=1"`
}

// OutreachResponse represents the response for /outreach.
type OutreachResponse struct {
	GeneratedMessage string `json:"generatedMessage"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OutreachRequest using the validator.
func (r *OutreachRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
