package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/types"
)

// handleMatch scores a candidate profile against a recruiter query
//
//	@Summary		Score candidate match
//	@Description	Score how well a candidate profile fits a recruiter query on a 0-100 scale
//	@Tags			matching
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.MatchRequest	true	"Recruiter query and candidate profile"
//	@Success		200		{object}	types.MatchResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/match [post]
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.copilot.Match(r.Context(), req.Query, req.CandidateProfile)
	if err != nil {
		// An unreachable model still yields a well-formed response; the
		// failure is reported through the explanation text.
		s.logger.Warn("match degraded to defaults", zap.Error(err))
		s.jsonResponse(w, http.StatusOK, types.MatchResponse{Explanation: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, types.MatchResponse{
		Score:       result.Score,
		Skills:      result.Skills,
		Explanation: result.Explanation,
	})
}

// handleSkills extracts skills from résumé text
//
//	@Summary		Extract skills
//	@Description	Extract a comma-separated skill list from résumé text
//	@Tags			extraction
//	@Produce		json
//	@Param			resume	query		string	true	"Résumé text to extract skills from"
//	@Success		200		{object}	types.SkillsResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/skills [get]
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	resume := r.URL.Query().Get("resume")
	if resume == "" {
		s.respondError(w, &ErrValidation{Field: "resume", Message: "query parameter is required"})
		return
	}

	skills, err := s.copilot.ExtractSkills(r.Context(), resume)
	if err != nil {
		s.logger.Warn("skills extraction degraded to empty", zap.Error(err))
		skills = ""
	}

	s.jsonResponse(w, http.StatusOK, types.SkillsResponse{Skills: skills})
}

// handleCandidates lists all stored candidates with extracted skills
//
//	@Summary		List candidates
//	@Description	List every stored candidate with skills extracted from their résumé
//	@Tags			candidates
//	@Produce		json
//	@Success		200	{array}	types.ScoredCandidate
//	@Router			/candidates [get]
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.copilot.Candidates(r.Context()))
}

// handleLocation extracts a known location from a recruiter query
//
//	@Summary		Extract location
//	@Description	Extract the candidate country a recruiter query refers to, or null when none is named
//	@Tags			extraction
//	@Produce		json
//	@Param			query	query		string	true	"Recruiter query to extract a location from"
//	@Success		200		{object}	types.LocationResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/location [get]
func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.respondError(w, &ErrValidation{Field: "query", Message: "query parameter is required"})
		return
	}

	location, ok, err := s.copilot.ExtractLocation(r.Context(), query)
	if err != nil {
		s.logger.Warn("location extraction degraded to null", zap.Error(err))
		ok = false
	}

	resp := types.LocationResponse{}
	if ok {
		resp.Location = &location
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleExperience estimates years of experience from résumé text
//
//	@Summary		Estimate experience
//	@Description	Estimate total years of professional experience from résumé text
//	@Tags			extraction
//	@Produce		json
//	@Param			resume	query		string	true	"Résumé text to analyze"
//	@Success		200		{object}	types.ExperienceResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/experience [get]
func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	resume := r.URL.Query().Get("resume")
	if resume == "" {
		s.respondError(w, &ErrValidation{Field: "resume", Message: "query parameter is required"})
		return
	}

	years, err := s.copilot.EstimateExperience(r.Context(), resume)
	if err != nil {
		s.logger.Warn("experience estimation degraded to zero", zap.Error(err))
		years = 0
	}

	s.jsonResponse(w, http.StatusOK, types.ExperienceResponse{Experience: strconv.Itoa(years)})
}

// handleSearch finds and ranks candidates for a recruiter query
//
//	@Summary		Search candidates
//	@Description	Find candidates matching a recruiter query, filtered by extracted location and ranked by match score
//	@Tags			candidates
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.SearchRequest	true	"Recruiter query"
//	@Success		200		{array}		types.ScoredCandidate
//	@Failure		400		{object}	map[string]string
//	@Router			/search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req types.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.copilot.Search(r.Context(), req.Query))
}

// handleOutreach drafts a personalized outreach email
//
//	@Summary		Draft outreach email
//	@Description	Draft a personalized recruiting email for a candidate from their résumé and the recruiter's message
//	@Tags			outreach
//	@Accept			json
//	@Produce		json
//	@Param			request	body		types.OutreachRequest	true	"Candidate details and recruiter message"
//	@Success		200		{object}	types.OutreachResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/outreach [post]
func (s *Server) handleOutreach(w http.ResponseWriter, r *http.Request) {
	var req types.OutreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, err)
		return
	}

	message, err := s.copilot.Outreach(r.Context(), req)
	if err != nil {
		s.logger.Error("outreach generation failed", zap.Error(err))
		s.respondError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.OutreachResponse{GeneratedMessage: message})
}
