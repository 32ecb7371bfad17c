// Package copilot implements the hiring copilot workflows: candidate match
// scoring, profile extraction, candidate search, and outreach drafting.
package copilot

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/cleaner"
	"github.com/marisa/hiring-wizard/internal/llm"
	"github.com/marisa/hiring-wizard/internal/logger"
	"github.com/marisa/hiring-wizard/internal/parsing"
	"github.com/marisa/hiring-wizard/internal/prompts"
	"github.com/marisa/hiring-wizard/internal/store"
	"github.com/marisa/hiring-wizard/internal/types"
)

// Sampling temperatures per workflow. Extraction runs nearly deterministic,
// match analysis allows slight variation, and outreach drafting needs room
// for a natural-sounding email.
const (
	matchTemperature    = 0.3
	extractTemperature  = 0.1
	outreachTemperature = 0.7

	// outreachMaxTokens caps the length of a drafted email.
	outreachMaxTokens = 800
)

// Substituted into the outreach prompt when a sub-call fails, so a partial
// extraction never aborts the draft.
const (
	skillsFailedNote     = "Skills extraction failed"
	experienceFailedNote = "Experience extraction failed"
)

// Service runs the copilot workflows against an injected LLM gateway and
// candidate store.
type Service struct {
	client    llm.Client
	store     *store.Store
	logger    *zap.Logger
	maxLogLen int
}

// New creates a copilot service. maxLogLen bounds how much free text is
// echoed into debug logs.
func New(client llm.Client, st *store.Store, log *zap.Logger, maxLogLen int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:    client,
		store:     st,
		logger:    log,
		maxLogLen: maxLogLen,
	}
}

// Match scores how well a candidate profile fits a recruiter query on a
// 0-100 scale. A nil error means the model answered; malformed answers
// surface as the parser's documented defaults, not as errors. A non-nil
// error is a gateway failure and the result is unusable.
func (s *Service) Match(ctx context.Context, query, profile string) (parsing.MatchResult, error) {
	prompt := prompts.Format(prompts.MustGet("match"), map[string]string{
		"Query":   query,
		"Profile": cleaner.Clean(profile),
	})

	raw, err := s.client.Complete(ctx, llm.Request{
		System:      prompts.MustGet("match-system"),
		Prompt:      prompt,
		Tier:        llm.TierAdvanced,
		Temperature: matchTemperature,
	})
	if err != nil {
		return parsing.MatchResult{}, err
	}

	result := parsing.ParseMatchResult(llm.CleanResponseText(raw))
	s.logger.Debug("match scored",
		zap.String("query", logger.Truncate(query, s.maxLogLen)),
		zap.Int("score", result.Score),
		zap.String("skills", logger.Truncate(result.Skills, s.maxLogLen)),
	)
	return result, nil
}

// ExtractSkills pulls a comma-separated skill list out of résumé text. The
// model's answer is used verbatim; no validation of the list shape.
func (s *Service) ExtractSkills(ctx context.Context, resume string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("extract-skills"), map[string]string{
		"Resume": cleaner.Clean(resume),
	})

	raw, err := s.client.Complete(ctx, llm.Request{
		System:      prompts.MustGet("skills-system"),
		Prompt:      prompt,
		Tier:        llm.TierLite,
		Temperature: extractTemperature,
	})
	if err != nil {
		return "", err
	}

	skills := llm.CleanResponseText(raw)
	s.logger.Debug("skills extracted", zap.String("skills", logger.Truncate(skills, s.maxLogLen)))
	return skills, nil
}

// ExtractLocation asks the model which of the known candidate countries a
// recruiter query refers to. ok is false when the query names no location
// or the model's answer matches none of the known countries.
func (s *Service) ExtractLocation(ctx context.Context, query string) (location string, ok bool, err error) {
	countries := store.Countries(s.store.Load())

	prompt := prompts.Format(prompts.MustGet("extract-location"), map[string]string{
		"Query":     query,
		"Locations": strings.Join(countries, ", "),
	})

	raw, err := s.client.Complete(ctx, llm.Request{
		System:      prompts.MustGet("location-system"),
		Prompt:      prompt,
		Tier:        llm.TierLite,
		Temperature: extractTemperature,
	})
	if err != nil {
		return "", false, err
	}

	location, ok = parsing.MatchLocation(llm.CleanResponseText(raw), countries)
	s.logger.Debug("location extracted",
		zap.String("query", logger.Truncate(query, s.maxLogLen)),
		zap.String("location", location),
		zap.Bool("matched", ok),
	)
	return location, ok, nil
}

// EstimateExperience estimates total years of professional experience from
// résumé text. Non-numeric answers come back as 0.
func (s *Service) EstimateExperience(ctx context.Context, resume string) (int, error) {
	prompt := prompts.Format(prompts.MustGet("estimate-experience"), map[string]string{
		"Resume": cleaner.Clean(resume),
	})

	raw, err := s.client.Complete(ctx, llm.Request{
		System:      prompts.MustGet("experience-system"),
		Prompt:      prompt,
		Tier:        llm.TierLite,
		Temperature: extractTemperature,
	})
	if err != nil {
		return 0, err
	}

	years := parsing.ParseExperienceYears(llm.CleanResponseText(raw))
	s.logger.Debug("experience estimated", zap.Int("years", years))
	return years, nil
}

// Outreach drafts a personalized recruiting email for a candidate. Skill
// and experience extraction failures are noted inline in the prompt instead
// of aborting; only a failure of the final drafting call is returned.
func (s *Service) Outreach(ctx context.Context, req types.OutreachRequest) (string, error) {
	s.logger.Info("drafting outreach email", zap.String("candidate", req.CandidateName))

	skills, err := s.ExtractSkills(ctx, req.CandidateResume)
	if err != nil {
		s.logger.Warn("outreach skills extraction failed", zap.Error(err))
		skills = skillsFailedNote
	}

	experience := experienceFailedNote
	if years, expErr := s.EstimateExperience(ctx, req.CandidateResume); expErr == nil {
		experience = strconv.Itoa(years)
	} else {
		s.logger.Warn("outreach experience extraction failed", zap.Error(expErr))
	}

	prompt := prompts.Format(prompts.MustGet("generate-outreach"), map[string]string{
		"Name":       req.CandidateName,
		"Skills":     skills,
		"Experience": experience,
		"Resume":     cleaner.Clean(req.CandidateResume),
		"Message":    req.Message,
	})

	raw, err := s.client.Complete(ctx, llm.Request{
		System:      prompts.MustGet("outreach-system"),
		Prompt:      prompt,
		Tier:        llm.TierStandard,
		Temperature: outreachTemperature,
		MaxTokens:   outreachMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return llm.CleanResponseText(raw), nil
}

// Candidates returns every stored candidate with skills extracted from
// their résumé. Score and explanation stay at their zero values until a
// match request computes them; a failed extraction leaves skills empty.
func (s *Service) Candidates(ctx context.Context) []types.ScoredCandidate {
	candidates := s.store.Load()

	out := make([]types.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		skills, err := s.ExtractSkills(ctx, c.Resume)
		if err != nil {
			s.logger.Warn("candidate skills extraction failed",
				zap.String("candidate", c.Name),
				zap.Error(err),
			)
			skills = ""
		}
		out = append(out, types.ScoredCandidate{Candidate: c, Skills: skills})
	}
	return out
}

// Search finds and ranks candidates for a recruiter query. When the query
// names a known country, only candidates from that country are scored; a
// failed location extraction falls back to scoring everyone. Results are
// sorted by score descending, ties keeping dataset order.
func (s *Service) Search(ctx context.Context, query string) []types.ScoredCandidate {
	candidates := s.store.Load()

	location, ok, err := s.ExtractLocation(ctx, query)
	if err != nil {
		s.logger.Warn("location filter skipped", zap.Error(err))
		ok = false
	}
	if ok {
		filtered := make([]types.Candidate, 0, len(candidates))
		for _, c := range candidates {
			if c.Country == location {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		result, err := s.Match(ctx, query, c.Resume)
		if err != nil {
			s.logger.Warn("candidate scoring failed",
				zap.String("candidate", c.Name),
				zap.Error(err),
			)
			result = parsing.MatchResult{Explanation: err.Error()}
		}
		scored = append(scored, types.ScoredCandidate{
			Candidate:   c,
			Score:       result.Score,
			Skills:      result.Skills,
			Explanation: result.Explanation,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
