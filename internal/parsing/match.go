// Package parsing turns free-text LLM responses into typed values with
// documented fallback defaults. Parsers here never fail on malformed content;
// missing or unparsable directives fall back to the default table.
package parsing

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultExplanation is the sentinel used when no Explanation directive is present.
const DefaultExplanation = "Unable to extract information"

// MatchResult is the structured triple extracted from a match analysis response.
type MatchResult struct {
	Score       int
	Skills      string
	Explanation string
}

// defaultMatchResult is the explicit default table for the directive grammar.
func defaultMatchResult() MatchResult {
	return MatchResult{Score: 0, Skills: "", Explanation: DefaultExplanation}
}

// directive binds a line prefix to the setter applied to the result in progress.
type directive struct {
	prefix string
	apply  func(r *MatchResult, value string)
}

// matchDirectives is the ordered grammar for match analysis responses.
// Prefix matching is case-sensitive and exact, one directive per line; a later
// occurrence of the same directive overwrites the earlier assignment.
var matchDirectives = []directive{
	{prefix: "Score:", apply: func(r *MatchResult, value string) {
		score, err := parseScore(value)
		if err != nil {
			r.Score = 0
			return
		}
		r.Score = score
	}},
	{prefix: "Skills:", apply: func(r *MatchResult, value string) {
		r.Skills = value
	}},
	{prefix: "Explanation:", apply: func(r *MatchResult, value string) {
		r.Explanation = value
	}},
}

// ParseMatchResult applies the directive grammar to the raw response line by
// line. It never returns an error: a malformed directive resets its field to
// the default and the remaining lines are still processed.
func ParseMatchResult(raw string) MatchResult {
	result := defaultMatchResult()

	for _, line := range strings.Split(raw, "\n") {
		for _, d := range matchDirectives {
			if !strings.HasPrefix(line, d.prefix) {
				continue
			}
			value := strings.TrimSpace(strings.TrimPrefix(line, d.prefix))
			d.apply(&result, value)
			break
		}
	}

	return result
}

// parseScore parses a score value, averaging a "low-high" range with floor
// division. A range takes its first two parts even when more hyphens follow.
func parseScore(text string) (int, error) {
	if strings.Contains(text, "-") {
		parts := strings.Split(text, "-")
		low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, &ParseError{Message: fmt.Sprintf("malformed score range %q", text), Cause: err}
		}
		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, &ParseError{Message: fmt.Sprintf("malformed score range %q", text), Cause: err}
		}
		return (low + high) / 2, nil
	}

	score, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Message: fmt.Sprintf("malformed score %q", text), Cause: err}
	}
	return score, nil
}
