// Package store loads the candidate dataset from the flat CSV file.
package store

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/marisa/hiring-wizard/internal/types"
)

// Store reads candidate rows from a CSV file with the columns
// Name, Phone, Country, Open To, Email, Resume. Every Load re-reads the
// file; nothing is cached and there is no write path.
type Store struct {
	path   string
	logger *zap.Logger
}

// New creates a store reading from the given CSV path.
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Load returns all candidates from the data file. On any open or parse
// failure it logs the cause and falls back to the built-in sample set, so
// the API keeps serving data.
func (s *Store) Load() []types.Candidate {
	candidates, err := s.read()
	if err != nil {
		s.logger.Warn("falling back to sample candidates",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return SampleCandidates()
	}
	return candidates
}

func (s *Store) read() ([]types.Candidate, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening candidate file: %w", err)
	}
	defer f.Close()

	var candidates []types.Candidate
	if err := gocsv.UnmarshalFile(f, &candidates); err != nil {
		return nil, fmt.Errorf("parsing candidate file: %w", err)
	}
	return candidates, nil
}

// Countries returns the unique, non-empty country names across candidates,
// preserving first-occurrence order. This order is the documented tie-break
// for fuzzy location matching.
func Countries(candidates []types.Candidate) []string {
	seen := make(map[string]bool)
	countries := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Country == "" || seen[c.Country] {
			continue
		}
		seen[c.Country] = true
		countries = append(countries, c.Country)
	}
	return countries
}
