// Package types provides type definitions for structured data used throughout the hiring-wizard system.
package types

// Candidate is one row of the candidate dataset.
// The csv tags map the dataset's column headers, including the spaced "Open To" column.
type Candidate struct {
	Name    string `csv:"Name" json:"name"`
	Phone   string `csv:"Phone" json:"phone"`
	Country string `csv:"Country" json:"country"`
	OpenTo  string `csv:"Open To" json:"open_to"`
	Email   string `csv:"Email" json:"email"`
	Resume  string `csv:"Resume" json:"resume"`
}

// ScoredCandidate is a candidate enriched with derived match fields for API responses.
// Score and Explanation are only meaningful in the context of one recruiter query;
// listing endpoints return them zero-valued.
type ScoredCandidate struct {
	Candidate
	Score       int    `json:"score"`
	Skills      string `json:"skills"`
	Explanation string `json:"explanation"`
}
