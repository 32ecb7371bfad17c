package store

import "github.com/marisa/hiring-wizard/internal/types"

// Built-in fallback dataset served when the CSV cannot be read.
var sampleCandidates = []types.Candidate{
	{
		Name:    "John Smith",
		Phone:   "+1-555-0123",
		Country: "United States",
		OpenTo:  "Full-time, Remote",
		Email:   "john.smith@email.com",
		Resume:  "Experienced software engineer with 5 years of experience in Python and React. Strong background in full-stack development and cloud technologies.",
	},
	{
		Name:    "Maria Garcia",
		Phone:   "+44-20-1234-5678",
		Country: "United Kingdom",
		OpenTo:  "Full-time, Hybrid",
		Email:   "maria.garcia@email.com",
		Resume:  "Senior developer with expertise in Java and Spring Boot. 8 years of experience in enterprise applications and microservices architecture.",
	},
	{
		Name:    "Alex Chen",
		Phone:   "+86-10-1234-5678",
		Country: "China",
		OpenTo:  "Full-time, On-site",
		Email:   "alex.chen@email.com",
		Resume:  "Full-stack developer with 3 years of experience in JavaScript, Node.js, and React. Passionate about building scalable web applications.",
	},
}

// SampleCandidates returns a copy of the built-in sample dataset.
func SampleCandidates() []types.Candidate {
	out := make([]types.Candidate, len(sampleCandidates))
	copy(out, sampleCandidates)
	return out
}
