// Package observability provides formatted output utilities for the interactive console.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/marisa/hiring-wizard/internal/parsing"
	"github.com/marisa/hiring-wizard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of candidates to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the console
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match analysis.
func (p *Printer) PrintMatchResult(result parsing.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	if result.Skills != "" {
		skills := result.Skills
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	sb.WriteString("\n")
	sb.WriteString(result.Explanation)

	p.printBox("MATCH RESULT", sb.String())
}

// PrintCandidates outputs ranked candidates with scores and skills.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCandidates(candidates []types.ScoredCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CANDIDATES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, c.Name, c.Country))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", c.Score))
		if c.Skills != "" {
			skills := c.Skills
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLocation outputs the extracted location, or a marker when the query
// names none.
func (p *Printer) PrintLocation(location string, ok bool) {
	if !ok {
		p.printBox("EXTRACTED LOCATION", "No location specified")
		return
	}

	p.printBox("EXTRACTED LOCATION", fmt.Sprintf("Location: %s", location))
}

// PrintOutreach outputs the drafted outreach email.
func (p *Printer) PrintOutreach(message string) {
	if message == "" {
		return
	}

	p.printBox("OUTREACH EMAIL", message)
}
