package parsing

import (
	"strconv"
	"strings"
)

// ParseExperienceYears parses the estimator's response as a bare integer.
// Any response that is not a plain number, including phrasing like
// "about 7 years", yields the zero default; no partial digit extraction is
// attempted.
func ParseExperienceYears(raw string) int {
	years, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return years
}
