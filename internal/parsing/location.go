package parsing

import "strings"

// Responses treated as "no location specified", compared after lowercasing.
var noLocationSentinels = map[string]bool{
	"null":                  true,
	"none":                  true,
	"no location specified": true,
}

// MatchLocation resolves a model response against the known location list.
// This is a best-effort heuristic, not exact equality: the response is
// lowercased and each known location is tested for case-insensitive substring
// containment. The first match in list order wins and is returned in its
// original casing; ok is false when the response is a sentinel or nothing
// matched.
func MatchLocation(response string, known []string) (location string, ok bool) {
	response = strings.ToLower(strings.TrimSpace(response))

	if noLocationSentinels[response] {
		return "", false
	}

	for _, candidate := range known {
		if candidate == "" {
			continue
		}
		if strings.Contains(response, strings.ToLower(candidate)) {
			return candidate, true
		}
	}

	return "", false
}
