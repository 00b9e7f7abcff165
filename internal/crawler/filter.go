package crawler

import (
	"strings"

	"golang.org/x/text/cases"
)

// Accepts reports whether the job passes the configured keyword rules.
// Matching is case-folded substring search over the concatenation of all
// textual fields. At least one contains keyword must match when the list
// is non-empty (OR semantics: requiring every keyword to co-occur is too
// strict for free-text descriptions); any nonContains match rejects.
// Empty lists impose no constraint.
func Accepts(job JobDetails, contains, nonContains []string) bool {
	content := fold(strings.Join([]string{
		job.JobID, job.Title, job.Company, job.Description, job.Location, job.URL,
	}, " "))

	if len(contains) > 0 {
		matched := false
		for _, keyword := range contains {
			if keyword == "" {
				continue
			}
			if strings.Contains(content, fold(keyword)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, keyword := range nonContains {
		if keyword == "" {
			continue
		}
		if strings.Contains(content, fold(keyword)) {
			return false
		}
	}

	return true
}

// fold applies Unicode case folding, which is stricter than ToLower for
// non-ASCII text.
func fold(s string) string {
	return cases.Fold().String(s)
}
