package contextbuilder

import (
	"strings"

	"chattyg-be/internal/repository/contract"
)

// Assemble flattens ranked matches into a single context block for the
// model prompt. Messages stay in rank order and are separated by a blank
// line. No matches produces an empty context, never an error.
func Assemble(matches []*contract.ScoredMessage) string {
	if len(matches) == 0 {
		return ""
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Content == "" {
			continue
		}
		parts = append(parts, m.Content)
	}

	return strings.Join(parts, "\n\n")
}
