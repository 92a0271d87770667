package contextbuilder

import (
	"testing"

	"chattyg-be/internal/repository/contract"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name    string
		matches []*contract.ScoredMessage
		want    string
	}{
		{
			name:    "no matches",
			matches: nil,
			want:    "",
		},
		{
			name: "single match",
			matches: []*contract.ScoredMessage{
				{Content: "the deploy is on friday", Similarity: 0.91},
			},
			want: "the deploy is on friday",
		},
		{
			name: "rank order preserved",
			matches: []*contract.ScoredMessage{
				{Content: "first", Similarity: 0.91},
				{Content: "second", Similarity: 0.77},
				{Content: "third", Similarity: 0.50},
			},
			want: "first\n\nsecond\n\nthird",
		},
		{
			name: "empty content skipped",
			matches: []*contract.ScoredMessage{
				{Content: "first", Similarity: 0.91},
				{Content: "", Similarity: 0.80},
				{Content: "third", Similarity: 0.50},
			},
			want: "first\n\nthird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.matches)
			if got != tt.want {
				t.Errorf("Assemble() = %q, want %q", got, tt.want)
			}
		})
	}
}
