package search

import (
	"testing"

	"chattyg-be/internal/repository/contract"
)

func scored(content string, similarity float64) *contract.ScoredMessage {
	return &contract.ScoredMessage{Content: content, Similarity: similarity}
}

func TestFilterByThreshold(t *testing.T) {
	ranked := []*contract.ScoredMessage{
		scored("a", 0.92),
		scored("b", 0.60),
		scored("c", 0.31),
		scored("d", 0.10),
	}

	tests := []struct {
		name      string
		threshold float64
		want      []string
	}{
		{
			name:      "zero threshold keeps everything",
			threshold: 0.0,
			want:      []string{"a", "b", "c", "d"},
		},
		{
			name:      "default threshold drops weak matches",
			threshold: 0.25,
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "boundary similarity is kept",
			threshold: 0.31,
			want:      []string{"a", "b", "c"},
		},
		{
			name:      "high threshold keeps only the best",
			threshold: 0.90,
			want:      []string{"a"},
		},
		{
			name:      "threshold above everything yields no matches",
			threshold: 0.99,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByThreshold(ranked, tt.threshold)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d", len(got), len(tt.want))
			}
			for i, m := range got {
				if m.Content != tt.want[i] {
					t.Errorf("match %d = %q, want %q", i, m.Content, tt.want[i])
				}
			}
		})
	}
}

// Raising the threshold must never grow the result set.
func TestFilterByThresholdMonotonic(t *testing.T) {
	ranked := []*contract.ScoredMessage{
		scored("a", 0.95),
		scored("b", 0.72),
		scored("c", 0.44),
		scored("d", 0.25),
		scored("e", 0.01),
	}

	prev := len(ranked) + 1
	for _, threshold := range []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		n := len(FilterByThreshold(ranked, threshold))
		if n > prev {
			t.Fatalf("result grew from %d to %d when threshold rose to %.1f", prev, n, threshold)
		}
		prev = n
	}
}
