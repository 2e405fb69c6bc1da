// Package scoring ranks replacement sentences by how much of their
// vocabulary the learner already knows.
package scoring

import (
	"math"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

// Alternative is a candidate with its content words already extracted.
type Alternative struct {
	Candidate domain.Candidate
	Words     domain.WordSet
}

// Score computes overlap(words, mature) minus the relative length difference
// to the original sentence. ok is false for alternatives with no content
// words, which are never scored. An original with no words contributes no
// length penalty.
func Score(words, original, mature domain.WordSet) (score float64, ok bool) {
	if len(words) == 0 {
		return 0, false
	}
	overlap := float64(words.IntersectionSize(mature)) / float64(len(words))

	var penalty float64
	if len(original) > 0 {
		penalty = math.Abs(float64(len(words)-len(original))) / float64(len(original))
	}
	return overlap - penalty, true
}

// SelectBest returns the highest scoring alternative. Ties keep the earliest
// alternative. ok is false when no alternative can be scored.
func SelectBest(original domain.WordSet, alternatives []Alternative, mature domain.WordSet) (best domain.ScoredCandidate, ok bool) {
	for _, alt := range alternatives {
		score, scored := Score(alt.Words, original, mature)
		if !scored {
			continue
		}
		if !ok || score > best.Score {
			best = domain.ScoredCandidate{Candidate: alt.Candidate, Score: score}
			ok = true
		}
	}
	return best, ok
}
