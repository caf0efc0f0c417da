package scheduler

import "github.com/samber/lo"

const (
	unfilledPenalty  = -5
	continuityReward = 2
)

// Score evaluates a candidate against the preference catalog:
// - A penalty of -5 for every session left unfilled
// - A reward of +2 when the previous session position is filled by the same
//   instructor on the same week day
// A filled session with no qualifying adjacency contributes 0.
func Score(candidate Candidate, preferences []Preference) int {
	score := 0
	for idx, preferenceIdx := range candidate {
		if preferenceIdx == Unfilled {
			score += unfilledPenalty
			continue
		}
		if idx == 0 || candidate[idx-1] == Unfilled {
			continue
		}

		previous, current := preferences[candidate[idx-1]], preferences[preferenceIdx]
		if current.UID == previous.UID && current.WeekDay == previous.WeekDay {
			score += continuityReward
		}
	}
	return score
}

// CountUnfilled returns the number of sessions left without an instructor.
func CountUnfilled(candidate Candidate) int {
	return lo.CountBy(candidate, func(preferenceIdx int) bool { return preferenceIdx == Unfilled })
}
