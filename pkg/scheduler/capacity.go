package scheduler

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// MaxAssignable returns the size of the largest matching between sessions and
// preference entries under exact slot equality: the ceiling on filled sessions
// any candidate can reach, regardless of how many epochs the search runs.
func MaxAssignable(sessions []Session, preferences []Preference) (int, error) {
	// Build neighbors predicate based on slot equality
	neighbors := func(sessionAny any, preferenceAny any) (bool, error) {
		session := sessionAny.(Session)
		preference := preferenceAny.(Preference)

		return session.Slot == preference.Slot, nil
	}

	// Transform sessions and preferences to slices of any
	sessionsAny, preferencesAny := lo.Map(sessions, func(session Session, _ int) any { return session }), lo.Map(preferences, func(preference Preference, _ int) any { return preference })

	graph, err := bipartitegraph.NewBipartiteGraph(sessionsAny, preferencesAny, neighbors)
	if err != nil {
		return 0, err
	}

	return len(graph.LargestMatching()), nil
}
