package scheduler

import "math/rand"

// Unfilled marks a session position no preference entry could cover.
const Unfilled = -1

// Candidate is one full proposed assignment: one entry per session (by
// position), holding either the index of the chosen preference entry or
// Unfilled.
type Candidate []int

// Generator produces randomized assignment candidates.
type Generator interface {
	// Generate builds one candidate: a single shuffled ordering of preference
	// indices is scanned greedily for every session in catalog order, and an
	// entry consumed by an earlier session is not reused within the call.
	Generate(sessions []Session, preferences []Preference) Candidate
}

func NewGenerator(random *rand.Rand) Generator {
	return &randomizedGenerator{random: random}
}

type randomizedGenerator struct {
	random *rand.Rand
}

func (generator *randomizedGenerator) Generate(sessions []Session, preferences []Preference) Candidate {
	//** Shuffle the preference indices for randomness (one shared ordering per call)
	randomizedIndices := make([]int, len(preferences))
	for i := range randomizedIndices {
		randomizedIndices[i] = i
	}
	generator.random.Shuffle(len(randomizedIndices), func(i, j int) {
		randomizedIndices[i], randomizedIndices[j] = randomizedIndices[j], randomizedIndices[i]
	})

	//** Assign the first eligible preference entry to each session
	candidate := make(Candidate, 0, len(sessions))
	consumed := make(map[int]bool, len(preferences))

	for _, session := range sessions {
		assigned := Unfilled
		for _, index := range randomizedIndices {
			if consumed[index] {
				continue
			}
			if preferences[index].Slot == session.Slot {
				assigned = index
				consumed[index] = true
				break
			}
		}
		candidate = append(candidate, assigned)
	}

	return candidate
}
