package domain

import (
	"math/rand/v2"
	"sort"
)

// Ordering arranges the candidate list handed to a session. Implementations
// must not mutate their input.
type Ordering interface {
	Order(ids []ProblemID) []ProblemID
}

type IdentityOrder struct{}

func (IdentityOrder) Order(ids []ProblemID) []ProblemID {
	return append([]ProblemID(nil), ids...)
}

// SortedOrder orders identifiers lexically.
type SortedOrder struct{}

func (SortedOrder) Order(ids []ProblemID) []ProblemID {
	out := append([]ProblemID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SeededShuffle is a reproducible permutation: the same seed and input give
// the same order.
type SeededShuffle struct {
	Seed uint64
}

func (s SeededShuffle) Order(ids []ProblemID) []ProblemID {
	out := SortedOrder{}.Order(ids)
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
