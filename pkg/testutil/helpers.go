// Package testutil provides common utility functions for testing.
package testutil

// SequenceSource is a random.Source implementation that replays a fixed
// sequence of values, cycling when exhausted. It makes calculator output
// fully reproducible in tests.
type SequenceSource struct {
	Values []float64
	next   int
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
