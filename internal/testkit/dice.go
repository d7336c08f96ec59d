// Package testkit holds deterministic helpers shared by package tests.
package testkit

// Script is a dice source that replays queued rolls and then always returns
// the maximum roll. Queued values must be valid for the n they are drawn with.
type Script struct {
	Rolls []int
	// Draws records the n of every Intn call, in order.
	Draws []int
}

// NewScript returns a source that replays rolls before falling back to max.
func NewScript(rolls ...int) *Script {
	return &Script{Rolls: rolls}
}

// Intn returns the next queued roll, or n-1 once the queue is empty.
func (s *Script) Intn(n int) int {
	s.Draws = append(s.Draws, n)
	if len(s.Rolls) == 0 {
		return n - 1
	}
	v := s.Rolls[0]
	s.Rolls = s.Rolls[1:]
	if v < 0 || v >= n {
		panic("testkit: scripted roll out of range")
	}
	return v
}

// Min is a dice source that always returns the minimum roll.
type Min struct{}

// Intn always returns 0.
func (Min) Intn(int) int { return 0 }
