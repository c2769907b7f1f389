package board

// Sequencer tags fetches with increasing numbers so results of superseded
// fetches can be dropped. It is not safe for concurrent use; callers keep it
// on the UI goroutine.
type Sequencer struct {
	latest uint64
}

// Next returns the tag for a newly issued fetch.
func (s *Sequencer) Next() uint64 {
	s.latest++
	return s.latest
}

// IsLatest reports whether seq is the most recently issued tag.
func (s *Sequencer) IsLatest(seq uint64) bool {
	return seq == s.latest
}
