package game

// Score tracks the current score and the best score reached.
// High never decreases and follows Current as soon as it is exceeded.
type Score struct {
	Current int
	High    int
}

// NewScore creates a score starting at initial.
func NewScore(initial int) Score {
	return Score{Current: initial, High: initial}
}

// Add applies delta without clamping, then raises High if needed.
// Callers check thresholds after Add returns.
func (s *Score) Add(delta int) {
	s.Current += delta
	if s.Current > s.High {
		s.High = s.Current
	}
}

// Reset starts a new game at initial, keeping the best score.
func (s *Score) Reset(initial int) {
	s.Current = initial
	s.High = max(s.High, initial)
}
