package domain

import "time"

// Report is the outcome of one formation run, as exported and recorded.
type Report struct {
	RunID     string
	Source    string
	Strategy  string
	GroupSize int
	Attempts  int
	// Groups are ranked, highest total score first.
	Groups    []Group
	Unplaced  []Person
	StartedAt time.Time
	Duration  time.Duration
}

func (r Report) Placed() int {
	placed := 0
	for _, group := range r.Groups {
		placed += group.Size()
	}
	return placed
}
