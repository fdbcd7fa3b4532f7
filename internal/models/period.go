package models

import "time"

// Period represents one school period of the year. Exactly one period is
// active at a time; new attempts are counted against it.
type Period struct {
	ID        int64
	Number    int
	Active    bool
	CreatedAt time.Time
}
