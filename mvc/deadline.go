package mvc

import "time"

// deadlineCheckMask throttles wall-clock reads to one per 4096 node events.
const deadlineCheckMask = 4095

// softDeadline implements the sparse time-budget check shared by the exact
// searches. The zero value (disabled) never expires.
type softDeadline struct {
	enabled  bool
	deadline time.Time
	steps    int
}

// newSoftDeadline arms a deadline when limit > 0.
func newSoftDeadline(limit time.Duration) softDeadline {
	if limit <= 0 {
		return softDeadline{}
	}
	return softDeadline{enabled: true, deadline: time.Now().Add(limit)}
}

// expired reports whether the budget ran out. Cheap: the clock is consulted
// once every deadlineCheckMask+1 calls.
func (d *softDeadline) expired() bool {
	if !d.enabled {
		return false
	}
	d.steps++
	if d.steps&deadlineCheckMask != 0 {
		return false
	}
	return time.Now().After(d.deadline)
}
