package entity

import "time"

// DefaultCooldown is the minimum interval before the same plate may be
// submitted again.
const DefaultCooldown = 5 * time.Second

// Deduplicator suppresses repeated submissions of the same plate seen in
// rapid succession. A different plate always passes immediately; the same
// plate passes again once the cool-down has elapsed.
//
// Not safe for concurrent use; the capture loop is single-threaded and owns
// the only instance. State is in-memory only and lost on restart.
type Deduplicator struct {
	cooldown   time.Duration
	lastPlate  string
	lastSeenAt time.Time
}

func NewDeduplicator(cooldown time.Duration) *Deduplicator {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Deduplicator{cooldown: cooldown}
}

// ShouldSubmit reports whether a plate observed at now should be forwarded.
// A rejection leaves state untouched; an acceptance unconditionally
// overwrites the stored plate and timestamp, resetting the cool-down
// baseline — including when a different plate comes through.
func (d *Deduplicator) ShouldSubmit(plate string, now time.Time) bool {
	if plate == d.lastPlate && !d.lastSeenAt.IsZero() && now.Sub(d.lastSeenAt) < d.cooldown {
		return false
	}
	d.lastPlate = plate
	d.lastSeenAt = now
	return true
}
