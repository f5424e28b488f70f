package port

import "time"

type CooldownStore interface {
	// Load returns the time of the last recorded use for key.
	Load(key string) (time.Time, bool)
	// Store overwrites the entry for key.
	Store(key string, at time.Time)
	// Evict removes the entry for key only if it still holds the given timestamp.
	Evict(key string, at time.Time)
}
