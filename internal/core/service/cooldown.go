package service

import (
	"sync"
	"time"
)

// MemoryCooldownStore keeps the last use of every command/user pair for the lifetime of the
// process. Entries are only removed lazily by the gate, there is no background sweep.
type MemoryCooldownStore struct {
	entries sync.Map
}

func NewMemoryCooldownStore() *MemoryCooldownStore {
	return &MemoryCooldownStore{}
}

func (s *MemoryCooldownStore) Load(key string) (time.Time, bool) {
	v, ok := s.entries.Load(key)
	if !ok {
		return time.Time{}, false
	}

	at, ok := v.(time.Time)
	return at, ok
}

func (s *MemoryCooldownStore) Store(key string, at time.Time) {
	s.entries.Store(key, at)
}

func (s *MemoryCooldownStore) Evict(key string, at time.Time) {
	s.entries.CompareAndDelete(key, at)
}

// Len counts the stored entries.
func (s *MemoryCooldownStore) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func cooldownKey(command, userID string) string {
	return command + "|" + userID
}
