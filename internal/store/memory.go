package store

import (
	"context"
	"sync"
	"time"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// MemoryStore keeps transcripts in-process, suitable for a single instance.
// Rooms idle longer than the TTL are reclaimed by Sweep; a zero TTL disables
// expiry entirely.
type MemoryStore struct {
	mu          sync.RWMutex
	ttl         time.Duration
	transcripts map[string][]game.Turn
	lastWrite   map[string]time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:         ttl,
		transcripts: make(map[string][]game.Turn),
		lastWrite:   make(map[string]time.Time),
	}
}

func (s *MemoryStore) Load(_ context.Context, roomID string) ([]game.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.transcripts[roomID]
	copied := make([]game.Turn, len(turns))
	copy(copied, turns)
	return copied, nil
}

func (s *MemoryStore) Append(_ context.Context, roomID string, turns ...game.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcripts[roomID] = append(s.transcripts[roomID], turns...)
	s.lastWrite[roomID] = time.Now().UTC()
	return nil
}

// Sweep drops rooms whose last write is older than the TTL and returns the
// ids of the rooms removed, so callers can release per-room state of theirs.
func (s *MemoryStore) Sweep() []string {
	if s.ttl <= 0 {
		return nil
	}

	cutoff := time.Now().UTC().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	for roomID, last := range s.lastWrite {
		if last.Before(cutoff) {
			delete(s.transcripts, roomID)
			delete(s.lastWrite, roomID)
			removed = append(removed, roomID)
		}
	}
	return removed
}

func (s *MemoryStore) Close() error { return nil }
