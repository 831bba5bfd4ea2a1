// Package roomlog keeps the display-side message log per room.
package roomlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// Service encapsulates room log state. Rooms are created implicitly on first
// touch; the log backs the web UI, not the model transcript.
type Service struct {
	mu   sync.RWMutex
	logs map[string][]game.LogEntry
}

func NewService() *Service {
	return &Service{
		logs: make(map[string][]game.LogEntry),
	}
}

// Append records a message in the room's log and returns the stored entry
// with its identifier and timestamp filled in.
func (s *Service) Append(_ context.Context, entry game.LogEntry) game.LogEntry {
	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.logs[entry.RoomID] = append(s.logs[entry.RoomID], entry)
	s.mu.Unlock()

	return entry
}

// List returns a copy of the room's accumulated messages in order. Unknown
// rooms yield an empty log.
func (s *Service) List(_ context.Context, roomID string) []game.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.logs[roomID]
	copied := make([]game.LogEntry, len(entries))
	copy(copied, entries)
	return copied
}
