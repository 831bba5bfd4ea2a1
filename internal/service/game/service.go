// Package game orchestrates one game-master turn: label, append, relay,
// sanitize, persist.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
	"github.com/hogehogepiyopiyo/yesnogame/internal/observability"
	"github.com/hogehogepiyopiyo/yesnogame/internal/prompt"
	"github.com/hogehogepiyopiyo/yesnogame/internal/sanitize"
	"github.com/hogehogepiyopiyo/yesnogame/internal/service/ai"
	"github.com/hogehogepiyopiyo/yesnogame/internal/store"
)

// Responder produces the raw game-master reply for an assembled conversation.
type Responder interface {
	Reply(ctx context.Context, roomID string, history []game.Turn, userText string) (string, error)
}

// Service serializes turns per room and keeps the transcript consistent with
// what the model has seen.
type Service struct {
	store     store.Store
	responder Responder
	metrics   *observability.Metrics

	mu    sync.Mutex
	rooms map[string]*sync.Mutex
}

func NewService(st store.Store, responder Responder, metrics *observability.Metrics) *Service {
	return &Service{
		store:     st,
		responder: responder,
		metrics:   metrics,
		rooms:     make(map[string]*sync.Mutex),
	}
}

// TakeTurn runs one exchange with the game master. Exactly one user turn and
// one model turn are appended on success, in that order. On upstream failure
// the user turn stays in the transcript, no model turn is appended, and the
// error propagates; a retry replays the unanswered turn as extra context.
func (s *Service) TakeTurn(ctx context.Context, roomID, userText string, kind game.Kind) (string, error) {
	roomID = game.NormalizeRoomID(roomID)

	lock := s.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	history, err := s.store.Load(ctx, roomID)
	if err != nil {
		return "", fmt.Errorf("load transcript: %w", err)
	}

	if len(history) == 0 {
		history, err = s.seedRoom(ctx, roomID)
		if err != nil {
			return "", err
		}
	}

	labeled := kind.Label(userText)
	if err := s.store.Append(ctx, roomID, game.Turn{Role: game.RoleUser, Text: labeled}); err != nil {
		return "", fmt.Errorf("append user turn: %w", err)
	}

	raw, err := s.responder.Reply(ctx, roomID, history, labeled)
	if err != nil {
		s.metrics.CountUpstreamError(errCode(err))
		return "", err
	}

	reply := sanitize.Clean(raw)
	if err := s.store.Append(ctx, roomID, game.Turn{Role: game.RoleModel, Text: reply}); err != nil {
		return "", fmt.Errorf("append model turn: %w", err)
	}

	s.metrics.CountTurn(string(kind))
	return reply, nil
}

// seedRoom plays the fixed opening exchange for a brand-new room so the game
// master introduces the game before the first real player message. Nothing is
// persisted when the opening call fails, so the next turn retries the seed.
func (s *Service) seedRoom(ctx context.Context, roomID string) ([]game.Turn, error) {
	raw, err := s.responder.Reply(ctx, roomID, nil, prompt.StartMessage)
	if err != nil {
		s.metrics.CountUpstreamError(errCode(err))
		return nil, err
	}

	seeded := []game.Turn{
		{Role: game.RoleUser, Text: prompt.StartMessage},
		{Role: game.RoleModel, Text: sanitize.Clean(raw)},
	}
	if err := s.store.Append(ctx, roomID, seeded...); err != nil {
		return nil, fmt.Errorf("append opening exchange: %w", err)
	}

	s.metrics.CountRoomSeeded()
	log.Printf("[game] seeded room=%s", roomID)
	return seeded, nil
}

// roomLock hands out one mutex per room so concurrent turns in the same
// group chat cannot interleave transcript writes.
func (s *Service) roomLock(roomID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.rooms[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.rooms[roomID] = lock
	}
	return lock
}

// ReleaseRooms drops the per-room locks of reclaimed rooms so the lock map
// does not outgrow the store. A lock currently held belongs to an in-flight
// turn and is left for a later sweep.
func (s *Service) ReleaseRooms(roomIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, roomID := range roomIDs {
		lock, ok := s.rooms[roomID]
		if !ok {
			continue
		}
		if lock.TryLock() {
			lock.Unlock()
			delete(s.rooms, roomID)
		}
	}
}

func errCode(err error) string {
	if errors.Is(err, ai.ErrRateLimited) {
		return "rate_limited"
	}
	return "upstream"
}
