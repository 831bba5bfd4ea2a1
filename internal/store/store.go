// Package store persists per-room game transcripts.
package store

import (
	"context"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// Store is the transcript backend. Implementations must be safe for
// concurrent use across different rooms; callers serialize writes within a
// single room.
type Store interface {
	// Load returns a room's transcript in chronological order. A room never
	// seen before yields an empty transcript, not an error.
	Load(ctx context.Context, roomID string) ([]game.Turn, error)
	// Append adds turns to the end of a room's transcript, creating the room
	// on first use.
	Append(ctx context.Context, roomID string, turns ...game.Turn) error
	Close() error
}
