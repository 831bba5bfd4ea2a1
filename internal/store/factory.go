package store

import (
	"context"
	"strings"
	"time"
)

// New creates a postgres-backed store when a database URL is configured,
// otherwise an in-memory store with the given room TTL.
func New(ctx context.Context, databaseURL string, roomTTL time.Duration) (Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return NewMemoryStore(roomTTL), nil
	}
	return NewPostgresStore(ctx, databaseURL)
}
