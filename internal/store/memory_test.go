package store

import (
	"context"
	"testing"
	"time"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

func TestMemoryStoreLoadUnknownRoom(t *testing.T) {
	s := NewMemoryStore(0)

	turns, err := s.Load(context.Background(), "never-seen")
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty transcript, got %d turns", len(turns))
	}
}

func TestMemoryStoreAppendPreservesOrder(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	if err := s.Append(ctx, "r1", game.Turn{Role: game.RoleUser, Text: "【質問】生き物ですか？"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}
	if err := s.Append(ctx, "r1",
		game.Turn{Role: game.RoleModel, Text: "回答: はい"},
		game.Turn{Role: game.RoleUser, Text: "【質問】国ですか？"},
	); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	turns, err := s.Load(ctx, "r1")
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Role != game.RoleUser || turns[1].Role != game.RoleModel || turns[2].Role != game.RoleUser {
		t.Fatalf("unexpected role order: %+v", turns)
	}
}

func TestMemoryStoreLoadReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	if err := s.Append(ctx, "r1", game.Turn{Role: game.RoleUser, Text: "original"}); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	turns, _ := s.Load(ctx, "r1")
	turns[0].Text = "mutated"

	again, _ := s.Load(ctx, "r1")
	if again[0].Text != "original" {
		t.Fatalf("stored turn mutated through Load result: %q", again[0].Text)
	}
}

func TestMemoryStoreRoomsAreIsolated(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	_ = s.Append(ctx, "r1", game.Turn{Role: game.RoleUser, Text: "a"})
	_ = s.Append(ctx, "r2", game.Turn{Role: game.RoleUser, Text: "b"})

	turns, _ := s.Load(ctx, "r2")
	if len(turns) != 1 || turns[0].Text != "b" {
		t.Fatalf("room r2 transcript polluted: %+v", turns)
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	_ = s.Append(ctx, "stale", game.Turn{Role: game.RoleUser, Text: "old"})
	time.Sleep(5 * time.Millisecond)

	removed := s.Sweep()
	if len(removed) != 1 || removed[0] != "stale" {
		t.Fatalf("expected [stale] swept, got %v", removed)
	}

	turns, _ := s.Load(ctx, "stale")
	if len(turns) != 0 {
		t.Fatalf("expected swept room to be empty, got %d turns", len(turns))
	}
}

func TestMemoryStoreSweepDisabled(t *testing.T) {
	s := NewMemoryStore(0)
	_ = s.Append(context.Background(), "r1", game.Turn{Role: game.RoleUser, Text: "keep"})

	if removed := s.Sweep(); len(removed) != 0 {
		t.Fatalf("sweep with zero TTL removed %v", removed)
	}
}
