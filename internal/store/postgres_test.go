package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// turnRows feeds canned (role, content) pairs through the pgx.Rows surface
// that collectTurns consumes.
type turnRows struct {
	pgx.Rows
	rows [][2]string
	idx  int
	err  error
}

func (r *turnRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *turnRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	*(dest[0].(*string)) = row[0]
	*(dest[1].(*string)) = row[1]
	return nil
}

func (r *turnRows) Err() error { return r.err }

func (r *turnRows) Close() {}

func TestCollectTurnsMapsRowsInOrder(t *testing.T) {
	rows := &turnRows{rows: [][2]string{
		{"user", "ゲームを開始してください。"},
		{"model", "テーマは『国連加盟国』ですね。"},
		{"user", "【質問】アジアの国ですか？"},
	}}

	turns, err := collectTurns(rows)
	if err != nil {
		t.Fatalf("collectTurns err: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[0].Role != game.RoleUser || turns[1].Role != game.RoleModel || turns[2].Role != game.RoleUser {
		t.Fatalf("unexpected role order: %+v", turns)
	}
	if turns[1].Text != "テーマは『国連加盟国』ですね。" {
		t.Fatalf("unexpected text: %q", turns[1].Text)
	}
}

func TestCollectTurnsEmptyResult(t *testing.T) {
	turns, err := collectTurns(&turnRows{})
	if err != nil {
		t.Fatalf("collectTurns err: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected no turns, got %+v", turns)
	}
}

func TestCollectTurnsPropagatesRowError(t *testing.T) {
	rows := &turnRows{
		rows: [][2]string{{"user", "partial"}},
		err:  errors.New("connection reset"),
	}

	if _, err := collectTurns(rows); err == nil {
		t.Fatal("expected error from broken row iteration")
	}
}

func TestSchemaStatementsOrdered(t *testing.T) {
	if len(schemaStatements) < 2 {
		t.Fatalf("expected table and index statements, got %d", len(schemaStatements))
	}
	if !strings.Contains(schemaStatements[0], "CREATE TABLE IF NOT EXISTS game_turns") {
		t.Fatalf("first statement must create the table: %q", schemaStatements[0])
	}
	if !strings.Contains(schemaStatements[1], "ON game_turns (room_id, seq)") {
		t.Fatalf("index must cover (room_id, seq): %q", schemaStatements[1])
	}
}
