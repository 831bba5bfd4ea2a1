package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hogehogepiyopiyo/yesnogame/internal/model/game"
)

// PostgresStore persists transcripts in PostgreSQL so games survive restarts.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// schemaStatements run in order: the table must exist before it is indexed.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS game_turns (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL,
		room_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_game_turns_room_seq ON game_turns (room_id, seq);`,
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, roomID string) ([]game.Turn, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT role, content FROM game_turns WHERE room_id=$1 ORDER BY seq`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	return collectTurns(rows)
}

// collectTurns maps (role, content) rows onto turns in query order.
func collectTurns(rows pgx.Rows) ([]game.Turn, error) {
	turns := make([]game.Turn, 0, 16)
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		turns = append(turns, game.Turn{Role: game.Role(role), Text: content})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript rows: %w", err)
	}

	return turns, nil
}

func (s *PostgresStore) Append(ctx context.Context, roomID string, turns ...game.Turn) error {
	for _, turn := range turns {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO game_turns (id, room_id, role, content) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(),
			roomID,
			string(turn.Role),
			turn.Text,
		)
		if err != nil {
			return fmt.Errorf("append turn: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
