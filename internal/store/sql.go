package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// timeLayout is fixed-width so timestamps sort lexically in SQL.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqlStore keeps sessions in the "boards" table, the board as JSON.
type sqlStore struct {
	db *sql.DB
}

// NewSQLStore returns a Store backed by a migrated database.
func NewSQLStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Save(ctx context.Context, sess *Session) error {
	board, err := json.Marshal(sess.Board)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO boards (id, user_id, board, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            user_id=excluded.user_id, board=excluded.board, updated_at=excluded.updated_at`,
		sess.ID, nullable(sess.UserID), string(board),
		sess.CreatedAt.UTC().Format(timeLayout), sess.UpdatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *sqlStore) Get(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, COALESCE(user_id, ''), board, created_at, updated_at
        FROM boards WHERE id=?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sess, err
}

func (s *sqlStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sqlStore) ListByUser(ctx context.Context, userID string, limit int) ([]*Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, COALESCE(user_id, ''), board, created_at, updated_at
        FROM boards WHERE user_id=?
        ORDER BY updated_at DESC
        LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanSession converts a boards row into a Session.
func scanSession(row scanner) (*Session, error) {
	var sess Session
	var board, created, updated string
	if err := row.Scan(&sess.ID, &sess.UserID, &board, &created, &updated); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(board), &sess.Board); err != nil {
		return nil, fmt.Errorf("decode board %s: %w", sess.ID, err)
	}
	sess.CreatedAt = mustParse(created)
	sess.UpdatedAt = mustParse(updated)
	return &sess, nil
}

// mustParse parses stored timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
