package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathworld/internal/session"
)

var _ session.ScoreKeeper = (*Store)(nil)

// ReadHighScore returns the stored best quiz score. A missing value reads
// as 0.
func (s *Store) ReadHighScore(ctx context.Context) (int, error) {
	raw, ok, err := s.setting(ctx, highScoreKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse high score %q: %w", raw, err)
	}
	return score, nil
}

// WriteHighScore replaces the stored best quiz score.
func (s *Store) WriteHighScore(ctx context.Context, score int) error {
	if err := s.setSetting(ctx, highScoreKey, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

func (s *Store) setting(ctx context.Context, key string) (string, bool, error) {
	q, args := builder().Select("value").
		From(builder().Table(settingsTable.Name)).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("read setting %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) setSetting(ctx context.Context, key, value string) error {
	q, args := builder().Insert(settingsTable.Name).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	_, err := s.db.ExecContext(ctx, q, args...)
	return err
}
