package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathworld/internal/problemgen"
	"github.com/abhisek/mathworld/internal/session"
)

var _ session.HistoryRecorder = (*Store)(nil)

var gameRecordColumns = []string{
	"id", "operation", "difficulty", "score", "correct", "total",
	"new_high_score", "started_at", "finished_at",
}

// RecordGame stores one completed quiz.
func (s *Store) RecordGame(ctx context.Context, rec session.GameRecord) error {
	q, args := builder().Insert(gameRecordsTable.Name).
		Columns(gameRecordColumns...).
		Values(
			rec.ID,
			rec.Operation.String(),
			rec.Difficulty.String(),
			rec.Score,
			rec.Correct,
			rec.Total,
			rec.NewHighScore,
			rec.StartedAt.UTC(),
			rec.FinishedAt.UTC(),
		).
		Query()
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save game record: %w", err)
	}
	return nil
}

// RecentGames returns up to limit completed quizzes, newest first. A limit
// of 0 returns all of them.
func (s *Store) RecentGames(ctx context.Context, limit int) ([]session.GameRecord, error) {
	sel := builder().Select(gameRecordColumns...).
		From(builder().Table(gameRecordsTable.Name)).
		OrderBy(entsql.Desc("finished_at"), entsql.Desc("started_at"))
	if limit > 0 {
		sel.Limit(limit)
	}
	q, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query game records: %w", err)
	}
	defer rows.Close()

	var out []session.GameRecord
	for rows.Next() {
		var (
			rec      session.GameRecord
			op, diff string
		)
		if err := rows.Scan(
			&rec.ID, &op, &diff, &rec.Score, &rec.Correct, &rec.Total,
			&rec.NewHighScore, &rec.StartedAt, &rec.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan game record: %w", err)
		}
		if rec.Operation, err = problemgen.ParseOperation(op); err != nil {
			return nil, fmt.Errorf("game record %s: %w", rec.ID, err)
		}
		if rec.Difficulty, err = problemgen.ParseDifficulty(diff); err != nil {
			return nil, fmt.Errorf("game record %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GameStats aggregates completed quizzes per operation, in operation order.
func (s *Store) GameStats(ctx context.Context) ([]OperationStats, error) {
	q, args := builder().Select(
		"operation",
		entsql.Count("*"),
		entsql.Max("score"),
		entsql.Sum("score"),
		entsql.Sum("correct"),
		entsql.Sum("total"),
	).
		From(builder().Table(gameRecordsTable.Name)).
		GroupBy("operation").
		Query()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query game stats: %w", err)
	}
	defer rows.Close()

	byOp := make(map[problemgen.Operation]OperationStats)
	for rows.Next() {
		var (
			st OperationStats
			op string
		)
		if err := rows.Scan(&op, &st.Games, &st.BestScore, &st.TotalScore, &st.Correct, &st.Questions); err != nil {
			return nil, fmt.Errorf("scan game stats: %w", err)
		}
		if st.Operation, err = problemgen.ParseOperation(op); err != nil {
			return nil, err
		}
		byOp[st.Operation] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []OperationStats
	for _, op := range problemgen.Operations {
		if st, ok := byOp[op]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}
