package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/todoscontam/finlab/internal/logger"
)

var resultColumns = []string{
	"id", "quiz_id", "seed", "weighted", "correct", "total",
	"points", "max_points", "percentage", "tier", "created_at",
}

type resultRepo struct {
	db *sql.DB
}

// NewResultRepo creates a ResultRepo over an open database.
func NewResultRepo(db *sql.DB) ResultRepo {
	return &resultRepo{db: db}
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	log := logger.FromContext(ctx).WithPrefix("result_repo")

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	log.Debug("saving result: id=%s, quiz=%s, answers=%d", res.ID, res.QuizID, len(res.Answers))

	return r.tx(ctx, func(tx *sql.Tx) error {
		query, args, err := sqlBuilder.Insert("results").
			Columns(resultColumns...).
			Values(res.ID, res.QuizID, strconv.FormatUint(res.Seed, 10), res.Weighted, res.Correct, res.Total,
				res.Points, res.MaxPoints, res.Percentage, res.Tier, res.CreatedAt.UnixMilli()).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert result: %v", err)
			return err
		}

		if len(res.Answers) == 0 {
			return nil
		}
		insert := sqlBuilder.Insert("answers").
			Columns("result_id", "position", "item_id", "category", "prompt", "answer", "correct", "points")
		for _, a := range res.Answers {
			insert = insert.Values(res.ID, a.Position, a.ItemID, a.Category, a.Prompt, a.Answer, a.Correct, a.Points)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert answers: %v", err)
			return err
		}
		return nil
	})
}

func (r *resultRepo) Get(ctx context.Context, id string) (*Result, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("getting result: id=%s", id)

	query, args, err := sqlBuilder.Select(resultColumns...).
		From("results").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	res, err := scanResult(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("result not found: id=%s", id)
			return nil, ErrNotFound
		}
		log.Error("failed to get result: %v", err)
		return nil, err
	}

	query, args, err = sqlBuilder.Select("position", "item_id", "category", "prompt", "answer", "correct", "points").
		From("answers").
		Where(squirrel.Eq{"result_id": id}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load answers: %v", err)
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.Position, &a.ItemID, &a.Category, &a.Prompt, &a.Answer, &a.Correct, &a.Points); err != nil {
			log.Error("failed to scan answer row: %v", err)
			return nil, err
		}
		res.Answers = append(res.Answers, a)
	}
	return res, rows.Err()
}

func (r *resultRepo) List(ctx context.Context, filter ResultFilter) ([]Result, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("listing results: quiz=%s, limit=%d, offset=%d", filter.QuizID, filter.Limit, filter.Offset)

	query := sqlBuilder.Select(resultColumns...).From("results")
	if filter.QuizID != "" {
		query = query.Where(squirrel.Eq{"quiz_id": filter.QuizID})
	}
	if !filter.Since.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": filter.Since.UnixMilli()})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := max(filter.Offset, 0)
	query = query.OrderBy("created_at DESC", "id").Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		results = append(results, *res)
	}
	log.Debug("found %d results", len(results))
	return results, rows.Err()
}

func (r *resultRepo) Stats(ctx context.Context) ([]QuizStats, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")

	query, args, err := sqlBuilder.Select(
		"quiz_id", "COUNT(*)", "MAX(percentage)", "AVG(percentage)", "MAX(created_at)",
	).From("results").GroupBy("quiz_id").OrderBy("quiz_id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to aggregate results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var stats []QuizStats
	for rows.Next() {
		var (
			s    QuizStats
			last int64
		)
		if err := rows.Scan(&s.QuizID, &s.Attempts, &s.Best, &s.Average, &last); err != nil {
			log.Error("failed to scan stats row: %v", err)
			return nil, err
		}
		s.Last = time.UnixMilli(last)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *resultRepo) Reset(ctx context.Context, quizID string) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")

	del := sqlBuilder.Delete("results")
	if quizID != "" {
		del = del.Where(squirrel.Eq{"quiz_id": quizID})
	}
	query, args, err := del.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to reset results: %v", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	log.Info("removed %d results (quiz=%q)", n, quizID)
	return n, nil
}

func (r *resultRepo) tx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*Result, error) {
	var (
		res     Result
		seed    string
		created int64
	)
	if err := row.Scan(&res.ID, &res.QuizID, &seed, &res.Weighted, &res.Correct, &res.Total,
		&res.Points, &res.MaxPoints, &res.Percentage, &res.Tier, &created); err != nil {
		return nil, err
	}
	v, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, err
	}
	res.Seed = v
	res.CreatedAt = time.UnixMilli(created)
	return &res, nil
}
