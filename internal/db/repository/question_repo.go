package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/triviabank/trivia-api/internal/trivia"
)

// DB is the subset of pgxpool.Pool the repositories need.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// QuestionRepository runs question queries against Postgres. Filters are
// rendered into WHERE predicates so the table is never pulled into memory
// for filtering.
type QuestionRepository struct {
	db DB
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func selectQuestions(filter trivia.Filter) sq.SelectBuilder {
	// Uncategorized rows carry NULL; the wire format uses 0.
	b := qb.Select("id", "question", "answer", "coalesce(category_id, 0)", "difficulty").
		From("questions")
	return applyFilter(b, filter)
}

func applyFilter(b sq.SelectBuilder, filter trivia.Filter) sq.SelectBuilder {
	if filter.TextContains != "" {
		b = b.Where(sq.ILike{"question": "%" + filter.TextContains + "%"})
	}
	if filter.Category != nil {
		b = b.Where(sq.Eq{"category_id": *filter.Category})
	}
	if len(filter.ExcludeIDs) > 0 {
		b = b.Where(sq.NotEq{"id": filter.ExcludeIDs})
	}
	return b
}

// List returns matching questions ordered ascending by question text. The
// text ordering is a stable tie-break keeping pagination reproducible.
func (r *QuestionRepository) List(ctx context.Context, filter trivia.Filter, limit, offset int) ([]trivia.Question, error) {
	query, args, err := selectQuestions(filter).
		OrderBy("question ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build question listing: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Count returns the unpaged number of matching questions.
func (r *QuestionRepository) Count(ctx context.Context, filter trivia.Filter) (int, error) {
	query, args, err := applyFilter(qb.Select("count(*)").From("questions"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build question count: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}

// RandomOne picks one matching question uniformly at random, store-side, or
// nil when nothing matches.
func (r *QuestionRepository) RandomOne(ctx context.Context, filter trivia.Filter) (*trivia.Question, error) {
	query, args, err := selectQuestions(filter).
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build random pick: %w", err)
	}

	var q trivia.Question
	err = r.db.QueryRow(ctx, query, args...).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pick random question: %w", err)
	}
	return &q, nil
}

// Insert persists a new question and returns the assigned id. Constraint
// violations surface as errors for the service to classify.
func (r *QuestionRepository) Insert(ctx context.Context, in trivia.NewQuestion) (int64, error) {
	query, args, err := qb.Insert("questions").
		Columns("question", "answer", "category_id", "difficulty").
		Values(in.Question, in.Answer, categoryRef(in.Category), in.Difficulty).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build question insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question row, reporting whether one existed.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("questions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build question delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func categoryRef(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
