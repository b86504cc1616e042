package repository

import (
	"context"
	"fmt"

	"github.com/triviabank/trivia-api/internal/trivia"
)

// CategoryRepository reads the seeded category table. The service never
// writes categories; they are managed by migrations.
type CategoryRepository struct {
	db DB
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListOrdered returns all categories ordered by label ascending.
func (r *CategoryRepository) ListOrdered(ctx context.Context) ([]trivia.Category, error) {
	query, args, err := qb.Select("id", "type").From("categories").OrderBy("type ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category listing: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
