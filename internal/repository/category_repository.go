package repository

import (
	"context"
	"database/sql"

	"github.com/Matt444/GameStore--backend/internal/database"
	"github.com/Matt444/GameStore--backend/internal/model"
)

// CategoryRepo provides CRUD over the categories reference table.
type CategoryRepo struct{ db *sql.DB }

// NewCategoryRepo returns a new CategoryRepo bound to the given database.
func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{db: db} }

// List returns all categories.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a category. Returns ErrDuplicate when the name exists.
func (r *CategoryRepo) Create(ctx context.Context, name string) (uint64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update renames a category. Returns ErrNotFound when absent and
// ErrDuplicate on a name collision.
func (r *CategoryRepo) Update(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicate
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the category together with its game links in one
// batch. Returns ErrNotFound when the category does not exist.
func (r *CategoryRepo) Delete(ctx context.Context, id uint64) error {
	var exists uint64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM categories WHERE id = ?`, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	queries := []string{
		`DELETE FROM games_categories WHERE category_id = ?`,
		`DELETE FROM categories WHERE id = ?`,
	}
	return database.RunBatch(ctx, r.db, queries, [][]any{{id}, {id}})
}
