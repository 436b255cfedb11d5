package repository

import (
	"context"
	"database/sql"

	"github.com/Matt444/GameStore--backend/internal/model"
)

// PlatformRepo provides CRUD over the platforms reference table.
type PlatformRepo struct{ db *sql.DB }

// NewPlatformRepo returns a new PlatformRepo bound to the given database.
func NewPlatformRepo(db *sql.DB) *PlatformRepo { return &PlatformRepo{db: db} }

// List returns all platforms.
func (r *PlatformRepo) List(ctx context.Context) ([]model.Platform, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM platforms`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Platform, 0)
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a platform. Returns ErrDuplicate when the name exists.
func (r *PlatformRepo) Create(ctx context.Context, name string) (uint64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO platforms (name) VALUES (?)`, name)
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

// Update renames a platform. Returns ErrNotFound when absent and
// ErrDuplicate on a name collision.
func (r *PlatformRepo) Update(ctx context.Context, id uint64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE platforms SET name = ? WHERE id = ?`, name, id)
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

// Delete removes the platform. Games still referencing it block the
// delete through the foreign key and surface as ErrForbidden.
func (r *PlatformRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM platforms WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrForbidden
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
