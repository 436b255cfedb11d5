package repository

import (
	"context"
	"database/sql"
	"errors"
)

// KeyRepo manages the games_keys table for administrators. Keys enter
// the system unused; consumption happens exclusively through the order
// workflow, never here.
type KeyRepo struct {
	db *sql.DB
}

// NewKeyRepo returns a new KeyRepo bound to the given database.
func NewKeyRepo(db *sql.DB) *KeyRepo { return &KeyRepo{db: db} }

// KeyGameRef is the owning game summary embedded in key listings.
type KeyGameRef struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// KeyRow is one license key as shown to administrators, including its
// owning game and whether it has been sold.
type KeyRow struct {
	ID   uint64     `json:"id"`
	Game KeyGameRef `json:"game"`
	Used bool       `json:"used"`
	GKey string     `json:"gkey"`
}

// List returns every license key with its owning game, grouped by game.
func (r *KeyRepo) List(ctx context.Context) ([]KeyRow, error) {
	const q = `SELECT gk.id, g.id, g.name, g.price, gk.used, gk.gkey
               FROM games_keys gk
               JOIN games g ON g.id = gk.game_id
               ORDER BY gk.game_id, gk.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]KeyRow, 0)
	for rows.Next() {
		var k KeyRow
		if err := rows.Scan(&k.ID, &k.Game.ID, &k.Game.Name, &k.Game.Price, &k.Used, &k.GKey); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new unused key for the given game. Returns
// ErrNotFound when the game does not exist.
func (r *KeyRepo) Create(ctx context.Context, gameID uint64, gkey string) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO games_keys (game_id, used, gkey) VALUES (?, 0, ?)`,
		gameID, gkey)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Delete removes an unused key. A key that has been sold can never be
// deleted; attempting it returns ErrForbidden. Returns ErrNotFound when
// no key with the ID exists.
func (r *KeyRepo) Delete(ctx context.Context, id uint64) error {
	var used bool
	err := r.db.QueryRowContext(ctx, `SELECT used FROM games_keys WHERE id = ?`, id).Scan(&used)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if used {
		return ErrForbidden
	}
	// The guard repeats in the DELETE so a key sold between the read
	// and the delete survives.
	res, err := r.db.ExecContext(ctx, `DELETE FROM games_keys WHERE id = ? AND used = 0`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrForbidden
	}
	return nil
}
