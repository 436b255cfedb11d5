package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Matt444/GameStore--backend/internal/model"
)

// InventoryRepo provides read-only lookups of a game's stock model and,
// for digital games, its pool of unused license keys. Both methods are
// plain reads with no locking: correctness under concurrent purchases
// is enforced at commit time by the unique key binding in
// games_transactions, not here.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo returns a new InventoryRepo bound to the given database.
func NewInventoryRepo(db *sql.DB) *InventoryRepo { return &InventoryRepo{db: db} }

// StockModel returns whether the game is digital and its box quantity.
// The quantity is the raw column value; for digital games callers
// should count unused keys instead. Returns ErrNotFound when the game
// does not exist.
func (r *InventoryRepo) StockModel(ctx context.Context, gameID uint64) (model.StockModel, error) {
	var sm model.StockModel
	err := r.db.QueryRowContext(ctx,
		`SELECT is_digital, quantity FROM games WHERE id = ?`,
		gameID).Scan(&sm.IsDigital, &sm.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.StockModel{}, ErrNotFound
		}
		return model.StockModel{}, err
	}
	return sm, nil
}

// UnusedKeyIDs returns the IDs of the game's unused license keys in
// insertion order. Orders consume keys first-fetched-first-assigned, so
// the ordering makes key assignment deterministic for a given database
// state.
func (r *InventoryRepo) UnusedKeyIDs(ctx context.Context, gameID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM games_keys WHERE game_id = ? AND used = 0 ORDER BY id`,
		gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
