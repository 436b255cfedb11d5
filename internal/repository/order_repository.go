package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Matt444/GameStore--backend/internal/database"
	"github.com/Matt444/GameStore--backend/internal/model"
)

// OrderRepo implements the order workflow and order history reads over
// the users_transactions / games_transactions tables.
//
// Checkout is optimistic: availability is read without locks, then the
// whole order is submitted as one statement batch. Nothing in the
// application serializes key assignment between the read and the
// commit; two concurrent orders can both see the same "unused" key. The
// unique index on games_transactions.key_id is the backstop — when two
// batches try to bind the same key, exactly one commits and the other
// rolls back entirely and surfaces ErrOrderFailed.
type OrderRepo struct {
	db        *sql.DB
	inventory *InventoryRepo
}

// NewOrderRepo returns a new OrderRepo using the given database and
// inventory lookups.
func NewOrderRepo(db *sql.DB, inv *InventoryRepo) *OrderRepo {
	return &OrderRepo{db: db, inventory: inv}
}

// OrderItem is one requested position of a checkout: a game and how
// many copies of it to buy.
type OrderItem struct {
	GameID   uint64 `json:"game_id"`
	Quantity int64  `json:"quantity"`
}

// mysqlTimeLayout is the DATETIME format used for users_transactions.date.
const mysqlTimeLayout = "2006-01-02 15:04:05"

// OrderReceipt summarizes a committed order for the caller: the new
// header ID plus how many line items were written and how many of them
// consumed a license key.
type OrderReceipt struct {
	ID           uint64
	LineCount    int
	DigitalLines int
}

// Create validates and executes a multi-item purchase as one atomic
// transaction. For every item it checks the game's stock model: box
// games must have Quantity copies in the quantity column
// (ErrInsufficientStock otherwise), digital games must have Quantity
// unused keys left (ErrInsufficientKeys). Validation failures return
// before any mutating statement is issued, so a rejected order leaves
// zero rows behind.
//
// On success one flat batch is committed: the header insert, then per
// purchased unit a line insert binding the next unused key for digital
// games, plus a guarded update marking each consumed key used. Box
// stock is intentionally not decremented; games.quantity is a
// display-only column in this schema. Commit failures, including the
// concurrent-key race, surface as ErrOrderFailed.
func (r *OrderRepo) Create(ctx context.Context, userID uint64, items []OrderItem) (OrderReceipt, error) {
	stock := make(map[uint64]model.StockModel, len(items))
	keys := make(map[uint64][]uint64)
	for _, it := range items {
		if _, ok := stock[it.GameID]; ok {
			continue
		}
		sm, err := r.inventory.StockModel(ctx, it.GameID)
		if err != nil {
			return OrderReceipt{}, err
		}
		stock[it.GameID] = sm
		if sm.IsDigital {
			ids, err := r.inventory.UnusedKeyIDs(ctx, it.GameID)
			if err != nil {
				return OrderReceipt{}, err
			}
			keys[it.GameID] = ids
		}
	}

	queries, params, err := planOrder(userID, time.Now().UTC().Format(mysqlTimeLayout), items, stock, keys)
	if err != nil {
		return OrderReceipt{}, err
	}

	id, err := database.RunBatchReturningID(ctx, r.db, queries, params)
	if err != nil {
		// Constraint violations and any other commit-time failure are
		// reported uniformly; storage codes stay below this boundary.
		return OrderReceipt{}, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	rec := OrderReceipt{ID: id}
	for _, it := range items {
		rec.LineCount += int(it.Quantity)
		if stock[it.GameID].IsDigital {
			rec.DigitalLines += int(it.Quantity)
		}
	}
	return rec, nil
}

// planOrder builds the statement batch for a checkout from
// point-in-time stock and key snapshots. It is pure: validation
// failures are returned before a single statement is emitted, and keys
// are assigned first-fetched-first, advancing through each game's
// snapshot so no key is handed to two lines of the same order.
func planOrder(userID uint64, date string, items []OrderItem, stock map[uint64]model.StockModel, keys map[uint64][]uint64) ([]string, [][]any, error) {
	queries := []string{`INSERT INTO users_transactions (user_id, date) VALUES (?, ?)`}
	params := [][]any{{userID, date}}

	// remaining tracks how many keys of each game's snapshot are still
	// assignable after earlier items of this order.
	remaining := make(map[uint64][]uint64, len(keys))
	for gid, ids := range keys {
		remaining[gid] = ids
	}

	for _, it := range items {
		sm, ok := stock[it.GameID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: game %d", ErrNotFound, it.GameID)
		}
		if !sm.IsDigital {
			if sm.Quantity < it.Quantity {
				return nil, nil, fmt.Errorf("%w: game %d", ErrInsufficientStock, it.GameID)
			}
			for i := int64(0); i < it.Quantity; i++ {
				queries = append(queries,
					`INSERT INTO games_transactions (user_transaction_id, game_id, key_id) VALUES (?, ?, NULL)`)
				params = append(params, []any{database.FirstInsertID, it.GameID})
			}
			continue
		}
		pool := remaining[it.GameID]
		if int64(len(pool)) < it.Quantity {
			return nil, nil, fmt.Errorf("%w: game %d", ErrInsufficientKeys, it.GameID)
		}
		for i := int64(0); i < it.Quantity; i++ {
			keyID := pool[i]
			queries = append(queries,
				`INSERT INTO games_transactions (user_transaction_id, game_id, key_id) VALUES (?, ?, ?)`)
			params = append(params, []any{database.FirstInsertID, it.GameID, keyID})
			queries = append(queries,
				`UPDATE games_keys SET used = 1 WHERE id = ? AND used = 0`)
			params = append(params, []any{keyID})
		}
		remaining[it.GameID] = pool[it.Quantity:]
	}
	return queries, params, nil
}

// OrderLineDetail is one resolved line of an order as returned by the
// history endpoints: the game's catalog data plus, for digital lines,
// the license string of the bound key.
type OrderLineDetail struct {
	GameID    uint64  `json:"game_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	IsDigital bool    `json:"is_digital"`
	Key       *string `json:"key"`
}

// OrderDetail is an order header with its resolved lines.
type OrderDetail struct {
	ID     uint64            `json:"id"`
	UserID uint64            `json:"user_id"`
	Date   time.Time         `json:"date"`
	Games  []OrderLineDetail `json:"games"`
}

// ListAll returns every order with resolved line items, newest order
// first. No pagination is applied; the full result set is returned.
func (r *OrderRepo) ListAll(ctx context.Context) ([]OrderDetail, error) {
	return r.list(ctx, 0)
}

// ListForUser returns the orders whose header belongs to userID with
// resolved line items, newest order first.
func (r *OrderRepo) ListForUser(ctx context.Context, userID uint64) ([]OrderDetail, error) {
	return r.list(ctx, userID)
}

// list fetches order headers (all of them when userID is zero) and then
// resolves every header's lines in a single join query, the same
// two-phase assembly used for the per-user history.
func (r *OrderRepo) list(ctx context.Context, userID uint64) ([]OrderDetail, error) {
	headerQ := `SELECT id, user_id, date FROM users_transactions ORDER BY id DESC`
	var headerArgs []any
	if userID != 0 {
		headerQ = `SELECT id, user_id, date FROM users_transactions WHERE user_id = ? ORDER BY id DESC`
		headerArgs = append(headerArgs, userID)
	}
	rows, err := r.db.QueryContext(ctx, headerQ, headerArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]OrderDetail, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date); err != nil {
			return nil, err
		}
		d.Games = []OrderLineDetail{}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	ids := make([]any, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
	}
	lineQ := `SELECT gt.user_transaction_id, g.id, g.name, g.price, g.is_digital, gk.gkey
              FROM games_transactions gt
              JOIN games g ON g.id = gt.game_id
              LEFT JOIN games_keys gk ON gk.id = gt.key_id
              WHERE gt.user_transaction_id IN (` + placeholders(len(ids)) + `)
              ORDER BY gt.user_transaction_id, gt.id`
	lrows, err := r.db.QueryContext(ctx, lineQ, ids...)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var (
			orderID uint64
			line    OrderLineDetail
			gkey    sql.NullString
		)
		if err := lrows.Scan(&orderID, &line.GameID, &line.Name, &line.Price, &line.IsDigital, &gkey); err != nil {
			return nil, err
		}
		if gkey.Valid {
			k := gkey.String
			line.Key = &k
		}
		idx, ok := index[orderID]
		if !ok {
			continue
		}
		details[idx].Games = append(details[idx].Games, line)
	}
	if err := lrows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
