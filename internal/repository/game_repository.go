package repository

import (
	"context"
	"database/sql"

	"github.com/Matt444/GameStore--backend/internal/database"
)

// GameRepo provides catalog access to the games table and its category
// links. Listings report the effective available quantity: the count of
// unused license keys for digital games, the raw quantity column for
// box games.
type GameRepo struct {
	db *sql.DB
}

// NewGameRepo returns a new GameRepo bound to the given database.
func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{db: db} }

// GameRow is a catalog listing entry. Quantity is the effective
// available count, not necessarily the stored column value.
type GameRow struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int64    `json:"quantity"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	IsDigital   bool     `json:"is_digital"`
	AgeCategory string   `json:"age_category"`
	PlatformID  uint64   `json:"platform_id"`
	Categories  []uint64 `json:"categories_id"`
}

// selectGames is the shared projection for listings. The IF switches
// the reported quantity to the unused-key count for digital games.
const selectGames = `SELECT g.id, g.name, g.price,
           IF(g.is_digital, (SELECT COUNT(gk.id) FROM games_keys gk WHERE gk.game_id = g.id AND gk.used = 0), g.quantity) AS quantity,
           g.description, g.release_date, g.is_digital, g.age_category, g.platform_id,
           GROUP_CONCAT(gc.category_id ORDER BY gc.category_id) AS categories_id
    FROM games g
    JOIN games_categories gc ON gc.game_id = g.id `

// List returns catalog entries whose name contains q, with limit/offset
// paging. Empty q matches everything; limit<=0 means no limit.
func (r *GameRepo) List(ctx context.Context, q string, limit, offset int64) ([]GameRow, error) {
	if limit <= 0 {
		limit = 1<<63 - 1
	}
	if offset < 0 {
		offset = 0
	}
	query := selectGames + `WHERE g.name LIKE ? GROUP BY g.id LIMIT ? OFFSET ?`
	return r.queryGames(ctx, query, "%"+q+"%", limit, offset)
}

// GameSearch carries the optional composite filters of the search
// endpoint. Slices left empty add no condition; Name matches as a
// substring. All values are bound as parameters.
type GameSearch struct {
	Name        string
	IsDigital   []bool
	AgeCats     []string
	PlatformIDs []uint64
	CategoryIDs []uint64
}

// Search returns catalog entries matching every provided filter, with
// limit/offset paging. The category filter matches games linked to any
// of the given categories while the result still lists all of a game's
// categories.
func (r *GameRepo) Search(ctx context.Context, s GameSearch, limit, offset int64) ([]GameRow, error) {
	if limit <= 0 {
		limit = 1<<63 - 1
	}
	if offset < 0 {
		offset = 0
	}
	var b condBuilder
	b.add("g.name LIKE ?", "%"+s.Name+"%")
	b.addIn("g.is_digital", boolsToAny(s.IsDigital))
	b.addIn("g.age_category", stringsToAny(s.AgeCats))
	b.addIn("g.platform_id", idsToAny(s.PlatformIDs))
	b.addIn("gc.category_id", idsToAny(s.CategoryIDs))
	cond, args := b.clause()

	query := selectGames + `WHERE g.id IN (
            SELECT DISTINCT g.id FROM games g
            JOIN games_categories gc ON gc.game_id = g.id
            WHERE ` + cond + `)
        GROUP BY g.id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)
	return r.queryGames(ctx, query, args...)
}

func (r *GameRepo) queryGames(ctx context.Context, query string, args ...any) ([]GameRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]GameRow, 0)
	for rows.Next() {
		var (
			g    GameRow
			cats sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.Price, &g.Quantity, &g.Description,
			&g.ReleaseDate, &g.IsDigital, &g.AgeCategory, &g.PlatformID, &cats); err != nil {
			return nil, err
		}
		g.Categories = parseIDList(cats.String)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NewGame carries all fields required to create a catalog entry.
type NewGame struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int64    `json:"quantity"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date"`
	IsDigital   bool     `json:"is_digital"`
	AgeCategory string   `json:"age_category"`
	PlatformID  uint64   `json:"platform_id"`
	Categories  []uint64 `json:"categories_id"`
}

// Create inserts the game and its category links in one batch, so a
// failing link insert leaves no orphan game row.
func (r *GameRepo) Create(ctx context.Context, g NewGame) (uint64, error) {
	queries := []string{`INSERT INTO games (name, price, quantity, description, release_date, is_digital, age_category, platform_id)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`}
	params := [][]any{{g.Name, g.Price, g.Quantity, g.Description, g.ReleaseDate, g.IsDigital, g.AgeCategory, g.PlatformID}}
	for _, c := range g.Categories {
		queries = append(queries, `INSERT INTO games_categories (game_id, category_id) VALUES (?, ?)`)
		params = append(params, []any{database.FirstInsertID, c})
	}
	id, err := database.RunBatchReturningID(ctx, r.db, queries, params)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// GameUpdate carries the optional fields of a partial game update. Nil
// fields are left untouched. A non-nil Categories replaces the game's
// whole category link set.
type GameUpdate struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Quantity    *int64    `json:"quantity"`
	Description *string   `json:"description"`
	ReleaseDate *string   `json:"release_date"`
	IsDigital   *bool     `json:"is_digital"`
	AgeCategory *string   `json:"age_category"`
	PlatformID  *uint64   `json:"platform_id"`
	Categories  *[]uint64 `json:"categories_id"`
}

// Update applies a partial update and, when categories are provided,
// relinks them, all in one batch. Returns ErrNotFound when the game
// does not exist.
func (r *GameRepo) Update(ctx context.Context, id uint64, u GameUpdate) error {
	var set setBuilder
	if u.Name != nil {
		set.add("name", *u.Name)
	}
	if u.Price != nil {
		set.add("price", *u.Price)
	}
	if u.Quantity != nil {
		set.add("quantity", *u.Quantity)
	}
	if u.Description != nil {
		set.add("description", *u.Description)
	}
	if u.ReleaseDate != nil {
		set.add("release_date", *u.ReleaseDate)
	}
	if u.IsDigital != nil {
		set.add("is_digital", *u.IsDigital)
	}
	if u.AgeCategory != nil {
		set.add("age_category", *u.AgeCategory)
	}
	if u.PlatformID != nil {
		set.add("platform_id", *u.PlatformID)
	}
	if set.empty() && u.Categories == nil {
		return nil
	}

	// Existence is checked up front so an update that only relinks
	// categories still reports a missing game.
	var exists uint64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM games WHERE id = ?`, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}

	var queries []string
	var params [][]any
	if !set.empty() {
		clause, args := set.clause()
		queries = append(queries, `UPDATE games SET `+clause+` WHERE id = ?`)
		params = append(params, append(args, id))
	}
	if u.Categories != nil {
		queries = append(queries, `DELETE FROM games_categories WHERE game_id = ?`)
		params = append(params, []any{id})
		for _, c := range *u.Categories {
			queries = append(queries, `INSERT INTO games_categories (game_id, category_id) VALUES (?, ?)`)
			params = append(params, []any{id, c})
		}
	}
	if err := database.RunBatch(ctx, r.db, queries, params); err != nil {
		if isForeignKeyViolation(err) {
			// The new platform or a relinked category does not exist.
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Delete removes the game together with its category links and license
// keys in one batch. Returns ErrNotFound when the game does not exist.
func (r *GameRepo) Delete(ctx context.Context, id uint64) error {
	var exists uint64
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM games WHERE id = ?`, id).Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	queries := []string{
		`DELETE FROM games_categories WHERE game_id = ?`,
		`DELETE FROM games_keys WHERE game_id = ?`,
		`DELETE FROM games WHERE id = ?`,
	}
	params := [][]any{{id}, {id}, {id}}
	if err := database.RunBatch(ctx, r.db, queries, params); err != nil {
		if isForeignKeyViolation(err) {
			// Sold keys or order lines still reference the game.
			return ErrForbidden
		}
		return err
	}
	return nil
}
