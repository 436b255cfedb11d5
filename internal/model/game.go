package model

import "time"

// Game represents a product in the store catalog as stored in the
// `games` table. A game is sold either as a box copy or as a digital
// copy. For box games the Quantity column is the displayed stock; for
// digital games the effective stock is the number of unused license
// keys and the column value is ignored.
type Game struct {
	ID          uint64   // games.id
	Name        string   // games.name
	Price       float64  // games.price
	Quantity    int64    // games.quantity
	Description string   // games.description
	ReleaseDate string   // games.release_date
	IsDigital   bool     // games.is_digital
	AgeCategory string   // games.age_category
	PlatformID  uint64   // games.platform_id
	Categories  []uint64 // games_categories.category_id set
}

// LicenseKey models a row in the `games_keys` table. Keys are created
// unused by an administrator and transition to used exactly once, when
// an order line consumes them. A used key can never be deleted.
type LicenseKey struct {
	ID     uint64 // games_keys.id
	GameID uint64 // games_keys.game_id
	Used   bool   // games_keys.used
	GKey   string // games_keys.gkey
}

// StockModel describes how a game's availability is counted: digital
// games are backed by unused license keys, box games by the static
// quantity column. It is the unit returned by inventory lookups during
// order validation.
type StockModel struct {
	IsDigital bool  // whether stock is key-backed
	Quantity  int64 // box stock; only meaningful when !IsDigital
}

// Order is a committed checkout transaction as stored in the
// `users_transactions` table plus its line items. Orders are created
// exactly once per successful checkout and are immutable thereafter; a
// partially validated order is never persisted.
type Order struct {
	ID     uint64      // users_transactions.id
	UserID uint64      // users_transactions.user_id
	Date   time.Time   // users_transactions.date
	Lines  []OrderLine // games_transactions rows belonging to this order
}

// OrderLine is one purchased unit of a single game within an order,
// mirroring the `games_transactions` table. Digital lines reference
// exactly one license key; box lines reference none. The key_id column
// carries a unique index, so no two lines can ever bind the same key.
type OrderLine struct {
	ID                uint64  // games_transactions.id
	UserTransactionID uint64  // games_transactions.user_transaction_id
	GameID            uint64  // games_transactions.game_id
	KeyID             *uint64 // games_transactions.key_id (nullable, unique)
}
