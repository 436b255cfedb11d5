package model

// Roles recognized by the API. Every user carries exactly one of them
// in the `users.role` column and in the role claim of issued tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application user record as stored in the `users`
// table. The json tags are omitted because these structs are used by
// the repository layer; handlers define separate response types.
type User struct {
	ID           uint64 // users.id
	Name         string // users.name
	Email        string // users.email
	Role         string // users.role
	PasswordHash string // users.password_hash
	Salt         string // users.salt
}

// Category is a row in the `categories` reference table. Games link to
// categories through the games_categories join table.
type Category struct {
	ID   uint64 // categories.id
	Name string // categories.name
}

// Platform is a row in the `platforms` reference table. Each game
// references exactly one platform.
type Platform struct {
	ID   uint64 // platforms.id
	Name string // platforms.name
}
