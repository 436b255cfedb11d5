package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Matt444/GameStore--backend/internal/model"
	"github.com/Matt444/GameStore--backend/internal/utils"
)

// UserRepo provides access to the users table. Passwords are stored as
// a bcrypt hash of the salted password together with the salt; the
// plain credential never reaches the database.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// UserRow is the sanitized listing entry; credential columns are never
// exposed.
type UserRow struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// List returns all users without credential material.
func (r *UserRepo) List(ctx context.Context) ([]UserRow, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, email, role FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]UserRow, 0)
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByName fetches the credential row used for login. Returns
// ErrNotFound when no user carries the name.
func (r *UserRepo) GetByName(ctx context.Context, name string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, email, role, password_hash, salt FROM users WHERE name = ? LIMIT 1`,
		name).Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.Salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// GetRole returns the role of the user with the given ID, or
// ErrNotFound.
func (r *UserRepo) GetRole(ctx context.Context, id uint64) (string, error) {
	var role string
	err := r.DB.QueryRowContext(ctx, `SELECT role FROM users WHERE id = ? LIMIT 1`, id).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return role, nil
}

// Create hashes the password with a fresh salt and inserts the user.
// Returns ErrDuplicate when the username is already taken.
func (r *UserRepo) Create(ctx context.Context, name, email, role, password string, bcryptCost int) (uint64, error) {
	name = strings.TrimSpace(name)
	salt, err := utils.NewSalt()
	if err != nil {
		return 0, err
	}
	hash, err := utils.HashPassword(password, salt, bcryptCost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (name, email, role, password_hash, salt) VALUES (?, ?, ?, ?, ?)`,
		name, email, role, hash, salt)
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

// UserUpdate carries the optional fields of a partial user update. A
// provided password is re-hashed with a fresh salt. Role changes are
// rejected by the self-service handler before reaching the repository.
type UserUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// Update applies a partial update to the user. Returns ErrNotFound when
// the user does not exist and ErrDuplicate on a username collision.
func (r *UserRepo) Update(ctx context.Context, id uint64, u UserUpdate, bcryptCost int) error {
	var set setBuilder
	if u.Name != nil {
		set.add("name", strings.TrimSpace(*u.Name))
	}
	if u.Email != nil {
		set.add("email", *u.Email)
	}
	if u.Role != nil {
		set.add("role", *u.Role)
	}
	if u.Password != nil {
		salt, err := utils.NewSalt()
		if err != nil {
			return err
		}
		hash, err := utils.HashPassword(*u.Password, salt, bcryptCost)
		if err != nil {
			return err
		}
		set.add("password_hash", hash)
		set.add("salt", salt)
	}
	if set.empty() {
		return nil
	}
	clause, args := set.clause()
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET `+clause+` WHERE id = ?`, append(args, id)...)
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

// Delete removes the user. Returns ErrNotFound when no row is affected.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			// The user still owns orders.
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
