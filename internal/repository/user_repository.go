package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/railbook/train-booking/internal/model"
	"github.com/railbook/train-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user row, returning its ID.
// The username column carries a UNIQUE constraint, so a concurrent
// registration that slips past Exists still fails here instead of
// producing a duplicate row.
func (r *UserRepo) Create(ctx context.Context, username, password, email string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user (username, password, email) VALUES (?,?,?)",
		username, hash, email)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Exists reports whether a user with the given username is already
// registered.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM user WHERE username=? LIMIT 1", username).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password,email FROM user WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email)
	return u, err
}

// isDuplicate matches unique-constraint violations across the supported
// drivers: SQLite reports "UNIQUE constraint failed", MySQL error 1062.
func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "1062")
}
