package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// TokenRepo persists session tokens. User and admin tokens live in
// separate tables with identical shapes, so one implementation is
// parameterized by table and owner column. The token column carries a
// unique index; inserts that collide surface ErrTokenExists so the
// issuer can regenerate and retry.
type TokenRepo struct {
	DB       *sql.DB
	table    string
	ownerCol string
}

func NewUserTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{DB: db, table: "user_tokens", ownerCol: "user_id"}
}

func NewAdminTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{DB: db, table: "admin_tokens", ownerCol: "admin_id"}
}

// Store inserts a token row for the given owner.
func (r *TokenRepo) Store(ctx context.Context, ownerID uint64, token string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO "+r.table+" ("+r.ownerCol+", token, expires_at) VALUES (?,?,?)",
		ownerID, token, expiresAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrTokenExists
		}
		return err
	}
	return nil
}

// DeleteByToken removes the row matching the exact token string. A miss
// is an error: a second logout with the same token must not succeed.
func (r *TokenRepo) DeleteByToken(ctx context.Context, token string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+r.table+" WHERE token=?", token)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTokenNotFound
	}
	return nil
}
