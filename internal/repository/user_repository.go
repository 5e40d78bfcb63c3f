package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/event-hub/internal/model"
)

// UserRepo persists rows of the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and fills in the generated ID. The password must
// already be hashed by the caller; this layer stores bytes, nothing more.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, department, year, passout_year, roll, hours) VALUES (?,?,?,?,?,?,?,?)",
		u.Name, u.Email, u.PasswordHash, string(u.Department), u.Year, u.PassoutYear, u.Roll, u.Hours)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,department,year,passout_year,roll,hours,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Department, &u.Year, &u.PassoutYear, &u.Roll, &u.Hours, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,department,year,passout_year,roll,hours,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Department, &u.Year, &u.PassoutYear, &u.Roll, &u.Hours, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
