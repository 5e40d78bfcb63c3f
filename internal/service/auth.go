package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/event-hub/internal/model"
	"github.com/iliyamo/event-hub/internal/repository"
	"github.com/iliyamo/event-hub/internal/utils"
)

// maxTokenRetries bounds the regenerate-and-retry loop on token
// collisions. The collision probability is astronomically small, so
// hitting the cap means something is broken and we fail instead of
// recursing forever.
const maxTokenRetries = 5

// UserStore is the persistence surface the auth service needs for users.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// AdminStore is the persistence surface for admins.
type AdminStore interface {
	Create(ctx context.Context, a *model.Admin) error
	GetByEmail(ctx context.Context, email string) (model.Admin, error)
	GetByID(ctx context.Context, id uint64) (model.Admin, error)
}

// TokenStore persists session token records for one principal kind.
type TokenStore interface {
	Store(ctx context.Context, ownerID uint64, token string, expiresAt time.Time) error
	DeleteByToken(ctx context.Context, token string) error
}

// AuthService owns password hashing, token issuance and revocation for
// both principal kinds. Stores are injected so tests can run against
// in-memory fakes.
type AuthService struct {
	Users       UserStore
	Admins      AdminStore
	UserTokens  TokenStore
	AdminTokens TokenStore
	Secret      string
	TokenTTL    time.Duration // embedded JWT expiry (24h)
	SessionTTL  time.Duration // stored record expiry (7d)
	BcryptCost  int
}

// RegisterUserInput carries the registration fields for a user.
type RegisterUserInput struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Password    string           `json:"password"`
	Department  model.Department `json:"department"`
	Year        int              `json:"year"`
	PassoutYear int              `json:"passoutYear"`
	Roll        int              `json:"roll"`
}

// RegisterAdminInput carries the registration fields for an admin.
type RegisterAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserAuth is the success payload for user register/login.
type UserAuth struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// AdminAuth is the success payload for admin register/login.
type AdminAuth struct {
	Admin model.Admin `json:"admin"`
	Token string      `json:"token"`
}

// RegisterUser hashes the password, creates the user with zero hours and
// issues a session token. A duplicate email surfaces as a 400-class
// domain error with a generic message; the plaintext password is never
// stored or logged.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (UserAuth, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return UserAuth{}, E(KindInvalidInput, "email and password are required")
	}
	if !in.Department.Valid() {
		return UserAuth{}, E(KindInvalidInput, "invalid department")
	}

	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return UserAuth{}, err
	}
	u := model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Department:   in.Department,
		Year:         in.Year,
		PassoutYear:  in.PassoutYear,
		Roll:         in.Roll,
		Hours:        0,
	}
	if err := s.Users.Create(ctx, &u); err != nil {
		if err == repository.ErrEmailExists {
			return UserAuth{}, E(KindDuplicateEmail, "registration failed")
		}
		return UserAuth{}, err
	}

	token, err := s.issueToken(ctx, s.UserTokens, utils.TokenPayload{ID: u.ID, Email: u.Email, Kind: utils.KindUser})
	if err != nil {
		return UserAuth{}, err
	}
	return UserAuth{User: u, Token: token}, nil
}

// RegisterAdmin mirrors RegisterUser for the admin principal kind.
func (s *AuthService) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (AdminAuth, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return AdminAuth{}, E(KindInvalidInput, "email and password are required")
	}

	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return AdminAuth{}, err
	}
	a := model.Admin{Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := s.Admins.Create(ctx, &a); err != nil {
		if err == repository.ErrEmailExists {
			return AdminAuth{}, E(KindDuplicateEmail, "registration failed")
		}
		return AdminAuth{}, err
	}

	token, err := s.issueToken(ctx, s.AdminTokens, utils.TokenPayload{ID: a.ID, Email: a.Email, Kind: utils.KindAdmin})
	if err != nil {
		return AdminAuth{}, err
	}
	return AdminAuth{Admin: a, Token: token}, nil
}

// LoginUser verifies credentials and issues a fresh token. Outstanding
// tokens stay valid; concurrent sessions per principal are allowed.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (UserAuth, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return UserAuth{}, E(KindNotFound, "user not found")
		}
		return UserAuth{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return UserAuth{}, E(KindInvalidCredentials, "invalid password")
	}

	token, err := s.issueToken(ctx, s.UserTokens, utils.TokenPayload{ID: u.ID, Email: u.Email, Kind: utils.KindUser})
	if err != nil {
		return UserAuth{}, err
	}
	return UserAuth{User: u, Token: token}, nil
}

// LoginAdmin mirrors LoginUser for admins.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (AdminAuth, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	a, err := s.Admins.GetByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return AdminAuth{}, E(KindNotFound, "admin not found")
		}
		return AdminAuth{}, err
	}
	if !utils.VerifyPassword(a.PasswordHash, password) {
		return AdminAuth{}, E(KindInvalidCredentials, "invalid password")
	}

	token, err := s.issueToken(ctx, s.AdminTokens, utils.TokenPayload{ID: a.ID, Email: a.Email, Kind: utils.KindAdmin})
	if err != nil {
		return AdminAuth{}, err
	}
	return AdminAuth{Admin: a, Token: token}, nil
}

// LogoutUser deletes the stored token record. A delete-miss is an
// error: a second logout with the same token fails rather than
// succeeding silently. Note the signed JWT itself stays verifiable
// until its exp claim elapses; only the stored record is revoked.
func (s *AuthService) LogoutUser(ctx context.Context, token string) error {
	if err := s.UserTokens.DeleteByToken(ctx, token); err != nil {
		return E(KindRevocationFailed, "failed to logout")
	}
	return nil
}

// LogoutAdmin mirrors LogoutUser for admins.
func (s *AuthService) LogoutAdmin(ctx context.Context, token string) error {
	if err := s.AdminTokens.DeleteByToken(ctx, token); err != nil {
		return E(KindRevocationFailed, "failed to logout")
	}
	return nil
}

// UserByID loads a user for the /me endpoint.
func (s *AuthService) UserByID(ctx context.Context, id uint64) (model.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, E(KindNotFound, "user not found")
		}
		return model.User{}, err
	}
	return u, nil
}

// AdminByID loads an admin for the /me endpoint.
func (s *AuthService) AdminByID(ctx context.Context, id uint64) (model.Admin, error) {
	a, err := s.Admins.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Admin{}, E(KindNotFound, "admin not found")
		}
		return model.Admin{}, err
	}
	return a, nil
}

// issueToken signs a session token and stores its record with a 7-day
// expiry. On a unique-constraint collision the token is re-signed (the
// random jti produces a distinct string) and the insert retried, capped
// at maxTokenRetries.
func (s *AuthService) issueToken(ctx context.Context, store TokenStore, p utils.TokenPayload) (string, error) {
	var lastErr error
	for i := 0; i < maxTokenRetries; i++ {
		token, err := utils.NewSessionToken(s.Secret, p, s.TokenTTL)
		if err != nil {
			return "", err
		}
		expiresAt := time.Now().UTC().Add(s.SessionTTL)
		err = store.Store(ctx, p.ID, token, expiresAt)
		if err == nil {
			return token, nil
		}
		if err != repository.ErrTokenExists {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}
