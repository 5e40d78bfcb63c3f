package model

import "time"

// SessionToken models a row in either `user_tokens` or `admin_tokens`.
// The token column is unique per table; OwnerID references the owning
// user or admin depending on which table the row lives in. The signed
// JWT embeds its own 24h expiry claim while ExpiresAt is set seven days
// out — the stored record only matters for explicit logout, so the
// shorter claim is what actually ends a session.
//
// Fields:
//  ID        – primary key identifier.
//  OwnerID   – owning user or admin.
//  Token     – the signed JWT string, stored verbatim.
//  ExpiresAt – record expiry (issuance + 7 days).
//  CreatedAt – timestamp of creation.
type SessionToken struct {
	ID        uint64    // user_tokens.id / admin_tokens.id
	OwnerID   uint64    // user_tokens.user_id / admin_tokens.admin_id
	Token     string    // unique token column
	ExpiresAt time.Time // expires_at
	CreatedAt time.Time // created_at
}
