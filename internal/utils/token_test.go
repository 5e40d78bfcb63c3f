package utils

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	payload := TokenPayload{ID: 7, Email: "asha@example.edu", Kind: KindUser}

	token, err := NewSessionToken("secret", payload, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken() error: %v", err)
	}
	got, err := VerifySessionToken("secret", token)
	if err != nil {
		t.Fatalf("VerifySessionToken() error: %v", err)
	}
	if got != payload {
		t.Fatalf("payload = %+v, want %+v", got, payload)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionToken("secret", TokenPayload{ID: 1, Kind: KindAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken() error: %v", err)
	}
	if _, err := VerifySessionToken("other-secret", token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	token, err := NewSessionToken("secret", TokenPayload{ID: 1, Kind: KindUser}, -time.Minute)
	if err != nil {
		t.Fatalf("NewSessionToken() error: %v", err)
	}
	if _, err := VerifySessionToken("secret", token); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := VerifySessionToken("secret", raw); err != ErrInvalidToken {
			t.Fatalf("VerifySessionToken(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2!", 4)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter2!" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword(hash, "hunter2!") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
