package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Save(ctx, "sid-1", 42, time.Minute); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	userID, ok, err := s.Lookup(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || userID != 42 {
		t.Fatalf("Lookup = (%d, %v), want (42, true)", userID, ok)
	}
}

func TestMemoryStoreMissingSession(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	_, ok, err := s.Lookup(context.Background(), "no-such-sid")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if ok {
		t.Fatalf("expected missing session, got a hit")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.Save(ctx, "sid-1", 7, -time.Second); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	_, ok, err := s.Lookup(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if ok {
		t.Fatalf("expired session still resolves")
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.Save(ctx, "sid-1", 7, time.Minute); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := s.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	// Deleting again must not fail
	if err := s.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
	if _, ok, _ := s.Lookup(ctx, "sid-1"); ok {
		t.Fatalf("deleted session still resolves")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := signToken("sid-abc", "super-secret", time.Hour)
	if err != nil {
		t.Fatalf("signToken error: %v", err)
	}
	sid, err := parseToken(tok, "super-secret")
	if err != nil {
		t.Fatalf("parseToken error: %v", err)
	}
	if sid != "sid-abc" {
		t.Fatalf("session id mismatch: got %q want %q", sid, "sid-abc")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := signToken("sid-abc", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("signToken error: %v", err)
	}
	if _, err := parseToken(tok, "wrong-secret"); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	tok, err := signToken("sid-abc", "secret", -time.Second)
	if err != nil {
		t.Fatalf("signToken error: %v", err)
	}
	if _, err := parseToken(tok, "secret"); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	if _, err := parseToken("not.a.jwt", "secret"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
