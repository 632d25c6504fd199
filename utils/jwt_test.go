package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", "client", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	sub, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("failed to extract claims: %v", err)
	}
	if sub != "user-123" {
		t.Fatalf("expected subject user-123, got %q", sub)
	}
	if role != "client" {
		t.Fatalf("expected role client, got %q", role)
	}
}

func TestExtractClaimsFromToken_RejectsExpired(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", "client", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestExtractClaimsFromToken_RejectsGarbage(t *testing.T) {
	if _, _, err := ExtractClaimsFromToken("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Fatalf("hash must be deterministic")
	}
	if a == HashToken("other-token") {
		t.Fatalf("distinct tokens must not collide")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256 length 64, got %d", len(a))
	}
}
