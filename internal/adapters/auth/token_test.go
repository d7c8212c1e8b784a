package auth

import (
	"testing"
	"time"
)

func TestJWTIssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue(42, "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestJWTVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("other-secret")

	token, err := issuer.Issue(42, "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestJWTVerify_Expired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	verifier := NewJWTVerifier("test-secret")

	token, err := issuer.Issue(42, "ada@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestJWTVerify_Garbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret")
	if _, err := verifier.Verify("not.a.jwt"); err == nil {
		t.Fatal("expected garbage token to fail verification")
	}
}
