package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	c := NewCodec([]byte("s3cret"))
	tok, err := c.Issue(12 * time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got := claims.ExpiresAt - claims.IssuedAt; got != 43200 {
		t.Fatalf("expected 12h ttl, got %d seconds", got)
	}
}

func TestVerifyExpired(t *testing.T) {
	c := NewCodec([]byte("s3cret"))
	base := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return base }
	tok, err := c.Issue(time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := c.Verify(tok); err != nil {
		t.Fatalf("token should verify before expiry: %v", err)
	}
	c.now = func() time.Time { return base.Add(time.Hour + time.Second) }
	if _, err := c.Verify(tok); err == nil {
		t.Fatalf("expected failure after expiry")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	c := NewCodec([]byte("s3cret"))
	tok, err := c.Issue(time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	// Flip one bit in every position of the token.
	for i := 0; i < len(tok); i++ {
		if tok[i] == '.' {
			continue
		}
		mutated := tok[:i] + string(tok[i]^1) + tok[i+1:]
		if _, err := c.Verify(mutated); err == nil {
			t.Fatalf("mutation at byte %d verified", i)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewCodec([]byte("one")).Issue(time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewCodec([]byte("two")).Verify(tok); err == nil {
		t.Fatalf("expected failure with wrong secret")
	}
}

func TestVerifyMalformed(t *testing.T) {
	c := NewCodec([]byte("s3cret"))
	for _, tok := range []string{"", ".", "abc", "abc.", ".def", "not-base64!.sig", "a.b.c"} {
		if _, err := c.Verify(tok); err == nil {
			t.Fatalf("malformed token %q verified", tok)
		}
	}
}

func TestVerifyMissingExpiry(t *testing.T) {
	c := NewCodec([]byte("s3cret"))
	// A well-signed payload without an exp claim must not verify.
	payload := "eyJpYXQiOjB9" // {"iat":0}
	tok := payload + "." + c.sign(payload)
	if _, err := c.Verify(tok); err == nil {
		t.Fatalf("token without exp verified")
	}
}

func TestSafeEqual(t *testing.T) {
	if !SafeEqual("abc", "abc") {
		t.Fatalf("equal strings should compare true")
	}
	if SafeEqual("abc", "abd") || SafeEqual("abc", "ab") || SafeEqual("", "x") {
		t.Fatalf("unequal strings compared true")
	}
	if !SafeEqual("", "") {
		t.Fatalf("empty strings should compare true")
	}
}

func TestTokenShape(t *testing.T) {
	tok, err := NewCodec([]byte("s3cret")).Issue(time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if strings.Count(tok, ".") != 1 {
		t.Fatalf("expected payload.signature shape, got %q", tok)
	}
}
