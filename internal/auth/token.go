package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalidToken covers every verification failure: bad structure, bad
// signature, undecodable payload, expiry. Callers only need the yes/no.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload.
type Claims struct {
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// Codec issues and verifies self-contained session tokens of the form
// <base64url-payload>.<base64url-signature>. The server keeps no session
// state; the signature alone proves the token was issued here.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

func (c *Codec) sign(payloadB64 string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payloadB64))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Issue returns a fresh token valid for ttl.
func (c *Codec) Issue(ttl time.Duration) (string, error) {
	now := c.now().Unix()
	b, err := json.Marshal(Claims{IssuedAt: now, ExpiresAt: now + int64(ttl/time.Second)})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + c.sign(payload), nil
}

// Verify checks structure, signature and expiry. The signature comparison
// runs in constant time; any mutation of payload or signature fails.
func (c *Codec) Verify(token string) (*Claims, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok || payload == "" || sig == "" {
		return nil, ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(payload))) {
		return nil, ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == 0 || c.now().Unix() > claims.ExpiresAt {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// SafeEqual compares two strings in constant time. Unequal lengths fail
// immediately; equal-length inputs are compared without short-circuiting.
func SafeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
