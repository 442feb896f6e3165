package auth

import (
	"net/url"
	"strings"
)

// CookieName is the session cookie carried by the browser.
const CookieName = "cav_auth"

// ParseCookies parses a raw Cookie header into a name→value map. Values are
// URL-decoded; later duplicates overwrite earlier ones, matching standard
// cookie semantics.
func ParseCookies(header string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, _ := strings.Cut(part, "=")
		if name == "" {
			continue
		}
		if dec, err := url.PathUnescape(value); err == nil {
			value = dec
		}
		out[name] = value
	}
	return out
}

// IsAuthenticated reports whether the Cookie header carries a valid session
// token. A missing secret, missing cookie or bad token is simply "not
// authenticated"; this never errors out to the caller.
func IsAuthenticated(cookieHeader string, secret []byte) bool {
	if len(secret) == 0 {
		return false
	}
	token := ParseCookies(cookieHeader)[CookieName]
	if token == "" {
		return false
	}
	_, err := NewCodec(secret).Verify(token)
	return err == nil
}
