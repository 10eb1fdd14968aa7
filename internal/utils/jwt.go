package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AnonRole is the role claim carried by a backend's anonymous-tier key.
const AnonRole = "anon"

// ErrMalformedKey is returned by ParseBackendKey when the key is not a JWT.
var ErrMalformedKey = errors.New("malformed backend key")

// BackendKeyClaims holds the claims of a JWT-shaped backend access key.
//
// Hosted backends issue anonymous keys as JWTs carrying a "role" claim
// ("anon" for the public tier, "service_role" for the privileged one) and a
// "ref" claim naming the project.
type BackendKeyClaims struct {
	Role string `json:"role"`
	Ref  string `json:"ref"`
	jwt.RegisteredClaims
}

// LooksLikeJWT reports whether key has the three dot separated segments of
// a compact JWT. Opaque keys (e.g. "sb_publishable_...") return false.
func LooksLikeJWT(key string) bool {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// ParseBackendKey decodes the claims of a JWT-shaped backend key without
// verifying its signature; the signing secret belongs to the backend.
//
// Returns [ErrMalformedKey] (wrapped) when the key cannot be decoded.
//
// Example usage:
//
//	claims, err := utils.ParseBackendKey(cfg.Backend.Key)
//	if err == nil && claims.Role != utils.AnonRole {
//	    // refuse to hand a privileged key to clients
//	}
func ParseBackendKey(key string) (BackendKeyClaims, error) {
	var claims BackendKeyClaims
	if _, _, err := jwt.NewParser().ParseUnverified(key, &claims); err != nil {
		return BackendKeyClaims{}, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return claims, nil
}

// Expired reports whether the key carries an exp claim earlier than now.
// Keys without exp never expire.
func (c BackendKeyClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}

// hostedProjectDomains are the domains under which hosted projects are
// served as "<ref>.<domain>".
var hostedProjectDomains = []string{".supabase.co", ".supabase.in"}

// MatchesURL reports whether the ref claim is consistent with the backend
// URL. The ref is only compared for hosted project hosts; keys without ref,
// custom domains, proxies and local hosts always match.
func (c BackendKeyClaims) MatchesURL(rawURL string) bool {
	if c.Ref == "" {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, domain := range hostedProjectDomains {
		if project, ok := strings.CutSuffix(host, domain); ok {
			return project == strings.ToLower(c.Ref)
		}
	}

	return true
}
