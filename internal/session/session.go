package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded JWT payload. Only the fields the UI needs are
// read; the signature is never checked client-side (that is the backend's
// job at every request).
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// DecodeClaims decodes the payload segment of a JWT-shaped token. Returns
// nil on any malformed input rather than an error: an undecodable token is
// simply treated as no session. Tolerates both the standard and URL-safe
// base64 alphabets, with or without padding.
func DecodeClaims(token string) *Claims {
	if token == "" {
		return nil
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithPaddingAllowed())
	if _, _, err := parser.ParseUnverified(token, &claims); err == nil {
		return &claims
	}

	// Strict parse failed; fall back to a lenient segment decode that
	// accepts the standard alphabet and two-segment tokens.
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil
	}
	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil
	}
	var lenient Claims
	if err := json.Unmarshal(payload, &lenient); err != nil {
		return nil
	}
	return &lenient
}

// decodeSegment base64-decodes one token segment, normalizing the URL-safe
// alphabet to standard and re-padding first.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.ReplaceAll(seg, "-", "+")
	seg = strings.ReplaceAll(seg, "_", "/")
	if rem := len(seg) % 4; rem != 0 {
		seg += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(seg)
}

// Session is the read-only projection of the current token's claims.
type Session struct {
	Subject   string
	Roles     []string
	ExpiresAt *time.Time
}

// Manager derives session state on demand from the token held by a Store.
// It never caches: every predicate re-reads the store, so a login or
// logout elsewhere in the process is reflected immediately.
type Manager struct {
	store Store
	now   func() time.Time
}

// NewManager creates a manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewManagerAt creates a manager with an explicit clock, for tests.
func NewManagerAt(store Store, now func() time.Time) *Manager {
	return &Manager{store: store, now: now}
}

// Token returns the raw stored token, or "" when absent. Shaped to plug
// directly into the API client's token source.
func (m *Manager) Token() string {
	token, _ := m.store.Get()
	return token
}

// Current returns the decoded session, or nil when no token is stored or
// the token does not decode.
func (m *Manager) Current() *Session {
	token, ok := m.store.Get()
	if !ok {
		return nil
	}
	claims := DecodeClaims(token)
	if claims == nil {
		return nil
	}
	s := &Session{Subject: claims.Subject, Roles: claims.Roles}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		s.ExpiresAt = &t
	}
	return s
}

// Expired is fail-closed: a missing token, an undecodable token, and a
// token without an exp claim all count as expired.
func (m *Manager) Expired() bool {
	token, _ := m.store.Get()
	claims := DecodeClaims(token)
	if claims == nil || claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Before(m.now())
}

// Authenticated reports whether a live token is present. An expired token
// is evicted from the store as a side effect, so the stale credential is
// never attached to a later request.
func (m *Manager) Authenticated() bool {
	token, ok := m.store.Get()
	if !ok || token == "" {
		return false
	}
	if m.Expired() {
		_ = m.store.Clear()
		return false
	}
	return true
}

// Admin reports whether the decoded role set carries an admin marker.
// The match is intentionally broad and preserved as such: "ADMIN",
// "ROLE_ADMIN", or any role containing "ADMIN" case-insensitively all
// qualify. Advisory only — it gates what the CLI offers, never what the
// backend permits.
func (m *Manager) Admin() bool {
	token, ok := m.store.Get()
	if !ok {
		return false
	}
	claims := DecodeClaims(token)
	if claims == nil {
		return false
	}
	for _, role := range claims.Roles {
		upper := strings.ToUpper(role)
		if upper == "ADMIN" || upper == "ROLE_ADMIN" || strings.Contains(upper, "ADMIN") {
			return true
		}
	}
	return false
}
