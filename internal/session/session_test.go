package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, sub string, roles []string, exp *time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub}
	if roles != nil {
		claims["roles"] = roles
	}
	if exp != nil {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func future() *time.Time {
	t := time.Now().Add(time.Hour)
	return &t
}

func past() *time.Time {
	t := time.Now().Add(-time.Hour)
	return &t
}

func TestDecodeClaims(t *testing.T) {
	token := mintToken(t, "alice", []string{"ADMIN", "USER"}, future())

	claims := DecodeClaims(token)
	if claims == nil {
		t.Fatal("DecodeClaims() = nil for valid token")
	}
	if claims.Subject != "alice" {
		t.Errorf("subject = %q, want alice", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "ADMIN" {
		t.Errorf("roles = %v, want [ADMIN USER]", claims.Roles)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected exp claim")
	}
}

func TestDecodeClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"bad payload", "aGVhZGVy.!!!.c2ln"},
		{"payload not json", "aGVhZGVy." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".c2ln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeClaims(tt.token); got != nil {
				t.Errorf("DecodeClaims(%q) = %+v, want nil", tt.token, got)
			}
		})
	}
}

// Tokens minted elsewhere may use the standard base64 alphabet with
// padding; the decoder has to accept those alongside strict raw-url JWTs.
func TestDecodeClaims_StandardAlphabet(t *testing.T) {
	// ">>>???" forces '+' and '/' into the standard-alphabet encoding.
	payload := `{"sub":">>>???","roles":["ADMIN"],"exp":9999999999}`
	header := `{"alg":"HS256","typ":"JWT"}`
	token := base64.StdEncoding.EncodeToString([]byte(header)) + "." +
		base64.StdEncoding.EncodeToString([]byte(payload)) + ".sig"

	claims := DecodeClaims(token)
	if claims == nil {
		t.Fatal("DecodeClaims() = nil for standard-alphabet token")
	}
	if claims.Subject != ">>>???" {
		t.Errorf("subject = %q, want >>>???", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ADMIN" {
		t.Errorf("roles = %v, want [ADMIN]", claims.Roles)
	}
}

func TestManager_Expired(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"no token", "", true},
		{"undecodable", "garbage", true},
		{"no exp claim", "", true}, // token filled in below
		{"future exp", "", false},
		{"past exp", "", true},
	}
	tests[2].token = mintToken(t, "alice", []string{"USER"}, nil)
	tests[3].token = mintToken(t, "alice", []string{"USER"}, future())
	tests[4].token = mintToken(t, "alice", []string{"USER"}, past())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			if tt.token != "" {
				store.Save(tt.token)
			}
			m := NewManager(store)
			if got := m.Expired(); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManager_Authenticated_EvictsExpired(t *testing.T) {
	store := NewMemStore()
	store.Save(mintToken(t, "alice", []string{"USER"}, past()))
	m := NewManager(store)

	if m.Authenticated() {
		t.Error("Authenticated() = true for expired token")
	}
	if _, ok := store.Get(); ok {
		t.Error("expired token was not evicted from the store")
	}
}

func TestManager_Authenticated(t *testing.T) {
	store := NewMemStore()
	m := NewManager(store)
	if m.Authenticated() {
		t.Error("Authenticated() = true with no token")
	}

	store.Save(mintToken(t, "alice", []string{"USER"}, future()))
	if !m.Authenticated() {
		t.Error("Authenticated() = false for live token")
	}
	if _, ok := store.Get(); !ok {
		t.Error("live token must not be evicted")
	}
}

func TestManager_Admin(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  bool
	}{
		{"exact ADMIN", []string{"ADMIN"}, true},
		{"prefixed ROLE_ADMIN", []string{"ROLE_ADMIN"}, true},
		{"substring match", []string{"super-ADMIN-x"}, true},
		{"lower case", []string{"admin"}, true},
		{"plain user", []string{"USER"}, false},
		{"empty role set", []string{}, false},
		{"no roles claim", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			store.Save(mintToken(t, "alice", tt.roles, future()))
			m := NewManager(store)
			if got := m.Admin(); got != tt.want {
				t.Errorf("Admin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManager_Admin_NoOrBadToken(t *testing.T) {
	m := NewManager(NewMemStore())
	if m.Admin() {
		t.Error("Admin() = true with no token")
	}

	store := NewMemStore()
	store.Save("undecodable")
	m = NewManager(store)
	if m.Admin() {
		t.Error("Admin() = true for undecodable token")
	}
}

func TestManager_Current(t *testing.T) {
	store := NewMemStore()
	m := NewManager(store)
	if m.Current() != nil {
		t.Error("Current() != nil with no token")
	}

	exp := future()
	store.Save(mintToken(t, "alice", []string{"ADMIN"}, exp))
	sess := m.Current()
	if sess == nil {
		t.Fatal("Current() = nil for valid token")
	}
	if sess.Subject != "alice" {
		t.Errorf("subject = %q, want alice", sess.Subject)
	}
	if len(sess.Roles) != 1 || sess.Roles[0] != "ADMIN" {
		t.Errorf("roles = %v, want [ADMIN]", sess.Roles)
	}
	if sess.ExpiresAt == nil || sess.ExpiresAt.Unix() != exp.Unix() {
		t.Errorf("expiresAt = %v, want %v", sess.ExpiresAt, exp)
	}
}

func TestManager_FixedClock(t *testing.T) {
	exp := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	token := mintToken(t, "alice", []string{"USER"}, &exp)

	store := NewMemStore()
	store.Save(token)

	before := NewManagerAt(store, func() time.Time { return exp.Add(-time.Minute) })
	if before.Expired() {
		t.Error("Expired() = true one minute before exp")
	}

	after := NewManagerAt(store, func() time.Time { return exp.Add(time.Minute) })
	if !after.Expired() {
		t.Error("Expired() = false one minute after exp")
	}
}
