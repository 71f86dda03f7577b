package listings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_BearerHeaderSourcedPerCall(t *testing.T) {
	var got []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	token := "first"
	config := DefaultConfig().
		WithBaseURL(server.URL).
		WithTokens(func() string { return token })
	client := NewClient(config, nil)

	if _, err := client.Communities.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// A re-login mid-session must be picked up by the next call.
	token = "second"
	if _, err := client.Communities.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// And a logout must drop the header entirely.
	token = ""
	if _, err := client.Communities.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"Bearer first", "Bearer second", ""}
	for i, header := range want {
		if got[i] != header {
			t.Errorf("call %d Authorization = %q, want %q", i, got[i], header)
		}
	}
}

func TestClient_APIErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"backend message preferred", 404, `{"message":"community not found"}`, "community not found"},
		{"status text fallback", 500, "not json at all", "Internal Server Error"},
		{"empty body", 403, "", "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
			_, err := client.Communities.Get(context.Background(), 1)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if IsNetwork(err) {
				t.Error("HTTP error misclassified as network error")
			}
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	// A server that is immediately closed guarantees a refused connection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(DefaultConfig().WithBaseURL(url), nil)
	_, err := client.Apartments.List(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
	if !IsNetwork(err) {
		t.Error("IsNetwork() = false for refused connection")
	}
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantToken string
		wantErr   error
	}{
		{"jwt field", `{"jwt":"tok-a"}`, "tok-a", nil},
		{"token field", `{"token":"tok-b"}`, "tok-b", nil},
		{"jwt preferred over token", `{"jwt":"tok-a","token":"tok-b"}`, "tok-a", nil},
		{"neither field", `{"status":"ok"}`, "", ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/login" {
					t.Errorf("path = %s, want /api/auth/login", r.URL.Path)
				}
				var req map[string]string
				json.NewDecoder(r.Body).Decode(&req)
				if req["username"] != "alice" || req["password"] != "s3cret" {
					t.Errorf("credentials = %v", req)
				}
				w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
			token, err := client.Login(context.Background(), "alice", "s3cret")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestApartmentGateway_BatchPayloads(t *testing.T) {
	var (
		gotPath string
		gotBody []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
	title := "Loft"
	records := []ApartmentUpload{{Title: &title, CommunityID: float64(3)}}

	if err := client.Apartments.BatchCreateWithCommunity(context.Background(), records); err != nil {
		t.Fatalf("BatchCreateWithCommunity() error = %v", err)
	}
	if gotPath != "/api/apartments/batch/create-with-community" {
		t.Errorf("path = %s", gotPath)
	}
	var envelope struct {
		Apartments []json.RawMessage `json:"apartments"`
	}
	if err := json.Unmarshal(gotBody, &envelope); err != nil || len(envelope.Apartments) != 1 {
		t.Errorf("body = %s, want {\"apartments\": [1 record]}", gotBody)
	}

	if err := client.Apartments.BatchByCommunity(context.Background(), float64(3), records); err != nil {
		t.Fatalf("BatchByCommunity() error = %v", err)
	}
	if gotPath != "/api/apartments/batch/3" {
		t.Errorf("path = %s, want /api/apartments/batch/3", gotPath)
	}

	// Non-numeric passthrough ids reach the URL untouched.
	if err := client.Apartments.BatchByCommunity(context.Background(), "north-tower", records); err != nil {
		t.Fatalf("BatchByCommunity() error = %v", err)
	}
	if gotPath != "/api/apartments/batch/north-tower" {
		t.Errorf("path = %s, want /api/apartments/batch/north-tower", gotPath)
	}
}

func TestUserGateway_Paths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
	ctx := context.Background()

	client.Users.Register(ctx, RegisterRequest{Username: "u", Password: "p"})
	client.Users.AdminRegister(ctx, AdminRegisterRequest{Username: "u", Password: "p", Roles: []string{"ADMIN"}})
	client.Users.ResetPassword(ctx, 7, "newpass")

	want := []string{
		"POST /api/users/register",
		"POST /api/users/adminregistration",
		"POST /api/users/7/reset-password",
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("call %d = %s, want %s", i, paths[i], p)
		}
	}
}
