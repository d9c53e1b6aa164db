package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInstallationToken(t *testing.T) {
	_, pemBytes := testKey(t)

	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"ghs_installation","expires_at":"2030-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	token, err := InstallationToken(context.Background(), AppConfig{
		AppID:          7,
		InstallationID: 42,
		PrivateKey:     pemBytes,
		BaseURL:        server.URL + "/",
	})
	if err != nil {
		t.Fatalf("InstallationToken() error = %v", err)
	}
	if token != "ghs_installation" {
		t.Errorf("token = %q, want ghs_installation", token)
	}
	if gotPath != "/api/v3/app/installations/42/access_tokens" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.HasPrefix(gotAuth, "Bearer ey") {
		t.Errorf("Authorization = %q, want Bearer JWT", gotAuth)
	}
}

func TestInstallationToken_Refused(t *testing.T) {
	_, pemBytes := testKey(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"A JSON web token could not be decoded"}`))
	}))
	defer server.Close()

	_, err := InstallationToken(context.Background(), AppConfig{
		AppID:          7,
		InstallationID: 42,
		PrivateKey:     pemBytes,
		BaseURL:        server.URL + "/",
	})
	if !errors.Is(err, ErrTokenExchange) {
		t.Errorf("error = %v, want ErrTokenExchange", err)
	}
}

func TestInstallationToken_InvalidConfig(t *testing.T) {
	_, err := InstallationToken(context.Background(), AppConfig{AppID: 7})
	if !errors.Is(err, ErrInvalidAppConfig) {
		t.Errorf("error = %v, want ErrInvalidAppConfig", err)
	}
}
