package http

import (
	"net/http"
	"testing"

	"jar-rating/internal/service"
)

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	pair := srv.loginTokens(t)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.ExpiresIn <= 0 {
		t.Fatalf("expected positive expires_in, got %d", pair.ExpiresIn)
	}
}

func TestLogin_WrongKey(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/auth/login", map[string]string{"admin_key": "wrong"}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLogin_MissingKey(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/auth/login", map[string]string{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRefreshRotation(t *testing.T) {
	srv := newTestServer(t)
	pair := srv.loginTokens(t)

	rec := srv.do(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": pair.RefreshToken}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var refreshed service.TokenPair
	decodeBody(t, rec, &refreshed)
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatalf("expected refreshed tokens")
	}

	// El refresh token viejo quedó revocado por la rotación.
	rec = srv.do(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": pair.RefreshToken}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for reused refresh token, got %d", rec.Code)
	}
}
