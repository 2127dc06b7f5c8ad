package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleethr/internal/domain/auth"
)

func TestAuthMiddlewareSetsUser(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", FHRID: "FHR1", Role: auth.RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var user auth.UserContext
	var ok bool
	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected user in context")
	}
	if user.UserID != "u1" || user.FHRID != "FHR1" || user.Role != auth.RoleEmployee {
		t.Fatalf("user = %+v", user)
	}
}

func TestAuthMiddlewareIgnoresBadToken(t *testing.T) {
	var ok bool
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("invalid token must not populate context")
	}
}

func TestRequireAdmin(t *testing.T) {
	secret := "test-secret"
	next := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	cases := []struct {
		role string
		want int
	}{
		{auth.RoleAdmin, http.StatusOK},
		{auth.RoleHR, http.StatusOK},
		{auth.RoleEmployee, http.StatusForbidden},
		{auth.RolePending, http.StatusForbidden},
	}

	for _, tc := range cases {
		token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Role: tc.role}, time.Hour)
		if err != nil {
			t.Fatalf("token error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		Auth(secret)(http.Handler(RequireAdmin(next))).ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("role %s: status = %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}

func TestRequireAdminAnonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
