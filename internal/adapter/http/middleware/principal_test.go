package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/tradeledger/internal/domain"
)

func TestPrincipalFromHeader(t *testing.T) {
	var captured domain.Principal
	var found bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, found = domain.PrincipalFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", nil)
	req.Header.Set(UserIDHeader, "user-7")
	rec := httptest.NewRecorder()

	Principal(next).ServeHTTP(rec, req)

	if !found {
		t.Fatal("expected principal in context")
	}
	if captured.UserID != "user-7" {
		t.Fatalf("expected user-7, got %s", captured.UserID)
	}
}

func TestPrincipalMissingHeader(t *testing.T) {
	var found bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = domain.PrincipalFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loans", nil)
	rec := httptest.NewRecorder()

	Principal(next).ServeHTTP(rec, req)

	if found {
		t.Fatal("expected no principal without header")
	}
}
