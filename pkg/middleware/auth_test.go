package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type fakeVerifier struct {
	claims *auth.Claims
	err    error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	return f.claims, f.err
}

func TestCookieAuth(t *testing.T) {
	protected := func(t *testing.T, verifier auth.TokenVerifier) (http.Handler, *bool) {
		called := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok || claims == nil {
				t.Error("claims missing from request context")
			}
			w.WriteHeader(http.StatusOK)
		})
		return CookieAuth(verifier, zap.NewNop())(handler), &called
	}

	t.Run("no cookie", func(t *testing.T) {
		handler, called := protected(t, &fakeVerifier{claims: &auth.Claims{Username: "u"}})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/movies/reviews", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if *called {
			t.Error("handler ran without a token")
		}
	})

	t.Run("unrelated cookie only", func(t *testing.T) {
		handler, called := protected(t, &fakeVerifier{claims: &auth.Claims{Username: "u"}})

		req := httptest.NewRequest(http.MethodPost, "/movies/reviews", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if *called {
			t.Error("handler ran without a token cookie")
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, called := protected(t, &fakeVerifier{err: errors.New("token is expired")})

		req := httptest.NewRequest(http.MethodPost, "/movies/reviews", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "bad"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if *called {
			t.Error("handler ran with an invalid token")
		}
	})

	t.Run("valid token", func(t *testing.T) {
		handler, called := protected(t, &fakeVerifier{claims: &auth.Claims{Username: "moviefan"}})

		req := httptest.NewRequest(http.MethodPost, "/movies/reviews", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "good"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if !*called {
			t.Error("handler did not run")
		}
	})
}
