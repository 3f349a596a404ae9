package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pfa/internal/config"
	apperrors "pfa/internal/errors"
	"pfa/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: time.Hour})
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogging(), mw)
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": c.GetString(OwnerIDKey), "user": c.GetString(UserIDKey)})
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, _ := decode(t, w)["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func TestOptionalAuthMiddleware(t *testing.T) {
	user := &models.User{Base: models.Base{ID: "0190a0b0-0000-7000-8000-000000000001"}, Email: "a@b.c"}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	t.Run("guest_without_header", func(t *testing.T) {
		w := get(newRouter(OptionalAuthMiddleware(true)), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := decode(t, w)["owner"]; got != models.GuestOwnerID {
			t.Errorf("expected guest owner, got %v", got)
		}
	})

	t.Run("guest_disabled", func(t *testing.T) {
		w := get(newRouter(OptionalAuthMiddleware(false)), "")
		if w.Code != http.StatusUnauthorized || errorCode(t, w) != "UNAUTHORIZED" {
			t.Errorf("expected 401 UNAUTHORIZED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("valid_token", func(t *testing.T) {
		w := get(newRouter(OptionalAuthMiddleware(true)), "Bearer "+token)
		body := decode(t, w)
		if body["owner"] != user.ID || body["user"] != user.ID {
			t.Errorf("expected owner %s, got %v", user.ID, body)
		}
	})

	t.Run("invalid_token_rejected_even_with_guest", func(t *testing.T) {
		w := get(newRouter(OptionalAuthMiddleware(true)), "Bearer not-a-token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		w := get(newRouter(OptionalAuthMiddleware(true)), "Token abc")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("requires_header", func(t *testing.T) {
		w := get(newRouter(AuthMiddleware()), "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: -time.Minute})
		defer config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: time.Hour})

		token, err := GenerateToken(&models.User{Base: models.Base{ID: "u1"}})
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		if _, err := ValidateToken(token); err == nil {
			t.Error("expected expired token to be rejected")
		}
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrValidation) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("db exploded")) })

	t.Run("app_error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
		if w.Code != http.StatusUnprocessableEntity || errorCode(t, w) != "VALIDATION_FAILED" {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unexpected_error_hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
		if w.Code != http.StatusInternalServerError || errorCode(t, w) != "INTERNAL_ERROR" {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRequestLoggingReusesRequestID(t *testing.T) {
	r := newRouter(OptionalAuthMiddleware(true))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	id := "0190a0b0-0000-7000-8000-0000000000aa"
	req.Header.Set(requestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != id {
		t.Errorf("expected request id %s, got %s", id, got)
	}
}
