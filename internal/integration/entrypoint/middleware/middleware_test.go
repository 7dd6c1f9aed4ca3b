package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/integration/entrypoint/dto"
	"github.com/apptask/backend/internal/integration/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(t *testing.T, store RateLimitStore, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()

	bundle, err := i18n.NewBundle("en")
	if err != nil {
		t.Fatalf("failed to create bundle: %v", err)
	}

	engine := gin.New()
	engine.Use(
		RequestID(),
		AccessLog(discardLogger()),
		Locale(bundle),
		ErrorHandler(bundle, discardLogger()),
	)
	if store != nil {
		engine.Use(NewRateLimiter(store, true, discardLogger()).Middleware())
	}
	engine.GET("/test", handler)
	return engine
}

func doRequest(engine *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		language    string
		wantStatus  int
		wantCode    int
		wantMessage string
	}{
		{
			name:        "domain error in english",
			err:         domainerror.NewUserNotFoundError(5),
			wantStatus:  http.StatusBadRequest,
			wantCode:    100,
			wantMessage: "User with id 5 was not found",
		},
		{
			name:        "wrapped domain error in russian",
			err:         fmt.Errorf("outer: %w", domainerror.NewProductNotFoundError(9)),
			language:    "ru-RU,ru;q=0.9",
			wantStatus:  http.StatusBadRequest,
			wantCode:    104,
			wantMessage: "Товар с id 9 не найден",
		},
		{
			name:        "unexpected error",
			err:         errors.New("disk on fire"),
			language:    "uz",
			wantStatus:  http.StatusInternalServerError,
			wantCode:    500,
			wantMessage: "Serverda ichki xatolik",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, nil, func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			w := doRequest(engine, map[string]string{"Accept-Language": tt.language})

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tt.wantCode || body.Message != tt.wantMessage {
				t.Errorf("expected {%d %q}, got {%d %q}", tt.wantCode, tt.wantMessage, body.Code, body.Message)
			}
		})
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	engine := newEngine(t, nil, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
		_ = c.Error(errors.New("late error"))
	})

	w := doRequest(engine, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	engine := newEngine(t, nil, func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})

	w := doRequest(engine, map[string]string{RequestIDHeader: "abc-123"})
	if w.Header().Get(RequestIDHeader) != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("expected caller request id to be kept, got %q", w.Header().Get(RequestIDHeader))
	}

	w = doRequest(engine, nil)
	if len(w.Header().Get(RequestIDHeader)) != 36 {
		t.Errorf("expected a generated uuid, got %q", w.Header().Get(RequestIDHeader))
	}
}

type fakeStore struct {
	allowed bool
	err     error
}

func (f *fakeStore) Allow(context.Context, string) (bool, error) {
	return f.allowed, f.err
}

func TestRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		store      *fakeStore
		wantStatus int
	}{
		{name: "allowed", store: &fakeStore{allowed: true}, wantStatus: http.StatusOK},
		{name: "limited", store: &fakeStore{allowed: false}, wantStatus: http.StatusTooManyRequests},
		{name: "store down lets requests through", store: &fakeStore{err: errors.New("redis down")}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, tt.store, func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := doRequest(engine, nil)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
