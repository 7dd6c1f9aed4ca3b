package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apptask/backend/config"
	"github.com/apptask/backend/internal/infra/db/dbtest"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Redis.URL = ""
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, MaxRequests: 1000, Window: time.Minute}
	cfg.I18n.DefaultLocale = "en"

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	injector, err := NewInjector(ctx, cfg, dbtest.Open(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to create injector: %v", err)
	}
	t.Cleanup(func() { _ = injector.Close() })

	return injector.Router.Setup(cfg.Server.Environment)
}

func call(t *testing.T, engine *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w.Code, decoded
}

func TestBalanceFlow(t *testing.T) {
	engine := newTestEngine(t)

	status, body := call(t, engine, http.MethodPost, "/api/v1/users", `{"username":"bob","fullName":"Bob"}`)
	if status != http.StatusCreated || body["id"] != float64(1) {
		t.Fatalf("expected user 1 to be created, got %d %v", status, body)
	}

	for _, amount := range []string{"50.00", "25.00"} {
		status, body = call(t, engine, http.MethodPost, "/api/v1/user-payment-transaction", `{"userId":1,"amount":"`+amount+`"}`)
		if status != http.StatusCreated {
			t.Fatalf("expected payment to be created, got %d %v", status, body)
		}
	}

	status, _ = call(t, engine, http.MethodPut, "/api/v1/user-payment-transaction/2", `{"amount":"40.00"}`)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}

	_, body = call(t, engine, http.MethodGet, "/api/v1/users/1", "")
	if body["balance"] != "90.00" {
		t.Errorf("expected balance 90.00, got %v", body["balance"])
	}
}

func TestRoutesAnswerWithLocalizedErrors(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantCode   float64
	}{
		{name: "unknown transaction", method: http.MethodGet, path: "/api/v1/transactions/5", wantStatus: 400, wantCode: 102},
		{name: "unknown item", method: http.MethodDelete, path: "/api/v1/transaction-item/5", wantStatus: 400, wantCode: 105},
		{name: "unknown payment", method: http.MethodGet, path: "/api/v1/user-payment-transaction/5", wantStatus: 400, wantCode: 106},
		{name: "history of unknown user", method: http.MethodGet, path: "/api/v1/user-payment-transaction/payment-history/5", wantStatus: 400, wantCode: 100},
		{name: "malformed body", method: http.MethodPost, path: "/api/v1/category", body: `{"name":`, wantStatus: 400, wantCode: 107},
		{name: "empty bulk delete", method: http.MethodPost, path: "/api/v1/product/bulk-delete", body: `{"ids":[]}`, wantStatus: 400, wantCode: 107},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, engine, tt.method, tt.path, tt.body)
			if status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d (%v)", tt.wantStatus, status, body)
			}
			if body["code"] != tt.wantCode {
				t.Errorf("expected code %v, got %v", tt.wantCode, body["code"])
			}
			if msg, _ := body["message"].(string); msg == "" {
				t.Error("expected a localized message")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(t)

	status, body := call(t, engine, http.MethodGet, "/health", "")
	if status != http.StatusOK || body["database"] != "connected" {
		t.Errorf("expected healthy database, got %d %v", status, body)
	}
}
