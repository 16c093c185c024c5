package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"payhere_service/internal/adapter/http/handlers"
	"payhere_service/internal/adapter/http/handlers/mocks"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var testHTTPConfig = config.HTTPConfig{
	Port:      8080,
	StoreCORS: []string{"http://localhost:8000"},
	AdminCORS: []string{"http://localhost:7001", "localhost:9000"},
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockICartCompletionUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cart := mocks.NewMockICartCompletionUseCase(ctrl)
	h := Handlers{
		Notification: handlers.NewPayhereNotificationHandler(mocks.NewMockIPayhereNotificationUseCase(ctrl)),
		Session:      handlers.NewPaymentSessionHandler(mocks.NewMockIPaymentSessionUseCase(ctrl)),
		Cart:         handlers.NewCartHandler(cart),
	}
	return NewRouter(testHTTPConfig, h), cart
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, err := uuid.Parse(w.Header().Get(HeaderRequestID)); err != nil {
		t.Fatalf("expected generated request id, got %q", w.Header().Get(HeaderRequestID))
	}
}

func TestRouter_RequestID(t *testing.T) {
	r, _ := newTestRouter(t)
	supplied := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, supplied)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != supplied {
		t.Fatalf("expected supplied request id, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got == "not-a-uuid" || got == "" {
		t.Fatalf("expected replaced request id, got %q", got)
	}
}

func TestRouter_CORS(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:8000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8000" {
		t.Fatalf("expected store origin allowed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestRouter_StoreRoutes(t *testing.T) {
	r, cart := newTestRouter(t)
	cart.EXPECT().Complete(gomock.Any(), "cart_1", "key-1").Return(usecase.ErrNotImplemented)

	req := httptest.NewRequest(http.MethodPost, "/v1/store/carts/cart_1/complete", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
}

func TestRouter_Swagger(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCorsOrigins(t *testing.T) {
	got := corsOrigins([]string{"http://localhost:8000/", "https://shop.example.com", "localhost:9000", "*.example.com"})
	if len(got) != 2 || got[0] != "http://localhost:8000" || got[1] != "https://shop.example.com" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
