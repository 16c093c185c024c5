package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payhere_service/internal/adapter/http/handlers/mocks"
	"payhere_service/internal/domain/entities"
	"payhere_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sessionRouter(h *PaymentSessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/store/payment-sessions", h.Initiate)
	r.GET("/v1/store/payment-sessions/:session_id", h.Get)
	r.POST("/v1/store/payment-sessions/:session_id/authorize", h.Authorize)
	return r
}

func TestPaymentSessionHandler_Initiate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		for _, body := range []string{"{", `{"amount":100}`, `{"cart_id":"cart_1","amount":-1}`} {
			req := httptest.NewRequest(http.MethodPost, "/v1/store/payment-sessions", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		uc.EXPECT().Initiate(gomock.Any(), "cart_1", int64(1099), "buyer@test.com").
			Return(entities.SessionData{"id": "payhere_cart_1", "hash": "ABC", "amount": "10.99"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payment-sessions",
			bytes.NewBufferString(`{"cart_id":"cart_1","amount":1099,"email":"buyer@test.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			SessionData map[string]any `json:"session_data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.SessionData["hash"] != "ABC" || body.SessionData["id"] != "payhere_cart_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("processor unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		perr := &entities.ProcessorError{Message: "An error occurred in initiatePayment", Code: "unauthorized", Err: usecase.ErrUnauthorized}
		uc.EXPECT().Initiate(gomock.Any(), "cart_1", int64(0), "").Return(nil, perr)

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payment-sessions", bytes.NewBufferString(`{"cart_id":"cart_1","amount":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "initiatePayment") {
			t.Fatalf("expected 401 with processor message, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentSessionHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PaymentSession{}, usecase.ErrPaymentSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/store/payment-sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "payhere_cart_1").Return(entities.PaymentSession{
			ID: "payhere_cart_1", CartID: "cart_1", Status: entities.PaymentSessionStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/store/payment-sessions/payhere_cart_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "pending" || body["cart_id"] != "cart_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentSessionHandler_Authorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unauthorized", usecase.ErrUnauthorized, http.StatusUnauthorized},
		{"not found", usecase.ErrPaymentSessionNotFound, http.StatusNotFound},
		{"not implemented", &entities.ProcessorError{Message: "An error occurred in cancelPayment", Err: usecase.ErrNotImplemented}, http.StatusNotImplemented},
		{"store failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
			r := sessionRouter(NewPaymentSessionHandler(uc))

			uc.EXPECT().Authorize(gomock.Any(), "payhere_cart_1").Return(entities.PaymentSession{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/store/payment-sessions/payhere_cart_1/authorize", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSessionUseCase(ctrl)
		r := sessionRouter(NewPaymentSessionHandler(uc))

		uc.EXPECT().Authorize(gomock.Any(), "payhere_cart_1").Return(entities.PaymentSession{
			ID: "payhere_cart_1", Status: entities.PaymentSessionStatusAuthorized,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payment-sessions/payhere_cart_1/authorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"authorized"`) {
			t.Fatalf("expected 200 authorized, got %d %s", w.Code, w.Body.String())
		}
	})
}
