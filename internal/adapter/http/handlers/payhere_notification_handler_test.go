package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"payhere_service/internal/adapter/http/handlers/mocks"
	"payhere_service/internal/domain/entities"
	"payhere_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func notificationRouter(h *PayhereNotificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/store/payhere", h.NotifySession)
	r.POST("/v1/store/payhere/:session_id", h.NotifyCart)
	return r
}

func notificationForm() url.Values {
	return url.Values{
		"merchant_id":      {"1226131"},
		"order_id":         {"cart_1"},
		"payment_id":       {"320"},
		"payhere_amount":   {"10.99"},
		"payhere_currency": {"LKR"},
		"status_code":      {"2"},
		"md5sig":           {"CC3877A0342F11B54FB2F0F2CA555ECB"},
	}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayhereNotificationHandler_NotifyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("form body success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
		r := notificationRouter(NewPayhereNotificationHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), usecase.TargetCart, usecase.PayhereNotificationInput{
			SessionID:  "payhere_cart_1",
			OrderID:    "cart_1",
			PaymentID:  "320",
			Amount:     "10.99",
			Currency:   "LKR",
			MD5Sig:     "CC3877A0342F11B54FB2F0F2CA555ECB",
			StatusCode: "2",
		}).Return(entities.PayhereNotification{ID: "320#2"}, nil)

		w := postForm(r, "/v1/store/payhere/payhere_cart_1", notificationForm())
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})

	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
		r := notificationRouter(NewPayhereNotificationHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), usecase.TargetCart, gomock.Any()).
			DoAndReturn(func(_ any, _ usecase.NotificationTarget, in usecase.PayhereNotificationInput) (entities.PayhereNotification, error) {
				if in.OrderID != "cart_1" || in.StatusCode != "0" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PayhereNotification{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payhere/payhere_cart_1",
			bytes.NewBufferString(`{"order_id":"cart_1","payment_id":"320","status_code":"0","md5sig":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("json body with numeric ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
		r := notificationRouter(NewPayhereNotificationHandler(uc))

		uc.EXPECT().Handle(gomock.Any(), usecase.TargetCart, gomock.Any()).
			DoAndReturn(func(_ any, _ usecase.NotificationTarget, in usecase.PayhereNotificationInput) (entities.PayhereNotification, error) {
				if in.OrderID != "cart_1" || in.PaymentID != "320025071278" || in.StatusCode != "2" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.PayhereNotification{}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payhere/payhere_cart_1",
			bytes.NewBufferString(`{"order_id":"cart_1","payment_id":320025071278,"status_code":2,"md5sig":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
		r := notificationRouter(NewPayhereNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/store/payhere/payhere_cart_1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "INVALID_DATA") {
			t.Fatalf("expected 400 INVALID_DATA, got %d %s", w.Code, w.Body.String())
		}
	})

	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"invalid data", usecase.ErrInvalidNotification, http.StatusBadRequest, "INVALID_DATA"},
		{"unauthorized", usecase.ErrUnauthorizedNotification, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unexpected", errors.New("dynamodb down"), http.StatusInternalServerError, "UNEXPECTED_STATE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
			r := notificationRouter(NewPayhereNotificationHandler(uc))

			uc.EXPECT().Handle(gomock.Any(), usecase.TargetCart, gomock.Any()).Return(entities.PayhereNotification{}, tc.err)

			w := postForm(r, "/v1/store/payhere/payhere_cart_1", notificationForm())
			if w.Code != tc.code || !strings.Contains(w.Body.String(), tc.body) {
				t.Fatalf("expected %d %s, got %d %s", tc.code, tc.body, w.Code, w.Body.String())
			}
			if strings.Contains(w.Body.String(), "dynamodb") {
				t.Fatalf("cause leaked to body: %s", w.Body.String())
			}
		})
	}
}

func TestPayhereNotificationHandler_NotifySession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPayhereNotificationUseCase(ctrl)
	r := notificationRouter(NewPayhereNotificationHandler(uc))

	uc.EXPECT().Handle(gomock.Any(), usecase.TargetSession, gomock.Any()).
		DoAndReturn(func(_ any, _ usecase.NotificationTarget, in usecase.PayhereNotificationInput) (entities.PayhereNotification, error) {
			if in.SessionID != "" || in.OrderID != "cart_1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.PayhereNotification{}, nil
		})

	w := postForm(r, "/v1/store/payhere", notificationForm())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
