package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payhere_service/internal/adapter/http/dto/request"
	response "payhere_service/internal/adapter/http/dto/response"
	"payhere_service/internal/domain/entities"
	"payhere_service/internal/usecase"
	"payhere_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInitiatePayload = pkg.NewDomainErrorSimple("INVALID_DATA", "Invalid payment session payload", http.StatusBadRequest)

// PaymentSessionHandler is the storefront side of a checkout.
type PaymentSessionHandler struct {
	usecase usecase.IPaymentSessionUseCase
}

func NewPaymentSessionHandler(uc usecase.IPaymentSessionUseCase) *PaymentSessionHandler {
	return &PaymentSessionHandler{usecase: uc}
}

// Initiate signs a checkout for the cart and returns the data the storefront
// posts to the PayHere checkout form.
func (h *PaymentSessionHandler) Initiate(c *gin.Context) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInitiatePayload.HTTPStatus, errInvalidInitiatePayload.ToHTTPError())
		return
	}
	log.Printf("[payhere][handler] initiate start cart_id=%s amount=%d", payload.CartID, payload.Amount)

	data, err := h.usecase.Initiate(c.Request.Context(), payload.CartID, payload.Amount, payload.Email)
	if err != nil {
		appErr := mapPaymentSessionError(err)
		log.Printf("[payhere][handler] initiate failed cart_id=%s err=%v", payload.CartID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSessionData(data))
}

func (h *PaymentSessionHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPaymentSessionError(err)
		log.Printf("[payhere][handler] get failed session_id=%s err=%v", sessionID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

func (h *PaymentSessionHandler) Authorize(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[payhere][handler] authorize start session_id=%s", sessionID)

	session, err := h.usecase.Authorize(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapPaymentSessionError(err)
		log.Printf("[payhere][handler] authorize failed session_id=%s err=%v", sessionID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payhere][handler] authorize success session_id=%s status=%s", session.ID, session.Status)

	c.JSON(http.StatusOK, response.FromPaymentSession(session))
}

// mapPaymentSessionError prefers a processor's message, which names the failed
// operation.
func mapPaymentSessionError(err error) *pkg.AppError {
	message := func(def string) string {
		var pe *entities.ProcessorError
		if errors.As(err, &pe) && pe.Message != "" {
			return pe.Message
		}
		return def
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_DATA", message("Invalid data"), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", message("Unauthorized"), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentSessionNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_SESSION_NOT_FOUND", message("Payment session not found"), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotImplemented):
		return pkg.NewDomainErrorSimple("NOT_IMPLEMENTED", message("Method not implemented"), http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("UNEXPECTED_STATE", "An unexpected error occurred", err, http.StatusInternalServerError)
	}
}
