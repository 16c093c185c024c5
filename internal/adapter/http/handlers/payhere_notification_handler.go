package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payhere_service/internal/adapter/http/dto/request"
	"payhere_service/internal/usecase"
	"payhere_service/pkg"

	"github.com/gin-gonic/gin"
)

// PayhereNotificationHandler receives PayHere's server-to-server notify_url
// callbacks.
type PayhereNotificationHandler struct {
	usecase usecase.IPayhereNotificationUseCase
}

func NewPayhereNotificationHandler(uc usecase.IPayhereNotificationUseCase) *PayhereNotificationHandler {
	return &PayhereNotificationHandler{usecase: uc}
}

// NotifyCart updates the payment session of the cart named by order_id.
func (h *PayhereNotificationHandler) NotifyCart(c *gin.Context) {
	h.notify(c, usecase.TargetCart, c.Param("session_id"))
}

// NotifySession merges the outcome into the session data through the
// processor. The session is resolved from order_id.
func (h *PayhereNotificationHandler) NotifySession(c *gin.Context) {
	h.notify(c, usecase.TargetSession, "")
}

func (h *PayhereNotificationHandler) notify(c *gin.Context, target usecase.NotificationTarget, sessionID string) {
	var payload request.PayhereNotificationRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[payhere][handler] notify bind failed target=%s err=%v", target, err)
		appErr := mapNotificationError(usecase.ErrInvalidNotification)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if _, err := h.usecase.Handle(c.Request.Context(), target, payload.ToInput(sessionID)); err != nil {
		appErr := mapNotificationError(err)
		log.Printf("[payhere][handler] notify failed target=%s order_id=%s status=%d err=%v", target, payload.OrderID, appErr.HTTPStatus, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_DATA", "Invalid data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorizedNotification):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("UNEXPECTED_STATE", "An unexpected error occurred", err, http.StatusInternalServerError)
	}
}
