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

type CartHandler struct {
	usecase usecase.ICartCompletionUseCase
}

func NewCartHandler(uc usecase.ICartCompletionUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// Complete is reserved for cart completion; it always ends in 501 once the
// input is valid.
func (h *CartHandler) Complete(c *gin.Context) {
	cartID := c.Param("cart_id")

	err := h.usecase.Complete(c.Request.Context(), cartID, c.GetHeader(request.HeaderIdempotencyKey))
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	appErr := mapCartError(err)
	log.Printf("[cart][handler] complete cart_id=%s status=%d err=%v", cartID, appErr.HTTPStatus, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidIdempotencyKey):
		return pkg.NewDomainErrorSimple("INVALID_DATA", "Invalid data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotImplemented):
		return pkg.NewDomainErrorSimple("NOT_IMPLEMENTED", "Method not implemented", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("UNEXPECTED_STATE", "An unexpected error occurred", err, http.StatusInternalServerError)
	}
}
