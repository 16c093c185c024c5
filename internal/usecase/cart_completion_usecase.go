package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
)

var ErrInvalidIdempotencyKey = errors.New("invalid idempotency key")

// ICartCompletionUseCase completes a cart into an order.
//
// Completion (order creation, inventory) belongs to the storefront; this
// service only reserves the hook and reports it as not implemented.
type ICartCompletionUseCase interface {
	Complete(ctx context.Context, cartID, idempotencyKey string) error
}

type CartCompletionUseCase struct{}

var _ ICartCompletionUseCase = (*CartCompletionUseCase)(nil)

func NewCartCompletionUseCase() *CartCompletionUseCase {
	return &CartCompletionUseCase{}
}

func (u *CartCompletionUseCase) Complete(_ context.Context, cartID, idempotencyKey string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ErrInvalidCartID
	}
	if strings.TrimSpace(idempotencyKey) == "" {
		return ErrInvalidIdempotencyKey
	}
	log.Printf("[cart][complete] not implemented cart_id=%s", cartID)
	return ErrNotImplemented
}
