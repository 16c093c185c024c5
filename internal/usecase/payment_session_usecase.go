package usecase

import (
	"context"
	"log"
	"strings"

	"payhere_service/internal/domain/entities"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/usecase/interfaces"
)

// IPaymentSessionUseCase is the storefront side of a PayHere checkout: it opens
// a session for a cart, reports its state and asks the processor to authorize
// it once the gateway has called back.
type IPaymentSessionUseCase interface {
	Initiate(ctx context.Context, cartID string, amount int64, email string) (entities.SessionData, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSession, error)
	Authorize(ctx context.Context, id string) (entities.PaymentSession, error)
}

type PaymentSessionUseCase struct {
	cfg       config.PayhereConfig
	sessions  interfaces.IPaymentSessionRepository
	processor IPaymentProcessor
}

var _ IPaymentSessionUseCase = (*PaymentSessionUseCase)(nil)

func NewPaymentSessionUseCase(cfg config.PayhereConfig, sessions interfaces.IPaymentSessionRepository, processor IPaymentProcessor) *PaymentSessionUseCase {
	return &PaymentSessionUseCase{cfg: cfg, sessions: sessions, processor: processor}
}

func (u *PaymentSessionUseCase) Initiate(ctx context.Context, cartID string, amount int64, email string) (entities.SessionData, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	data := entities.SessionData{}
	if email = strings.TrimSpace(email); email != "" {
		data["email"] = email
	}
	return u.processor.InitiatePayment(ctx, entities.PaymentContext{
		ResourceID:   cartID,
		Amount:       amount,
		CurrencyCode: "lkr",
		Email:        email,
		SessionData:  data,
	})
}

// GetByID returns the stored session with Status recomputed by the processor.
func (u *PaymentSessionUseCase) GetByID(ctx context.Context, id string) (entities.PaymentSession, error) {
	session, err := u.load(ctx, id)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	status, err := u.processor.GetPaymentStatus(ctx, session.Data)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	session.Status = status
	return session, nil
}

func (u *PaymentSessionUseCase) Authorize(ctx context.Context, id string) (entities.PaymentSession, error) {
	session, err := u.load(ctx, id)
	if err != nil {
		return entities.PaymentSession{}, err
	}

	status, data, err := u.processor.AuthorizePayment(ctx, session.Data)
	if err != nil {
		log.Printf("[payhere][session] authorize failed session_id=%s err=%v", session.ID, err)
		return entities.PaymentSession{}, err
	}
	if status == entities.PaymentSessionStatusError {
		log.Printf("[payhere][session] authorize returned error status session_id=%s", session.ID)
		return entities.PaymentSession{}, ErrUnauthorized
	}
	if status == session.Status {
		return session, nil
	}

	updated, err := u.sessions.UpdateData(ctx, session.ID, status, data)
	if err != nil {
		log.Printf("[payhere][session] authorize save failed session_id=%s err=%v", session.ID, err)
		return entities.PaymentSession{}, err
	}
	if updated.ID == "" {
		return entities.PaymentSession{}, ErrPaymentSessionNotFound
	}
	log.Printf("[payhere][session] authorize session_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// load rejects the call before any store read when the merchant is not
// configured.
func (u *PaymentSessionUseCase) load(ctx context.Context, id string) (entities.PaymentSession, error) {
	if !u.cfg.HasMerchant() {
		log.Printf("[payhere][session] rejected: merchant id/secret not configured session_id=%s", id)
		return entities.PaymentSession{}, ErrUnauthorized
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentSession{}, ErrPaymentSessionNotFound
	}
	session, err := u.sessions.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if session.ID == "" {
		return entities.PaymentSession{}, ErrPaymentSessionNotFound
	}
	return session, nil
}
