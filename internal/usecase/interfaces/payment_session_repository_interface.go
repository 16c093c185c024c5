package interfaces

import (
	"context"

	"payhere_service/internal/domain/entities"
)

// IPaymentSessionRepository abstracts DynamoDB persistence for PaymentSession.
//
// Save upserts the whole session (re-initiating a checkout overwrites it).
// Lookups return a zero-value session (empty ID) and a nil error when nothing
// matches; callers decide whether that is fatal.
type IPaymentSessionRepository interface {
	Save(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSession, error)
	GetByCartID(ctx context.Context, cartID string) (entities.PaymentSession, error)
	UpdateData(ctx context.Context, id string, status entities.PaymentSessionStatus, data entities.SessionData) (entities.PaymentSession, error)
	UpdateStatusByCartID(ctx context.Context, cartID, paymentID string, status entities.PaymentSessionStatus) (entities.PaymentSession, error)
}
