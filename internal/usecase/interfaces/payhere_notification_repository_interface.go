package interfaces

import (
	"context"
	"errors"

	"payhere_service/internal/domain/entities"
)

var ErrNotificationAlreadyRecorded = errors.New("payhere notification already recorded")

// IPayhereNotificationRepository keeps one record per (payment_id, status_code).
//
// Create writes the record unapplied and fails with
// ErrNotificationAlreadyRecorded only when an applied record exists, so a
// callback whose update never landed is processed again on redelivery.
// MarkApplied closes the record once the update is stored.
type IPayhereNotificationRepository interface {
	Create(ctx context.Context, n entities.PayhereNotification) (entities.PayhereNotification, error)
	MarkApplied(ctx context.Context, id string) error
}
