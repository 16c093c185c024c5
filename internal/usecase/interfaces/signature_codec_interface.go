package interfaces

import "payhere_service/internal/domain/entities"

// ISignatureCodec signs outbound checkouts and verifies inbound notifications.
type ISignatureCodec interface {
	Sign(orderID string, amount int64) (entities.PayhereCheckout, error)
	Verify(session entities.PaymentSession, statusCode, claimed string) (bool, error)
}
