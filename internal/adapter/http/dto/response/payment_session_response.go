package response

import (
	"time"

	"payhere_service/internal/domain/entities"
)

type PaymentSessionResponse struct {
	ID         string                 `json:"id"`
	CartID     string                 `json:"cart_id"`
	ProviderID string                 `json:"provider_id"`
	Amount     int64                  `json:"amount"`
	Status     string                 `json:"status"`
	Data       map[string]interface{} `json:"data"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func FromPaymentSession(s entities.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		ID:         s.ID,
		CartID:     s.CartID,
		ProviderID: s.ProviderID,
		Amount:     s.Amount,
		Status:     string(s.Status),
		Data:       s.Data.Clone(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// SessionDataResponse wraps the data the storefront posts to the PayHere
// checkout form.
type SessionDataResponse struct {
	SessionData map[string]interface{} `json:"session_data"`
}

func FromSessionData(data entities.SessionData) SessionDataResponse {
	return SessionDataResponse{SessionData: data.Clone()}
}
