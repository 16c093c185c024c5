package entities

import "time"

// PayhereNotification is a verified gateway callback, persisted once per
// (payment_id, status_code) so redelivered callbacks are not applied twice.
// Applied turns true once the session update behind it is stored.
//
// Storage model (DynamoDB):
//   - PK: id ("<payment_id>#<status_code>")
type PayhereNotification struct {
	ID         string               `json:"id"`
	SessionID  string               `json:"session_id"`
	OrderID    string               `json:"order_id"`
	PaymentID  string               `json:"payment_id"`
	StatusCode string               `json:"status_code"`
	Status     PaymentSessionStatus `json:"status"`
	Amount     string               `json:"payhere_amount,omitempty"`
	Currency   string               `json:"payhere_currency,omitempty"`
	ReceivedAt time.Time            `json:"received_at"`
	Applied    bool                 `json:"applied"`
}

func NotificationID(paymentID, statusCode string) string {
	return paymentID + "#" + statusCode
}
