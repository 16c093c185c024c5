package request

import (
	"encoding/json"
	"strings"

	"payhere_service/internal/usecase"
)

// HeaderIdempotencyKey carries the storefront's idempotency key on cart
// completion.
const HeaderIdempotencyKey = "Idempotency-Key"

// NumericString holds a notify field that JSON callers may send either as a
// string or as a number. The number keeps its literal text, so large payment
// ids are not rounded. Form binding sets it like any string.
type NumericString string

func (v *NumericString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = NumericString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = NumericString(n.String())
	return nil
}

// PayhereNotificationRequest is the notify_url callback body. PayHere posts it
// as application/x-www-form-urlencoded; JSON is accepted for replays and tests.
type PayhereNotificationRequest struct {
	MerchantID      NumericString `form:"merchant_id" json:"merchant_id"`
	OrderID         NumericString `form:"order_id" json:"order_id"`
	PaymentID       NumericString `form:"payment_id" json:"payment_id"`
	PayhereAmount   NumericString `form:"payhere_amount" json:"payhere_amount"`
	PayhereCurrency string        `form:"payhere_currency" json:"payhere_currency"`
	StatusCode      NumericString `form:"status_code" json:"status_code"`
	MD5Sig          string        `form:"md5sig" json:"md5sig"`
}

func (r PayhereNotificationRequest) ToInput(sessionID string) usecase.PayhereNotificationInput {
	return usecase.PayhereNotificationInput{
		SessionID:  strings.TrimSpace(sessionID),
		OrderID:    string(r.OrderID),
		PaymentID:  string(r.PaymentID),
		Amount:     string(r.PayhereAmount),
		Currency:   r.PayhereCurrency,
		MD5Sig:     r.MD5Sig,
		StatusCode: string(r.StatusCode),
	}
}

// InitiatePaymentRequest opens a checkout for a cart. Amount is in the
// currency's smallest unit (cents).
type InitiatePaymentRequest struct {
	CartID string `json:"cart_id" binding:"required"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Email  string `json:"email"`
}
