package entities

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// PaymentSessionStatus mirrors the host storefront's payment session states.

type PaymentSessionStatus string

const (
	PaymentSessionStatusAuthorized   PaymentSessionStatus = "authorized"
	PaymentSessionStatusPending      PaymentSessionStatus = "pending"
	PaymentSessionStatusRequiresMore PaymentSessionStatus = "requires_more"
	PaymentSessionStatusError        PaymentSessionStatus = "error"
	PaymentSessionStatusCanceled     PaymentSessionStatus = "canceled"
)

var ErrUnknownStatusCode = errors.New("unknown payhere status code")

// IsValid reports whether s is one of the known session states.
func (s PaymentSessionStatus) IsValid() bool {
	switch s {
	case PaymentSessionStatusAuthorized, PaymentSessionStatusPending, PaymentSessionStatusRequiresMore,
		PaymentSessionStatusError, PaymentSessionStatusCanceled:
		return true
	}
	return false
}

// PaymentStatusFromCode maps a PayHere status_code to a session status.
//
//	 2 => authorized
//	 0 => pending
//	-1 => canceled
//	-2 => error
//	-3 => pending (chargedback; kept pending for manual review)
//
// Any other value is rejected with ErrUnknownStatusCode.
func PaymentStatusFromCode(code string) (PaymentSessionStatus, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return "", ErrUnknownStatusCode
	}
	switch n {
	case 2:
		return PaymentSessionStatusAuthorized, nil
	case 0:
		return PaymentSessionStatusPending, nil
	case -1:
		return PaymentSessionStatusCanceled, nil
	case -2:
		return PaymentSessionStatusError, nil
	case -3:
		return PaymentSessionStatusPending, nil
	default:
		return "", ErrUnknownStatusCode
	}
}

// SessionData is the free-form payload a payment provider keeps on a session.
type SessionData map[string]interface{}

// Clone returns a shallow copy; nil stays an empty map.
func (d SessionData) Clone() SessionData {
	out := make(SessionData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the value under key when it is a non-empty string.
func (d SessionData) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// PaymentSession tracks a cart's in-progress PayHere payment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cart_id-index): cart_id
//
// Amount is kept in minor units (cents) so the signature can be re-derived
// exactly when the gateway notifies us.
type PaymentSession struct {
	ID         string               `json:"id"`
	CartID     string               `json:"cart_id"`
	ProviderID string               `json:"provider_id"`
	Amount     int64                `json:"amount"`
	Status     PaymentSessionStatus `json:"status"`
	Data       SessionData          `json:"data,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// PaymentContext is what the storefront hands to a processor when a cart
// starts (or updates) a payment.
type PaymentContext struct {
	ResourceID   string
	Amount       int64
	CurrencyCode string
	Email        string
	SessionData  SessionData
}
