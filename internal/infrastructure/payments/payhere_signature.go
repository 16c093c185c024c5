package payments

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"payhere_service/internal/domain/entities"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	// SignatureCurrency is the only currency the merchant account settles in.
	SignatureCurrency = "LKR"
	// SessionIDPrefix is prepended to the cart id to form the payment session id.
	SessionIDPrefix = "payhere_"
)

// ErrMerchantNotConfigured is returned when the merchant id or secret is empty.
var ErrMerchantNotConfigured = errors.New("payhere merchant not configured")

// PayhereSignature computes and checks the md5sig exchanged with PayHere.
//
// Outbound: MD5(merchant_id + order_id + amount + currency + UPPER(MD5(secret)))
// Inbound:  MD5(merchant_id + order_id + amount + currency + status_code + UPPER(MD5(secret)))
//
// Both digests are upper-case hex. The merchant secret itself never enters
// the signed string.
type PayhereSignature struct {
	cfg config.PayhereConfig
}

var _ interfaces.ISignatureCodec = (*PayhereSignature)(nil)

func NewPayhereSignature(cfg config.PayhereConfig) *PayhereSignature {
	return &PayhereSignature{cfg: cfg}
}

func (s *PayhereSignature) Sign(orderID string, amount int64) (entities.PayhereCheckout, error) {
	if !s.cfg.HasMerchant() {
		log.Printf("[payhere][signature] sign rejected: merchant not configured order_id=%s", orderID)
		return entities.PayhereCheckout{}, ErrMerchantNotConfigured
	}

	formatted := FormatAmount(amount)
	hash := md5Upper(s.cfg.MerchantID + orderID + formatted + SignatureCurrency + HashSecret(s.cfg.MerchantSecret))

	return entities.PayhereCheckout{
		SessionID:  SessionIDPrefix + orderID,
		MerchantID: s.cfg.MerchantID,
		OrderID:    orderID,
		Amount:     formatted,
		Currency:   SignatureCurrency,
		Hash:       hash,
	}, nil
}

func (s *PayhereSignature) Verify(session entities.PaymentSession, statusCode, claimed string) (bool, error) {
	if !s.cfg.HasMerchant() {
		log.Printf("[payhere][signature] verify rejected: merchant not configured session_id=%s", session.ID)
		return false, ErrMerchantNotConfigured
	}

	expected := md5Upper(
		s.cfg.MerchantID +
			session.CartID +
			FormatAmount(session.Amount) +
			SignatureCurrency +
			statusCode +
			HashSecret(s.cfg.MerchantSecret))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(claimed)) == 1, nil
}

// FormatAmount renders minor units as major units with exactly two decimals
// and no grouping: 1099 => "10.99", 1 => "0.01".
func FormatAmount(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

// HashSecret is the upper-case hex MD5 of the merchant secret.
func HashSecret(secret string) string {
	return md5Upper(secret)
}

func md5Upper(v string) string {
	sum := md5.Sum([]byte(v))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
