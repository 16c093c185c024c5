package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"payhere_service/internal/domain/entities"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/usecase/interfaces"
)

const PayhereProviderID = "payhere"

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrNotImplemented         = errors.New("method not implemented")
	ErrPaymentSessionNotFound = errors.New("payment session not found")
	ErrInvalidCartID          = errors.New("invalid cart_id")
	ErrInvalidAmount          = errors.New("invalid amount")
)

// IPaymentProcessor is the set of operations the storefront invokes on a
// payment provider. Every failure is a *entities.ProcessorError.
type IPaymentProcessor interface {
	InitiatePayment(ctx context.Context, pc entities.PaymentContext) (entities.SessionData, error)
	AuthorizePayment(ctx context.Context, data entities.SessionData) (entities.PaymentSessionStatus, entities.SessionData, error)
	CapturePayment(ctx context.Context, data entities.SessionData) (entities.SessionData, error)
	CancelPayment(ctx context.Context, data entities.SessionData) (entities.SessionData, error)
	RefundPayment(ctx context.Context, data entities.SessionData, refundAmount int64) (entities.SessionData, error)
	DeletePayment(ctx context.Context, data entities.SessionData) (entities.SessionData, error)
	RetrievePayment(ctx context.Context, data entities.SessionData) (entities.SessionData, error)
	GetPaymentStatus(ctx context.Context, data entities.SessionData) (entities.PaymentSessionStatus, error)
	UpdatePayment(ctx context.Context, pc entities.PaymentContext) (entities.SessionData, error)
	UpdatePaymentData(ctx context.Context, sessionID string, data entities.SessionData) (entities.SessionData, error)
}

// PayhereProcessor is the PayHere payment provider.
//
// PayHere checkouts run in the customer's browser, so most operations only
// shape session data; the gateway reports the outcome later through the
// notify callback. Refund, cancel and delete need the merchant API and are
// reported as not implemented.
type PayhereProcessor struct {
	cfg      config.PayhereConfig
	sessions interfaces.IPaymentSessionRepository
	signer   interfaces.ISignatureCodec
}

var _ IPaymentProcessor = (*PayhereProcessor)(nil)

func NewPayhereProcessor(cfg config.PayhereConfig, sessions interfaces.IPaymentSessionRepository, signer interfaces.ISignatureCodec) *PayhereProcessor {
	return &PayhereProcessor{cfg: cfg, sessions: sessions, signer: signer}
}

func (p *PayhereProcessor) InitiatePayment(ctx context.Context, pc entities.PaymentContext) (entities.SessionData, error) {
	const msg = "An error occurred in initiatePayment"
	if err := p.guard(); err != nil {
		return nil, buildError(msg, err)
	}

	cartID := strings.TrimSpace(pc.ResourceID)
	if cartID == "" {
		return nil, buildError(msg, ErrInvalidCartID)
	}
	if pc.Amount < 0 {
		return nil, buildError(msg, ErrInvalidAmount)
	}
	log.Printf("[payhere][processor] initiate start cart_id=%s amount=%d", cartID, pc.Amount)

	checkout, err := p.signer.Sign(cartID, pc.Amount)
	if err != nil {
		return nil, buildError(msg, err)
	}

	data := pc.SessionData.Clone()
	data["id"] = checkout.SessionID
	data["hash"] = checkout.Hash
	data["amount"] = checkout.Amount
	data["merchant_id"] = checkout.MerchantID
	data["order_id"] = checkout.OrderID
	data["currency"] = checkout.Currency

	now := time.Now().UTC()
	session := entities.PaymentSession{
		ID:         checkout.SessionID,
		CartID:     cartID,
		ProviderID: PayhereProviderID,
		Amount:     pc.Amount,
		Status:     entities.PaymentSessionStatusPending,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	existing, err := p.sessions.GetByID(ctx, session.ID)
	if err != nil {
		log.Printf("[payhere][processor] initiate lookup failed session_id=%s err=%v", session.ID, err)
		return nil, buildError(msg, err)
	}
	if hasLivePayment(existing) {
		log.Printf("[payhere][processor] initiate kept existing payment session_id=%s status=%s payment_id=%v",
			existing.ID, existing.Status, existing.Data["payment_id"])
		return existing.Data.Clone(), nil
	}
	if existing.ID != "" {
		session.CreatedAt = existing.CreatedAt
		log.Printf("[payhere][processor] re-initiating session_id=%s previous_amount=%d", session.ID, existing.Amount)
	}

	if _, err := p.sessions.Save(ctx, session); err != nil {
		log.Printf("[payhere][processor] initiate save failed session_id=%s err=%v", session.ID, err)
		return nil, buildError(msg, err)
	}
	log.Printf("[payhere][processor] initiate success session_id=%s amount=%s", session.ID, checkout.Amount)
	return data, nil
}

// AuthorizePayment never fails: without merchant credentials the session goes
// to error, and it only becomes authorized once a verified notification has
// stored a payment_id with an authorized status.
func (p *PayhereProcessor) AuthorizePayment(_ context.Context, data entities.SessionData) (entities.PaymentSessionStatus, entities.SessionData, error) {
	if p.guard() != nil {
		return entities.PaymentSessionStatusError, entities.SessionData{}, nil
	}

	out := data.Clone()
	_, hasPayment := data.String("payment_id")
	status, _ := data.String("status")
	if hasPayment && entities.PaymentSessionStatus(status) == entities.PaymentSessionStatusAuthorized {
		log.Printf("[payhere][processor] authorize success id=%v", data["id"])
		return entities.PaymentSessionStatusAuthorized, out, nil
	}
	return entities.PaymentSessionStatusRequiresMore, out, nil
}

func (p *PayhereProcessor) CapturePayment(_ context.Context, data entities.SessionData) (entities.SessionData, error) {
	if err := p.guard(); err != nil {
		return nil, buildError("An error occurred in capturePayment", err)
	}
	out := data.Clone()
	out["status"] = "captured"
	return out, nil
}

func (p *PayhereProcessor) CancelPayment(_ context.Context, data entities.SessionData) (entities.SessionData, error) {
	const msg = "An error occurred in cancelPayment"
	if err := p.guard(); err != nil {
		return nil, buildError(msg, err)
	}
	if _, ok := data.String("payment_id"); !ok {
		return nil, buildError(msg, ErrUnauthorized)
	}
	return nil, buildError(msg, ErrNotImplemented)
}

func (p *PayhereProcessor) RefundPayment(_ context.Context, data entities.SessionData, refundAmount int64) (entities.SessionData, error) {
	const msg = "An error occurred in refundPayment"
	if err := p.guard(); err != nil {
		return nil, buildError(msg, err)
	}
	if !p.cfg.HasApp() {
		return nil, buildError(msg, ErrUnauthorized)
	}
	if _, ok := data.String("payment_id"); !ok {
		return nil, buildError(msg, ErrUnauthorized)
	}
	log.Printf("[payhere][processor] refund requested payment_id=%v amount=%d", data["payment_id"], refundAmount)
	return nil, buildError(msg, ErrNotImplemented)
}

func (p *PayhereProcessor) DeletePayment(_ context.Context, _ entities.SessionData) (entities.SessionData, error) {
	const msg = "An error occurred in deletePayment"
	if err := p.guard(); err != nil {
		return nil, buildError(msg, err)
	}
	return nil, buildError(msg, ErrNotImplemented)
}

func (p *PayhereProcessor) RetrievePayment(_ context.Context, data entities.SessionData) (entities.SessionData, error) {
	if err := p.guard(); err != nil {
		return nil, buildError("An error occurred in retrievePayment", err)
	}
	return data.Clone(), nil
}

// GetPaymentStatus reads the status held in session data. Unknown values are
// reported as pending.
func (p *PayhereProcessor) GetPaymentStatus(_ context.Context, data entities.SessionData) (entities.PaymentSessionStatus, error) {
	if p.guard() != nil {
		return entities.PaymentSessionStatusError, nil
	}
	raw, _ := data.String("status")
	status := entities.PaymentSessionStatus(raw)
	if !status.IsValid() {
		return entities.PaymentSessionStatusPending, nil
	}
	return status, nil
}

func (p *PayhereProcessor) UpdatePayment(_ context.Context, pc entities.PaymentContext) (entities.SessionData, error) {
	if err := p.guard(); err != nil {
		return nil, buildError("An error occurred in updatePayment", err)
	}
	return pc.SessionData.Clone(), nil
}

// UpdatePaymentData merges update into the stored session data, refreshing id
// and hash from the session's cart and amount, and writes the result back.
func (p *PayhereProcessor) UpdatePaymentData(ctx context.Context, sessionID string, update entities.SessionData) (entities.SessionData, error) {
	const msg = "An error occurred in updatePaymentData"
	if err := p.guard(); err != nil {
		return nil, buildError(msg, err)
	}

	session, err := p.sessions.GetByID(ctx, sessionID)
	if err != nil {
		log.Printf("[payhere][processor] update-data lookup failed session_id=%s err=%v", sessionID, err)
		return nil, buildError(msg, err)
	}
	if session.ID == "" {
		return nil, buildError(msg, ErrPaymentSessionNotFound)
	}

	checkout, err := p.signer.Sign(session.CartID, session.Amount)
	if err != nil {
		return nil, buildError(msg, err)
	}

	merged := entities.SessionData{"id": checkout.SessionID, "hash": checkout.Hash}
	for k, v := range session.Data {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}

	status := session.Status
	if raw, ok := update.String("status"); ok && entities.PaymentSessionStatus(raw).IsValid() {
		status = entities.PaymentSessionStatus(raw)
	}

	if _, err := p.sessions.UpdateData(ctx, session.ID, status, merged); err != nil {
		log.Printf("[payhere][processor] update-data save failed session_id=%s err=%v", session.ID, err)
		return nil, buildError(msg, err)
	}
	log.Printf("[payhere][processor] update-data success session_id=%s status=%s", session.ID, status)
	return merged, nil
}

// hasLivePayment reports whether the gateway already holds a payment for the
// session that has not failed. Such a session must not be replaced by a new
// checkout.
func hasLivePayment(s entities.PaymentSession) bool {
	if s.ID == "" {
		return false
	}
	if _, ok := s.Data.String("payment_id"); !ok {
		return s.Status == entities.PaymentSessionStatusAuthorized
	}
	switch s.Status {
	case entities.PaymentSessionStatusCanceled, entities.PaymentSessionStatusError:
		return false
	}
	return true
}

func (p *PayhereProcessor) guard() error {
	if !p.cfg.HasMerchant() {
		log.Printf("[payhere][processor] rejected: merchant id/secret not configured")
		return ErrUnauthorized
	}
	return nil
}

// buildError wraps cause into a ProcessorError. A nested ProcessorError keeps
// its message and detail in the new detail.
func buildError(message string, cause error) *entities.ProcessorError {
	pe := &entities.ProcessorError{Message: message, Code: errorCode(cause), Err: cause}

	var inner *entities.ProcessorError
	if errors.As(cause, &inner) {
		pe.Detail = inner.Message
		if inner.Detail != "" {
			pe.Detail += "\n" + inner.Detail
		}
		return pe
	}
	if cause != nil {
		pe.Detail = cause.Error()
	}
	return pe
}

func errorCode(err error) string {
	var inner *entities.ProcessorError
	switch {
	case errors.As(err, &inner):
		return inner.Code
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, ErrPaymentSessionNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidCartID), errors.Is(err, ErrInvalidAmount):
		return "invalid_data"
	default:
		return ""
	}
}
