package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"payhere_service/internal/domain/entities"
	"payhere_service/internal/infrastructure/config"
	"payhere_service/internal/usecase/interfaces"
)

var (
	ErrInvalidNotification      = errors.New("invalid payhere notification")
	ErrUnauthorizedNotification = errors.New("unauthorized payhere notification")
	ErrUnexpectedState          = errors.New("unexpected state")
)

// NotificationTarget selects what a verified notification updates.
type NotificationTarget int

const (
	// TargetCart sets payment_id and status on the cart's payment session.
	TargetCart NotificationTarget = iota
	// TargetSession merges payment_id and status into the session data
	// through the processor's UpdatePaymentData.
	TargetSession
)

func (t NotificationTarget) String() string {
	if t == TargetSession {
		return "session"
	}
	return "cart"
}

// PayhereNotificationInput is the notify_url callback body. SessionID is
// optional: without it the session is resolved from OrderID (the cart id).
type PayhereNotificationInput struct {
	SessionID  string
	OrderID    string
	PaymentID  string
	Amount     string
	Currency   string
	MD5Sig     string
	StatusCode string
}

type IPayhereNotificationUseCase interface {
	Handle(ctx context.Context, target NotificationTarget, in PayhereNotificationInput) (entities.PayhereNotification, error)
}

type PayhereNotificationUseCase struct {
	cfg           config.PayhereConfig
	sessions      interfaces.IPaymentSessionRepository
	notifications interfaces.IPayhereNotificationRepository
	signer        interfaces.ISignatureCodec
	processor     IPaymentProcessor
}

var _ IPayhereNotificationUseCase = (*PayhereNotificationUseCase)(nil)

func NewPayhereNotificationUseCase(
	cfg config.PayhereConfig,
	sessions interfaces.IPaymentSessionRepository,
	notifications interfaces.IPayhereNotificationRepository,
	signer interfaces.ISignatureCodec,
	processor IPaymentProcessor,
) *PayhereNotificationUseCase {
	return &PayhereNotificationUseCase{
		cfg:           cfg,
		sessions:      sessions,
		notifications: notifications,
		signer:        signer,
		processor:     processor,
	}
}

func (u *PayhereNotificationUseCase) Handle(ctx context.Context, target NotificationTarget, in PayhereNotificationInput) (entities.PayhereNotification, error) {
	in = trimNotification(in)
	log.Printf("[payhere][notify] start target=%s session_id=%q order_id=%q payment_id=%q status_code=%q",
		target, in.SessionID, in.OrderID, in.PaymentID, in.StatusCode)

	if in.OrderID == "" || in.PaymentID == "" || in.StatusCode == "" {
		log.Printf("[payhere][notify] invalid data order_id=%q payment_id=%q status_code=%q", in.OrderID, in.PaymentID, in.StatusCode)
		return entities.PayhereNotification{}, ErrInvalidNotification
	}
	if !u.cfg.HasMerchant() {
		log.Printf("[payhere][notify] rejected: merchant not configured order_id=%s", in.OrderID)
		return entities.PayhereNotification{}, ErrUnauthorizedNotification
	}

	session, err := u.resolveSession(ctx, in)
	if err != nil {
		log.Printf("[payhere][notify] session lookup failed order_id=%s err=%v", in.OrderID, err)
		return entities.PayhereNotification{}, fmt.Errorf("%w: %w", ErrUnexpectedState, err)
	}
	if session.ID == "" {
		log.Printf("[payhere][notify] session not found session_id=%q order_id=%s", in.SessionID, in.OrderID)
		return entities.PayhereNotification{}, ErrUnauthorizedNotification
	}
	// The signature covers the session's cart, so the body must name that cart.
	if session.CartID != in.OrderID {
		log.Printf("[payhere][notify] order mismatch session_id=%s cart_id=%s order_id=%s", session.ID, session.CartID, in.OrderID)
		return entities.PayhereNotification{}, ErrUnauthorizedNotification
	}

	ok, err := u.signer.Verify(session, in.StatusCode, in.MD5Sig)
	if err != nil || !ok {
		log.Printf("[payhere][notify] signature rejected session_id=%s err=%v", session.ID, err)
		return entities.PayhereNotification{}, ErrUnauthorizedNotification
	}

	status, err := entities.PaymentStatusFromCode(in.StatusCode)
	if err != nil {
		log.Printf("[payhere][notify] unknown status_code=%q session_id=%s", in.StatusCode, session.ID)
		return entities.PayhereNotification{}, ErrUnauthorizedNotification
	}

	n := entities.PayhereNotification{
		ID:         entities.NotificationID(in.PaymentID, in.StatusCode),
		SessionID:  session.ID,
		OrderID:    in.OrderID,
		PaymentID:  in.PaymentID,
		StatusCode: in.StatusCode,
		Status:     status,
		Amount:     in.Amount,
		Currency:   in.Currency,
		ReceivedAt: time.Now().UTC(),
	}

	recorded, err := u.record(ctx, n)
	if errors.Is(err, interfaces.ErrNotificationAlreadyRecorded) {
		log.Printf("[payhere][notify] duplicate ignored id=%s session_id=%s", n.ID, session.ID)
		n.Applied = true
		return n, nil
	}
	if err != nil {
		log.Printf("[payhere][notify] record failed id=%s err=%v", n.ID, err)
		return entities.PayhereNotification{}, fmt.Errorf("%w: %w", ErrUnexpectedState, err)
	}

	if err := u.apply(ctx, target, session, in, status); err != nil {
		// The record stays unapplied, so the gateway's redelivery runs the update again.
		log.Printf("[payhere][notify] apply failed target=%s session_id=%s id=%s err=%v", target, session.ID, n.ID, err)
		return entities.PayhereNotification{}, fmt.Errorf("%w: %w", ErrUnexpectedState, err)
	}
	if recorded {
		if err := u.notifications.MarkApplied(ctx, n.ID); err != nil {
			log.Printf("[payhere][notify] mark applied failed id=%s err=%v; a redelivery will apply the update again", n.ID, err)
		} else {
			n.Applied = true
		}
	}

	log.Printf("[payhere][notify] success target=%s session_id=%s payment_id=%s status=%s", target, session.ID, in.PaymentID, status)
	return n, nil
}

func (u *PayhereNotificationUseCase) resolveSession(ctx context.Context, in PayhereNotificationInput) (entities.PaymentSession, error) {
	if in.SessionID != "" {
		return u.sessions.GetByID(ctx, in.SessionID)
	}
	return u.sessions.GetByCartID(ctx, in.OrderID)
}

// record reports whether a notification record was written.
func (u *PayhereNotificationUseCase) record(ctx context.Context, n entities.PayhereNotification) (bool, error) {
	if u.notifications == nil {
		log.Printf("[payhere][notify] notification log not configured; skipping dedupe id=%s", n.ID)
		return false, nil
	}
	if _, err := u.notifications.Create(ctx, n); err != nil {
		return false, err
	}
	return true, nil
}

func (u *PayhereNotificationUseCase) apply(ctx context.Context, target NotificationTarget, session entities.PaymentSession, in PayhereNotificationInput, status entities.PaymentSessionStatus) error {
	switch target {
	case TargetSession:
		if u.processor == nil {
			return errors.New("payment processor not configured")
		}
		_, err := u.processor.UpdatePaymentData(ctx, session.ID, entities.SessionData{
			"payment_id": in.PaymentID,
			"status":     string(status),
		})
		return err
	default:
		updated, err := u.sessions.UpdateStatusByCartID(ctx, in.OrderID, in.PaymentID, status)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrPaymentSessionNotFound
		}
		return nil
	}
}

func trimNotification(in PayhereNotificationInput) PayhereNotificationInput {
	in.SessionID = strings.TrimSpace(in.SessionID)
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.StatusCode = strings.TrimSpace(in.StatusCode)
	in.MD5Sig = strings.TrimSpace(in.MD5Sig)
	return in
}
