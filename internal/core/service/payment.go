package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/money"
	"github.com/avekrasnov/checkout/internal/core/utils"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var (
	minPaymentAmount = decimal.MustParse("0.01")
	maxPaymentAmount = decimal.MustParse("1000000")
)

// ProcessPayment validates the request, builds a PROCESSING payment and
// resolves it to COMPLETED or FAILED through the gateway. A FAILED payment
// is persisted and returned as a normal outcome.
func (s *Service) ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Payment, error) {
	if req.Amount.Cmp(minPaymentAmount) < 0 {
		return nil, domain.ValidationError("amount must be at least %s", minPaymentAmount)
	}
	if req.Amount.Cmp(maxPaymentAmount) > 0 {
		return nil, domain.ValidationError("amount cannot exceed %s", maxPaymentAmount)
	}

	if !req.Currency.Supported() {
		return nil, domain.ValidationError("unsupported currency: %s", req.Currency)
	}

	if req.Method.IsCard() {
		if err := s.validateCardDetails(req); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	payment := &domain.Payment{
		ID:            uuid.NewString(),
		OrderID:       req.OrderID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		Status:        domain.PaymentStatusProcessing,
		TransactionID: newTransactionID(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.Method.IsCard() {
		digits := utils.SanitizeCardNumber(req.CardNumber)
		payment.CardLastFour = digits[len(digits)-4:]
	}

	if s.gateway.Approve(ctx, payment) {
		payment.Status = domain.PaymentStatusCompleted
	} else {
		payment.Status = domain.PaymentStatusFailed
		payment.ErrorMessage = "payment processing failed"
	}

	newPayment, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment processed",
		zap.String("transaction", newPayment.TransactionID),
		zap.String("status", string(newPayment.Status)))

	return newPayment, nil
}

func (s *Service) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.readPayment(ctx, paymentID)
}

func (s *Service) GetPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	list, err := s.repo.ListPaymentsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get payments for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	list, err := s.repo.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("Get payments for order", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) RefundPayment(ctx context.Context, paymentID string,
	refundAmount decimal.Decimal, reason string) (*domain.Payment, error) {
	payment, err := s.readPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentStatusCompleted {
		return nil, domain.StateError("can only refund completed payments")
	}

	if refundAmount.Cmp(payment.Amount) > 0 {
		return nil, domain.ValidationError("refund amount cannot exceed payment amount")
	}

	if len(strings.TrimSpace(reason)) < 10 {
		return nil, domain.ValidationError("refund reason must be at least 10 characters")
	}

	payment.Status = domain.PaymentStatusRefunded
	payment.UpdatedAt = time.Now()

	return s.repo.UpdatePayment(ctx, payment)
}

func (s *Service) CancelPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.readPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != domain.PaymentStatusPending {
		return nil, domain.StateError("can only cancel pending payments")
	}

	payment.Status = domain.PaymentStatusCancelled
	payment.UpdatedAt = time.Now()

	return s.repo.UpdatePayment(ctx, payment)
}

func (s *Service) CalculateProcessingFee(amount decimal.Decimal, method domain.PaymentMethod) (decimal.Decimal, error) {
	return money.ProcessingFee(amount, method)
}

// validateCardDetails runs the card checks in a fixed sequence and stops at
// the first failure.
func (s *Service) validateCardDetails(req *domain.PaymentRequest) error {
	if !utils.IsValidLuhn(req.CardNumber) {
		return domain.ValidationError("invalid card number")
	}
	if !utils.IsValidExpiry(req.CardExpiry, time.Now()) {
		return domain.ValidationError("card has expired")
	}
	if !utils.IsValidCVV(req.CardCVV) {
		return domain.ValidationError("invalid cvv")
	}
	if len(strings.TrimSpace(req.CardHolderName)) < 2 {
		return domain.ValidationError("invalid cardholder name")
	}
	return nil
}

func (s *Service) readPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.repo.ReadPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.NotFoundError(paymentID)
		}
		s.logger.Error("Read payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func newTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}
