package http

import (
	"net/http"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type paymentRequest struct {
	OrderID        string  `json:"order_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Method         string  `json:"method"`
	CardNumber     string  `json:"card_number,omitempty"`
	CardExpiry     string  `json:"card_expiry,omitempty"`
	CardCVV        string  `json:"card_cvv,omitempty"`
	CardHolderName string  `json:"card_holder_name,omitempty"`
}

type paymentResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	CardLastFour  string          `json:"card_last_four,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func newPaymentResponse(payment *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		Amount:        payment.Amount,
		Currency:      string(payment.Currency),
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		CardLastFour:  payment.CardLastFour,
		ErrorMessage:  payment.ErrorMessage,
		CreatedAt:     payment.CreatedAt,
	}
}

func (ph *PaymentHandler) ProcessPayment(ctx *gin.Context) {
	req := paymentRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	payment, err := ph.service.ProcessPayment(ctx, &domain.PaymentRequest{
		OrderID:        req.OrderID,
		UserID:         userID,
		Amount:         amount,
		Currency:       domain.Currency(req.Currency),
		Method:         domain.PaymentMethod(req.Method),
		CardNumber:     req.CardNumber,
		CardExpiry:     req.CardExpiry,
		CardCVV:        req.CardCVV,
		CardHolderName: req.CardHolderName,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}

func (ph *PaymentHandler) GetPayment(ctx *gin.Context) {
	payment, err := ph.service.GetPayment(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) ListPaymentsByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ph.service.GetPaymentsByUser(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]paymentResponse, 0, len(list))
	for _, payment := range list {
		result = append(result, newPaymentResponse(payment))
	}

	ph.handleSuccess(ctx, result)
}

func (ph *PaymentHandler) ListPaymentsByOrder(ctx *gin.Context) {
	list, err := ph.service.GetPaymentsByOrder(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]paymentResponse, 0, len(list))
	for _, payment := range list {
		result = append(result, newPaymentResponse(payment))
	}

	ph.handleSuccess(ctx, result)
}

type refundRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

func (ph *PaymentHandler) RefundPayment(ctx *gin.Context) {
	req := refundRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	payment, err := ph.service.RefundPayment(ctx, ctx.Param("id"), amount, req.Reason)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) CancelPayment(ctx *gin.Context) {
	payment, err := ph.service.CancelPayment(ctx, ctx.Param("id"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) ProcessingFee(ctx *gin.Context) {
	amount, err := decimal.Parse(ctx.Query("amount"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	fee, err := ph.service.CalculateProcessingFee(amount, domain.PaymentMethod(ctx.Query("method")))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, struct {
		Fee decimal.Decimal `json:"fee"`
	}{Fee: fee})
}
