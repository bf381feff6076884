package port

import (
	"context"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/govalues/decimal"
)

type Service interface {
	RegisterUser(ctx context.Context, req *domain.RegisterUserRequest) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, error)
	UpdateUser(ctx context.Context, userID, firstName, lastName, phone string) (*domain.User, error)

	CreateOrder(ctx context.Context, userID string, items []domain.OrderItem,
		address domain.Address, notes string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	GetOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AddItem(ctx context.Context, orderID string, productID string,
		quantity int, unitPrice decimal.Decimal, discount int) (*domain.Order, error)
	RemoveItem(ctx context.Context, orderID string, itemID string) (*domain.Order, error)
	EstimatedDelivery(shippingMethod string) time.Time

	ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
	GetPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error)
	RefundPayment(ctx context.Context, paymentID string, refundAmount decimal.Decimal, reason string) (*domain.Payment, error)
	CancelPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	CalculateProcessingFee(amount decimal.Decimal, method domain.PaymentMethod) (decimal.Decimal, error)
}
