package port

import (
	"context"

	"github.com/avekrasnov/checkout/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)

	// Payment
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ReadPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error)

	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ReadUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
