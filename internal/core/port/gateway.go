package port

import (
	"context"

	"github.com/avekrasnov/checkout/internal/core/domain"
)

// PaymentGateway is the settlement boundary: a single call deciding whether
// a payment attempt is captured. Implementations may be deterministic (for
// tests) or network-backed without changing the lifecycle contract.
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	Approve(ctx context.Context, payment *domain.Payment) bool
}
