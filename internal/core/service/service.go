package service

import (
	"github.com/avekrasnov/checkout/internal/core/port"
	"go.uber.org/zap"
)

// Service implements the order, payment and user lifecycles over the
// repository, token and gateway ports. It holds no mutable state of its
// own; callers serialize concurrent mutations of the same aggregate.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	gateway      port.PaymentGateway
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	gateway port.PaymentGateway, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		gateway:      gateway,
		logger:       logger,
	}, nil
}
