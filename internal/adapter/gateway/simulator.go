package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/avekrasnov/checkout/internal/adapter/config"
	"github.com/avekrasnov/checkout/internal/core/domain"
	"go.uber.org/zap"
)

// Simulator stands in for a settlement network: it approves a configurable
// share of payment attempts from a seeded random source, so runs can be
// reproduced by fixing the seed.
type Simulator struct {
	logger      *zap.Logger
	successRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulator(cfg *config.Gateway, log *zap.Logger) (*Simulator, error) {
	if cfg.SuccessRate < 0 || cfg.SuccessRate > 1 {
		return nil, fmt.Errorf("gateway success rate out of range: %v", cfg.SuccessRate)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulator{
		logger:      log,
		successRate: cfg.SuccessRate,
		rnd:         rand.New(rand.NewSource(seed)),
	}, nil
}

func (g *Simulator) Approve(ctx context.Context, payment *domain.Payment) bool {
	g.mu.Lock()
	roll := g.rnd.Float64()
	g.mu.Unlock()

	approved := roll < g.successRate
	g.logger.Debug("Payment attempt resolved",
		zap.String("transaction", payment.TransactionID),
		zap.Bool("approved", approved))

	return approved
}
