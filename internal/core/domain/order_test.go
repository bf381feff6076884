package domain_test

import (
	"testing"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

var allOrderStatuses = []domain.OrderStatus{
	domain.OrderStatusDraft,
	domain.OrderStatusPending,
	domain.OrderStatusConfirmed,
	domain.OrderStatusProcessing,
	domain.OrderStatusShipped,
	domain.OrderStatusDelivered,
	domain.OrderStatusCancelled,
	domain.OrderStatusRefunded,
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := map[domain.OrderStatus][]domain.OrderStatus{
		domain.OrderStatusDraft:      {domain.OrderStatusPending, domain.OrderStatusCancelled},
		domain.OrderStatusPending:    {domain.OrderStatusConfirmed, domain.OrderStatusCancelled},
		domain.OrderStatusConfirmed:  {domain.OrderStatusProcessing, domain.OrderStatusCancelled},
		domain.OrderStatusProcessing: {domain.OrderStatusShipped, domain.OrderStatusCancelled},
		domain.OrderStatusShipped:    {domain.OrderStatusDelivered},
		domain.OrderStatusDelivered:  {domain.OrderStatusRefunded},
		domain.OrderStatusCancelled:  {},
		domain.OrderStatusRefunded:   {},
	}

	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			exp := false
			for _, next := range allowed[from] {
				if next == to {
					exp = true
				}
			}

			assert.Equal(t, exp, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatusSelfTransitionRejected(t *testing.T) {
	for _, status := range allOrderStatuses {
		assert.False(t, status.CanTransitionTo(status), "%s -> %s", status, status)
	}
}

func TestCurrencySupported(t *testing.T) {
	for _, c := range []domain.Currency{
		domain.CurrencyUSD, domain.CurrencyEUR, domain.CurrencyGBP,
		domain.CurrencyCAD, domain.CurrencyAUD, domain.CurrencyJPY,
	} {
		assert.True(t, c.Supported(), string(c))
	}

	assert.False(t, domain.Currency("RUB").Supported())
	assert.False(t, domain.Currency("").Supported())
}

func TestPaymentMethodIsCard(t *testing.T) {
	assert.True(t, domain.PaymentMethodCreditCard.IsCard())
	assert.True(t, domain.PaymentMethodDebitCard.IsCard())
	assert.False(t, domain.PaymentMethodBankTransfer.IsCard())
	assert.False(t, domain.PaymentMethodWallet.IsCard())
	assert.False(t, domain.PaymentMethodCrypto.IsCard())
}

func TestAddressValid(t *testing.T) {
	good := domain.Address{
		Street:     "123 Main Street",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
		Country:    "US",
	}
	assert.True(t, good.Valid())

	shortStreet := good
	shortStreet.Street = "1 st"
	assert.False(t, shortStreet.Valid())

	shortPostal := good
	shortPostal.PostalCode = "627"
	assert.False(t, shortPostal.Valid())

	assert.False(t, domain.Address{}.Valid())
}
