package money_test

import (
	"testing"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/money"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func item(quantity int, price string, discount int) domain.OrderItem {
	return domain.OrderItem{
		ProductID: "prod-1",
		Quantity:  quantity,
		UnitPrice: decimal.MustParse(price),
		Discount:  discount,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Zero(t, actual.Cmp(decimal.MustParse(expected)),
		"got %s, expected %s", actual, expected)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name        string
		items       []domain.OrderItem
		expSubtotal string
		expTax      string
		expShipping string
		expTotal    string
	}{
		{
			name: "discounted order below free shipping",
			items: []domain.OrderItem{
				item(2, "25.00", 0),
				item(1, "50.00", 10),
			},
			expSubtotal: "95.00",
			expTax:      "7.60",
			expShipping: "9.99",
			expTotal:    "112.59",
		},
		{
			name: "free shipping at threshold",
			items: []domain.OrderItem{
				item(5, "25.00", 0),
			},
			expSubtotal: "125.00",
			expTax:      "10.00",
			expShipping: "0",
			expTotal:    "135.00",
		},
		{
			name: "threshold boundary just below",
			items: []domain.OrderItem{
				item(1, "99.99", 0),
			},
			expSubtotal: "99.99",
			expTax:      "8.00",
			expShipping: "9.99",
			expTotal:    "117.98",
		},
		{
			name: "full discount",
			items: []domain.OrderItem{
				item(3, "10.00", 100),
			},
			expSubtotal: "0",
			expTax:      "0",
			expShipping: "9.99",
			expTotal:    "9.99",
		},
		{
			name:        "no items",
			items:       nil,
			expSubtotal: "0",
			expTax:      "0",
			expShipping: "9.99",
			expTotal:    "9.99",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			totals, err := money.ComputeTotals(test.items)
			assert.NoError(t, err)

			assertDecimal(t, test.expSubtotal, totals.Subtotal)
			assertDecimal(t, test.expTax, totals.Tax)
			assertDecimal(t, test.expShipping, totals.Shipping)
			assertDecimal(t, test.expTotal, totals.Total)
		})
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []domain.OrderItem{
		item(2, "25.00", 0),
		item(1, "50.00", 10),
		item(7, "3.33", 15),
	}

	first, err := money.ComputeTotals(items)
	assert.NoError(t, err)

	second, err := money.ComputeTotals(items)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLineTotal(t *testing.T) {
	total, err := money.LineTotal(item(3, "19.99", 25))
	assert.NoError(t, err)

	// 19.99 * 3 * 0.75
	assert.Zero(t, total.Cmp(decimal.MustParse("44.9775")))
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in  string
		exp string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.346", "2.35"},
		{"-2.345", "-2.35"},
		{"7.60", "7.60"},
		{"0", "0"},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			rounded, err := money.Round2(decimal.MustParse(test.in))
			assert.NoError(t, err)
			assert.Zero(t, rounded.Cmp(decimal.MustParse(test.exp)),
				"rounding %s: got %s, expected %s", test.in, rounded, test.exp)
		})
	}
}

func TestProcessingFee(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		method domain.PaymentMethod
		expFee string
	}{
		{"credit card", "100.00", domain.PaymentMethodCreditCard, "2.90"},
		{"debit card", "100.00", domain.PaymentMethodDebitCard, "1.50"},
		{"bank transfer", "100.00", domain.PaymentMethodBankTransfer, "0.50"},
		{"wallet", "100.00", domain.PaymentMethodWallet, "2.00"},
		{"crypto", "100.00", domain.PaymentMethodCrypto, "1.00"},
		{"credit card odd amount", "33.33", domain.PaymentMethodCreditCard, "0.97"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fee, err := money.ProcessingFee(decimal.MustParse(test.amount), test.method)
			assert.NoError(t, err)
			assert.Zero(t, fee.Cmp(decimal.MustParse(test.expFee)),
				"fee for %s: got %s, expected %s", test.amount, fee, test.expFee)
		})
	}
}

func TestProcessingFeeUnknownMethod(t *testing.T) {
	_, err := money.ProcessingFee(decimal.Hundred, domain.PaymentMethod("CHECK"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
