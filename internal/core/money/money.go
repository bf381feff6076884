// Package money computes order totals and payment fees with fixed-point
// decimals. All stored amounts are rounded half away from zero at two
// decimal places.
package money

import (
	"fmt"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/govalues/decimal"
)

var (
	taxRate           = decimal.MustParse("0.08")
	freeShippingLimit = decimal.Hundred
	standardShipping  = decimal.MustParse("9.99")

	halfCent = decimal.MustParse("0.005")
)

var feeRates = map[domain.PaymentMethod]decimal.Decimal{
	domain.PaymentMethodCreditCard:   decimal.MustParse("0.029"),
	domain.PaymentMethodDebitCard:    decimal.MustParse("0.015"),
	domain.PaymentMethodBankTransfer: decimal.MustParse("0.005"),
	domain.PaymentMethodWallet:       decimal.MustParse("0.02"),
	domain.PaymentMethodCrypto:       decimal.MustParse("0.01"),
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Round2 rounds half away from zero at two decimal places.
func Round2(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNeg() {
		shifted, err := d.Sub(halfCent)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
		return shifted.Trunc(2), nil
	}
	shifted, err := d.Add(halfCent)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return shifted.Trunc(2), nil
}

// LineTotal returns unitPrice × quantity × (1 − discount/100) without
// rounding, so precision carries into the subtotal sum.
func LineTotal(item domain.OrderItem) (decimal.Decimal, error) {
	qty, err := decimal.New(int64(item.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	total, err := item.UnitPrice.Mul(qty)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	multiplier, err := decimal.New(int64(100-item.Discount), 2)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	total, err = total.Mul(multiplier)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	return total, nil
}

// ComputeTotals derives subtotal, tax, shipping and total for the item set.
// The subtotal sum stays unrounded until the end; tax is taken from the raw
// sum and both are stored at two decimal places. Total is built from the
// stored values, so recomputing over an unchanged item set never drifts.
func ComputeTotals(items []domain.OrderItem) (Totals, error) {
	raw := decimal.Zero
	for _, item := range items {
		line, err := LineTotal(item)
		if err != nil {
			return Totals{}, err
		}
		raw, err = raw.Add(line)
		if err != nil {
			return Totals{}, fmt.Errorf("math error: %w", err)
		}
	}

	subtotal, err := Round2(raw)
	if err != nil {
		return Totals{}, err
	}

	rawTax, err := raw.Mul(taxRate)
	if err != nil {
		return Totals{}, fmt.Errorf("math error: %w", err)
	}
	tax, err := Round2(rawTax)
	if err != nil {
		return Totals{}, err
	}

	shipping := standardShipping
	if subtotal.Cmp(freeShippingLimit) >= 0 {
		shipping = decimal.Zero
	}

	sum, err := subtotal.Add(tax)
	if err != nil {
		return Totals{}, fmt.Errorf("math error: %w", err)
	}
	sum, err = sum.Add(shipping)
	if err != nil {
		return Totals{}, fmt.Errorf("math error: %w", err)
	}
	total, err := Round2(sum)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}, nil
}

// ProcessingFee returns the gateway fee for the amount at the method's fixed
// rate: credit card 2.9%, debit card 1.5%, bank transfer 0.5%, wallet 2.0%,
// crypto 1.0%.
func ProcessingFee(amount decimal.Decimal, method domain.PaymentMethod) (decimal.Decimal, error) {
	rate, ok := feeRates[method]
	if !ok {
		return decimal.Decimal{}, domain.ValidationError("unsupported payment method: %s", method)
	}

	fee, err := amount.Mul(rate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	return Round2(fee)
}
