package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
)

func (c Currency) Supported() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD, CurrencyAUD, CurrencyJPY:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodWallet       PaymentMethod = "WALLET"
	PaymentMethodCrypto       PaymentMethod = "CRYPTO"
)

func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// Payment references an order and a user by identifier only. Amount and
// currency are validated once at creation and never again.
type Payment struct {
	ID            string
	OrderID       string
	UserID        string
	Amount        decimal.Decimal
	Currency      Currency
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	CardLastFour  string
	ErrorMessage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentRequest is the plain payment submission record. Card fields are
// required only for card methods.
type PaymentRequest struct {
	OrderID        string
	UserID         string
	Amount         decimal.Decimal
	Currency       Currency
	Method         PaymentMethod
	CardNumber     string
	CardExpiry     string
	CardCVV        string
	CardHolderName string
}
