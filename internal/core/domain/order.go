package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "DRAFT"
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// successors lists the allowed next statuses. CANCELLED and REFUNDED are
// terminal. A status is never its own successor.
func (s OrderStatus) successors() []OrderStatus {
	switch s {
	case OrderStatusDraft:
		return []OrderStatus{OrderStatusPending, OrderStatusCancelled}
	case OrderStatusPending:
		return []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled}
	case OrderStatusConfirmed:
		return []OrderStatus{OrderStatusProcessing, OrderStatusCancelled}
	case OrderStatusProcessing:
		return []OrderStatus{OrderStatusShipped, OrderStatusCancelled}
	case OrderStatusShipped:
		return []OrderStatus{OrderStatusDelivered}
	case OrderStatusDelivered:
		return []OrderStatus{OrderStatusRefunded}
	default:
		return nil
	}
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range s.successors() {
		if next == target {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  int
}

// Order owns its items. Subtotal, Tax, Shipping and Total are derived from
// the items and must only be set through recomputation.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	ShippingAddress Address
	Notes           string
	Status          OrderStatus
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
