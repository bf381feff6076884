package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/money"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// CreateOrder builds a DRAFT order from the submitted items, computes its
// totals and persists it.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []domain.OrderItem,
	address domain.Address, notes string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ValidationError("order must contain at least one item")
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ValidationError("item quantity must be positive")
		}
		if item.UnitPrice.IsNeg() {
			return nil, domain.ValidationError("item price cannot be negative")
		}
		if item.Discount < 0 || item.Discount > 100 {
			return nil, domain.ValidationError("item discount must be between 0 and 100")
		}
	}

	if !address.Valid() {
		return nil, domain.ValidationError("invalid shipping address")
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		ShippingAddress: address,
		Notes:           notes,
		Status:          domain.OrderStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order.Items = make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		order.Items = append(order.Items, item)
	}

	if err := applyTotals(order); err != nil {
		s.logger.Error("Compute totals", zap.Error(err))
		return nil, domain.ErrInternal
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.readOrder(ctx, orderID)
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Error("Get orders by status", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateOrderStatus applies one edge of the order transition graph. Totals
// are untouched.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domain.StateError("cannot transition from %s to %s", order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	return s.repo.UpdateOrder(ctx, order)
}

// CancelOrder cancels from any status except SHIPPED and DELIVERED. This is
// deliberately broader than the transition graph.
func (s *Service) CancelOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderStatusShipped || order.Status == domain.OrderStatusDelivered {
		return nil, domain.StateError("cannot cancel order in %s status", order.Status)
	}

	order.Status = domain.OrderStatusCancelled
	order.UpdatedAt = time.Now()

	return s.repo.UpdateOrder(ctx, order)
}

func (s *Service) AddItem(ctx context.Context, orderID string, productID string,
	quantity int, unitPrice decimal.Decimal, discount int) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusDraft {
		return nil, domain.StateError("can only modify orders in draft status")
	}

	if quantity <= 0 {
		return nil, domain.ValidationError("item quantity must be positive")
	}

	order.Items = append(order.Items, domain.OrderItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Discount:  discount,
	})

	if err := applyTotals(order); err != nil {
		s.logger.Error("Compute totals", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.UpdatedAt = time.Now()

	return s.repo.UpdateOrder(ctx, order)
}

// RemoveItem drops the item with the given id, if present, and recomputes
// totals. Removing an unknown id is not an error.
func (s *Service) RemoveItem(ctx context.Context, orderID string, itemID string) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.OrderStatusDraft {
		return nil, domain.StateError("can only modify orders in draft status")
	}

	kept := order.Items[:0]
	for _, item := range order.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	order.Items = kept

	if err := applyTotals(order); err != nil {
		s.logger.Error("Compute totals", zap.Error(err))
		return nil, domain.ErrInternal
	}
	order.UpdatedAt = time.Now()

	return s.repo.UpdateOrder(ctx, order)
}

// EstimatedDelivery returns the nominal delivery date for the shipping
// method, rolled forward to the next weekday when it lands on a weekend.
func (s *Service) EstimatedDelivery(shippingMethod string) time.Time {
	days := 5 // standard
	switch strings.ToLower(shippingMethod) {
	case "overnight":
		days = 1
	case "express":
		days = 2
	}

	date := time.Now().AddDate(0, 0, days)
	for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}

	return date
}

func (s *Service) readOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.NotFoundError(orderID)
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func applyTotals(order *domain.Order) error {
	totals, err := money.ComputeTotals(order.Items)
	if err != nil {
		return fmt.Errorf("compute totals: %w", err)
	}

	order.Subtotal = totals.Subtotal
	order.Tax = totals.Tax
	order.Shipping = totals.Shipping
	order.Total = totals.Total

	return nil
}
