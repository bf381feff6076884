package http

import (
	"net/http"
	"time"

	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/avekrasnov/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Discount  int     `json:"discount"`
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	ShippingAddress addressRequest     `json:"shipping_address"`
	Notes           string             `json:"notes"`
}

type orderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  int             `json:"discount"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Items     []orderItemResponse `json:"items"`
	Notes     string              `json:"notes,omitempty"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Tax       decimal.Decimal     `json:"tax"`
	Shipping  decimal.Decimal     `json:"shipping"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
		})
	}

	return orderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		Items:     items,
		Notes:     order.Notes,
		Subtotal:  order.Subtotal,
		Tax:       order.Tax,
		Shipping:  order.Shipping,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := decimal.NewFromFloat64(item.UnitPrice)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Discount:  item.Discount,
		})
	}

	userID := getAuthPayload(ctx).UserID

	order, err := oh.service.CreateOrder(ctx, userID, items, domain.Address{
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		State:      req.ShippingAddress.State,
		PostalCode: req.ShippingAddress.PostalCode,
		Country:    req.ShippingAddress.Country,
	}, req.Notes)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	req := updateStatusRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, ctx.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	order, err := oh.service.CancelOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) AddItem(ctx *gin.Context) {
	req := orderItemRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.UnitPrice)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.AddItem(ctx, ctx.Param("id"), req.ProductID, req.Quantity, price, req.Discount)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) RemoveItem(ctx *gin.Context) {
	order, err := oh.service.RemoveItem(ctx, ctx.Param("id"), ctx.Param("itemID"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) EstimatedDelivery(ctx *gin.Context) {
	date := oh.service.EstimatedDelivery(ctx.Query("method"))

	oh.handleSuccess(ctx, struct {
		EstimatedDelivery string `json:"estimated_delivery"`
	}{EstimatedDelivery: date.Format("2006-01-02")})
}
