package http

import (
	"github.com/avekrasnov/checkout/internal/adapter/config"
	"github.com/avekrasnov/checkout/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	userHandler *UserHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
			user.PATCH("", authCheck(tokenService, logger), userHandler.UpdateUser)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, logger))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrdersByUser)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/items", orderHandler.AddItem)
			orders.DELETE("/:id/items/:itemID", orderHandler.RemoveItem)
			orders.GET("/:id/payments", paymentHandler.ListPaymentsByOrder)
		}

		payments := api.Group("/payments")
		{
			payments.Use(authCheck(tokenService, logger))
			payments.POST("", paymentHandler.ProcessPayment)
			payments.GET("", paymentHandler.ListPaymentsByUser)
			payments.GET("/:id", paymentHandler.GetPayment)
			payments.POST("/:id/refund", paymentHandler.RefundPayment)
			payments.POST("/:id/cancel", paymentHandler.CancelPayment)
		}

		api.GET("/delivery-estimate", authCheck(tokenService, logger), orderHandler.EstimatedDelivery)
		api.GET("/processing-fee", authCheck(tokenService, logger), paymentHandler.ProcessingFee)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
