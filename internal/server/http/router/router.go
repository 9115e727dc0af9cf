package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/server/http/handlers"
	"github.com/coursedesk/coursedesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DeskFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	requestHandler := handlers.NewRequestHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	invoiceHandler := handlers.NewInvoiceHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)

	api := engine.Group("/api")
	api.POST("/invoice-requests", requestHandler.Submit)
	api.POST("/payment-intents", paymentHandler.Create)
	api.POST("/payment-intents/:id/confirm", paymentHandler.Confirm)
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.GET("/invoice-requests/:id", requestHandler.Get)
	admin.PATCH("/invoice-requests/:id", requestHandler.Patch)

	orders := admin.Group("/orders")
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/actions", orderHandler.Actions)
	orders.PATCH("/:id", orderHandler.Patch)
	orders.DELETE("/:id", orderHandler.Trash)
	orders.POST("/:id/restore", orderHandler.Restore)
	orders.POST("/:id/notes", orderHandler.AddNote)
	orders.GET("/:id/notes", orderHandler.Notes)
	orders.DELETE("/:id/notes/:noteID", orderHandler.DeleteNote)

	invoices := admin.Group("/invoices")
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.PATCH("/:id", invoiceHandler.Patch)
	invoices.POST("/:id/resend", invoiceHandler.Resend)

	return engine
}
