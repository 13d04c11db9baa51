package router

import (
	"wareFlow/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	auth := api.Group("/auth")

	auth.POST("/admin/login", handler.AdminLogin)
	auth.POST("/supermarket/login", handler.CustomerLogin)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products", authRequired)

	products.GET("", handler.GetProducts)
	products.GET("/categories", handler.GetCategories)
	products.POST("", handler.CreateProduct, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, adminOnly)
}

func SetupStockRoutes(api *echo.Group, handler *rest.StockHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	stock := api.Group("/stock", authRequired, adminOnly)

	stock.GET("", handler.GetStockIns)
	stock.POST("", handler.CreateStockIn)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired)

	orders.GET("", handler.GetOrders)
	orders.GET("/stats/overview", handler.GetStats)
	orders.GET("/:id", handler.GetOrder)
	orders.POST("", handler.CreateOrder)
	orders.PUT("/:id/status", handler.UpdateOrderStatus)
}

func SetupCustomersRoutes(api *echo.Group, handler *rest.CustomersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	customers := api.Group("/customers", authRequired, adminOnly)

	customers.GET("", handler.GetCustomers)
	customers.POST("", handler.CreateCustomer)
	customers.PUT("/:id", handler.UpdateCustomer)
	customers.PUT("/:id/reset-password", handler.ResetPassword)
}

func SetupImportsRoutes(api *echo.Group, handler *rest.ImportsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	imports := api.Group("/imports", authRequired, adminOnly)

	imports.POST("/upload", handler.UploadWorkbook)
	imports.GET("/batches", handler.GetBatches)
	imports.DELETE("/batches/:id", handler.RollbackBatch)
	imports.GET("/failed/:batchId", handler.GetFailedRows)
	imports.DELETE("/failed/:batchId", handler.ClearFailedRows)
	imports.GET("/pending-price", handler.GetPendingPrices)
	imports.PUT("/pending-price/:id", handler.ConfirmPendingPrice)
}

func SetupPaymentsRoutes(api *echo.Group, handler *rest.PaymentsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	payments := api.Group("/payments", authRequired, adminOnly)

	payments.GET("", handler.GetPayments)
	payments.POST("", handler.CreatePayment)
}
