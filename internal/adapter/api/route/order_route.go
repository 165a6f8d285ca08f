package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
)

// RegisterOrderRoutes registra as rotas do módulo de pedidos
func RegisterOrderRoutes(r *gin.RouterGroup, orderController *controller.OrderController) {
	orders := r.Group("/orders")
	{
		orders.POST("", orderController.Create)
		orders.GET("", orderController.List)
		orders.GET("/calendar", orderController.Calendar)
		orders.GET("/:id", orderController.Get)
		orders.PUT("/:id", orderController.Update)
		orders.PATCH("/:id/status", orderController.UpdateStatus)
		orders.POST("/:id/payments", orderController.AddPayment)
		orders.DELETE("/:id", orderController.Delete)

		orders.POST("/fast", orderController.CreateFastOrder)
		orders.GET("/fast/:id", orderController.GetFastOrder)
		orders.POST("/fast/:id/payments", orderController.AddFastOrderPayment)
	}
}
