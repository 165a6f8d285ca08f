package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
)

// RegisterPreOrderRoutes registra as rotas de pré-vendas
func RegisterPreOrderRoutes(r *gin.RouterGroup, preOrderController *controller.PreOrderController) {
	preOrders := r.Group("/pre_orders")
	{
		preOrders.GET("", preOrderController.List)
		preOrders.GET("/:id", preOrderController.Get)
		preOrders.PUT("/:id", preOrderController.UpdateStatus)
		preOrders.POST("/:id/accept", preOrderController.Accept)
		preOrders.POST("/:id/reject", preOrderController.Reject)
	}
}
