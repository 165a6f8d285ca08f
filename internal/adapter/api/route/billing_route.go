package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
)

// RegisterBillingRoutes registra os relatórios financeiros
func RegisterBillingRoutes(r *gin.RouterGroup, billingController *controller.BillingController) {
	billings := r.Group("/billings")
	{
		billings.GET("/dashboard", billingController.Dashboard)
		billings.GET("/monthly", billingController.Monthly)
		billings.GET("/products", billingController.BestSellingProducts)
		billings.GET("/products/profit", billingController.ProductsProfit)
		billings.GET("/expenses/categories", billingController.ExpensesCategories)
		billings.GET("/sales/daily", billingController.DailySales)
	}
}

// RegisterHomeRoutes registra os contadores da home
func RegisterHomeRoutes(r *gin.RouterGroup, homeController *controller.HomeController) {
	r.GET("/metrics/home", homeController.Metrics)
}
