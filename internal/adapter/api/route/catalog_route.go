package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/controller"
)

// RegisterCatalogRoutes registra os cadastros da organização
func RegisterCatalogRoutes(r *gin.RouterGroup, catalogController *controller.CatalogController) {
	products := r.Group("/products")
	{
		products.POST("", catalogController.CreateProduct)
		products.GET("", catalogController.ListProducts)
	}

	r.POST("/tags", catalogController.CreateTag)

	customers := r.Group("/customers")
	{
		customers.POST("", catalogController.CreateCustomer)
		customers.GET("", catalogController.ListCustomers)
	}

	expenses := r.Group("/expenses")
	{
		expenses.POST("", catalogController.CreateExpense)
		expenses.GET("", catalogController.ListExpenses)
		expenses.DELETE("/:id", catalogController.DeleteExpense)
	}

	r.GET("/offers", catalogController.ListOffers)
}
