package controller

import (
	"context"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/offer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
	"github.com/hugohenrick/food-backoffice/internal/service/billing"
	"github.com/hugohenrick/food-backoffice/internal/service/catalog"
	"github.com/hugohenrick/food-backoffice/internal/service/home"
	"github.com/hugohenrick/food-backoffice/internal/service/orders"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// OrderService são as operações de pedido expostas pela API
type OrderService interface {
	Create(ctx context.Context, req order.RequestOrder) (*order.Order, error)
	CreateFastOrder(ctx context.Context, req order.RequestOrder) (*order.Order, error)
	Update(ctx context.Context, id string, req order.RequestOrder) (*order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)
	AddPayment(ctx context.Context, orderID string, fastOrder bool, in orders.PaymentInput) (*order.Order, error)
	Get(ctx context.Context, id string) (*order.Order, error)
	GetFastOrder(ctx context.Context, id string) (*order.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters order.Filters, page domain.Pagination) ([]*order.Order, int, error)
	Calendar(ctx context.Context, month, year int) ([]orders.CalendarDay, error)
}

// PreOrderService são as operações de pré-venda expostas pela API
type PreOrderService interface {
	Get(ctx context.Context, id string) (*preorder.PreOrder, error)
	List(ctx context.Context, status preorder.Status, page domain.Pagination) ([]*preorder.PreOrder, error)
	Accept(ctx context.Context, id string) (*order.Order, bool, error)
	Reject(ctx context.Context, id string) (*preorder.PreOrder, error)
	UpdateStatus(ctx context.Context, id string, status preorder.Status, orderID string) (*preorder.PreOrder, error)
}

// BillingService são os relatórios financeiros expostos pela API
type BillingService interface {
	GetBillingForDashboard(ctx context.Context, month, year int) (*billing.Billing, error)
	GetMonthlyBillings(ctx context.Context, lastMonths int) ([]billing.Billing, error)
	GetBestSellingProducts(ctx context.Context, month, year int) ([]billing.ProductRanking, error)
	GetExpansesCategories(ctx context.Context, month, year int) ([]billing.ExpenseCategory, error)
	GetProductsProfit(ctx context.Context, month, year int) ([]billing.ProductProfit, error)
	GetDailySales(ctx context.Context, month, year int) ([]billing.DailySale, error)
}

// HomeService monta os contadores da home
type HomeService interface {
	GetMetrics(ctx context.Context) (*home.Metrics, error)
}

// CatalogService são os cadastros expostos pela API
type CatalogService interface {
	CreateProduct(ctx context.Context, in catalog.ProductInput) (*product.Product, error)
	ListProducts(ctx context.Context, query string, page domain.Pagination) ([]*product.Product, error)
	CreateTag(ctx context.Context, name, color string) (*tag.Tag, error)
	CreateCustomer(ctx context.Context, in catalog.CustomerInput) (*customer.Customer, error)
	ListCustomers(ctx context.Context, query string, page domain.Pagination) ([]*customer.Customer, error)
	CreateExpense(ctx context.Context, in catalog.ExpenseInput) (*expense.Expense, error)
	ListExpenses(ctx context.Context, filters expense.Filters, page domain.Pagination) ([]*expense.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	ListOffers(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*offer.Offer, error)
}

// Factories constroem os serviços da organização de cada requisição
type Factories struct {
	Orders    func(organizationID string) OrderService
	PreOrders func(organizationID string) PreOrderService
	Billing   func(organizationID string) BillingService
	Home      func(organizationID string) HomeService
	Catalog   func(organizationID string) CatalogService
}
