package controller

import (
	"context"

	mock "github.com/stretchr/testify/mock"

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

// mockOrderService é o mock de OrderService
type mockOrderService struct {
	mock.Mock
}

// Create mocks: ctx, req
func (_m *mockOrderService) Create(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
	ret := _m.Called(ctx, req)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, order.RequestOrder) *order.Order); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// CreateFastOrder mocks: ctx, req
func (_m *mockOrderService) CreateFastOrder(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
	ret := _m.Called(ctx, req)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, order.RequestOrder) *order.Order); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Update mocks: ctx, id, req
func (_m *mockOrderService) Update(ctx context.Context, id string, req order.RequestOrder) (*order.Order, error) {
	ret := _m.Called(ctx, id, req)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, order.RequestOrder) *order.Order); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// UpdateStatus mocks: ctx, id, status
func (_m *mockOrderService) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	ret := _m.Called(ctx, id, status)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, order.Status) *order.Order); ok {
		r0 = rf(ctx, id, status)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// AddPayment mocks: ctx, orderID, fastOrder, in
func (_m *mockOrderService) AddPayment(ctx context.Context, orderID string, fastOrder bool, in orders.PaymentInput) (*order.Order, error) {
	ret := _m.Called(ctx, orderID, fastOrder, in)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, bool, orders.PaymentInput) *order.Order); ok {
		r0 = rf(ctx, orderID, fastOrder, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Get mocks: ctx, id
func (_m *mockOrderService) Get(ctx context.Context, id string) (*order.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string) *order.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetFastOrder mocks: ctx, id
func (_m *mockOrderService) GetFastOrder(ctx context.Context, id string) (*order.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string) *order.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Delete mocks: ctx, id
func (_m *mockOrderService) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

// List mocks: ctx, filters, page
func (_m *mockOrderService) List(ctx context.Context, filters order.Filters, page domain.Pagination) ([]*order.Order, int, error) {
	ret := _m.Called(ctx, filters, page)
	var r0 []*order.Order
	if rf, ok := ret.Get(0).(func(context.Context, order.Filters, domain.Pagination) []*order.Order); ok {
		r0 = rf(ctx, filters, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*order.Order)
	}
	r1 := ret.Int(1)
	r2 := ret.Error(2)
	return r0, r1, r2
}

// Calendar mocks: ctx, month, year
func (_m *mockOrderService) Calendar(ctx context.Context, month int, year int) ([]orders.CalendarDay, error) {
	ret := _m.Called(ctx, month, year)
	var r0 []orders.CalendarDay
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []orders.CalendarDay); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]orders.CalendarDay)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// newMockOrderService cria o mock e confere as expectativas ao fim do teste
func newMockOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockOrderService {
	m := &mockOrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// mockPreOrderService é o mock de PreOrderService
type mockPreOrderService struct {
	mock.Mock
}

// Get mocks: ctx, id
func (_m *mockPreOrderService) Get(ctx context.Context, id string) (*preorder.PreOrder, error) {
	ret := _m.Called(ctx, id)
	var r0 *preorder.PreOrder
	if rf, ok := ret.Get(0).(func(context.Context, string) *preorder.PreOrder); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*preorder.PreOrder)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// List mocks: ctx, status, page
func (_m *mockPreOrderService) List(ctx context.Context, status preorder.Status, page domain.Pagination) ([]*preorder.PreOrder, error) {
	ret := _m.Called(ctx, status, page)
	var r0 []*preorder.PreOrder
	if rf, ok := ret.Get(0).(func(context.Context, preorder.Status, domain.Pagination) []*preorder.PreOrder); ok {
		r0 = rf(ctx, status, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*preorder.PreOrder)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Accept mocks: ctx, id
func (_m *mockPreOrderService) Accept(ctx context.Context, id string) (*order.Order, bool, error) {
	ret := _m.Called(ctx, id)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string) *order.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Bool(1)
	r2 := ret.Error(2)
	return r0, r1, r2
}

// Reject mocks: ctx, id
func (_m *mockPreOrderService) Reject(ctx context.Context, id string) (*preorder.PreOrder, error) {
	ret := _m.Called(ctx, id)
	var r0 *preorder.PreOrder
	if rf, ok := ret.Get(0).(func(context.Context, string) *preorder.PreOrder); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*preorder.PreOrder)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// UpdateStatus mocks: ctx, id, status, orderID
func (_m *mockPreOrderService) UpdateStatus(ctx context.Context, id string, status preorder.Status, orderID string) (*preorder.PreOrder, error) {
	ret := _m.Called(ctx, id, status, orderID)
	var r0 *preorder.PreOrder
	if rf, ok := ret.Get(0).(func(context.Context, string, preorder.Status, string) *preorder.PreOrder); ok {
		r0 = rf(ctx, id, status, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*preorder.PreOrder)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// newMockPreOrderService cria o mock e confere as expectativas ao fim do teste
func newMockPreOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockPreOrderService {
	m := &mockPreOrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// mockBillingService é o mock de BillingService
type mockBillingService struct {
	mock.Mock
}

// GetBillingForDashboard mocks: ctx, month, year
func (_m *mockBillingService) GetBillingForDashboard(ctx context.Context, month int, year int) (*billing.Billing, error) {
	ret := _m.Called(ctx, month, year)
	var r0 *billing.Billing
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *billing.Billing); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*billing.Billing)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetMonthlyBillings mocks: ctx, lastMonths
func (_m *mockBillingService) GetMonthlyBillings(ctx context.Context, lastMonths int) ([]billing.Billing, error) {
	ret := _m.Called(ctx, lastMonths)
	var r0 []billing.Billing
	if rf, ok := ret.Get(0).(func(context.Context, int) []billing.Billing); ok {
		r0 = rf(ctx, lastMonths)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]billing.Billing)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetBestSellingProducts mocks: ctx, month, year
func (_m *mockBillingService) GetBestSellingProducts(ctx context.Context, month int, year int) ([]billing.ProductRanking, error) {
	ret := _m.Called(ctx, month, year)
	var r0 []billing.ProductRanking
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []billing.ProductRanking); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]billing.ProductRanking)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetExpansesCategories mocks: ctx, month, year
func (_m *mockBillingService) GetExpansesCategories(ctx context.Context, month int, year int) ([]billing.ExpenseCategory, error) {
	ret := _m.Called(ctx, month, year)
	var r0 []billing.ExpenseCategory
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []billing.ExpenseCategory); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]billing.ExpenseCategory)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetProductsProfit mocks: ctx, month, year
func (_m *mockBillingService) GetProductsProfit(ctx context.Context, month int, year int) ([]billing.ProductProfit, error) {
	ret := _m.Called(ctx, month, year)
	var r0 []billing.ProductProfit
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []billing.ProductProfit); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]billing.ProductProfit)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// GetDailySales mocks: ctx, month, year
func (_m *mockBillingService) GetDailySales(ctx context.Context, month int, year int) ([]billing.DailySale, error) {
	ret := _m.Called(ctx, month, year)
	var r0 []billing.DailySale
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []billing.DailySale); ok {
		r0 = rf(ctx, month, year)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]billing.DailySale)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// newMockBillingService cria o mock e confere as expectativas ao fim do teste
func newMockBillingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockBillingService {
	m := &mockBillingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// mockHomeService é o mock de HomeService
type mockHomeService struct {
	mock.Mock
}

// GetMetrics mocks: ctx
func (_m *mockHomeService) GetMetrics(ctx context.Context) (*home.Metrics, error) {
	ret := _m.Called(ctx)
	var r0 *home.Metrics
	if rf, ok := ret.Get(0).(func(context.Context) *home.Metrics); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*home.Metrics)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// newMockHomeService cria o mock e confere as expectativas ao fim do teste
func newMockHomeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockHomeService {
	m := &mockHomeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// mockCatalogService é o mock de CatalogService
type mockCatalogService struct {
	mock.Mock
}

// CreateProduct mocks: ctx, in
func (_m *mockCatalogService) CreateProduct(ctx context.Context, in catalog.ProductInput) (*product.Product, error) {
	ret := _m.Called(ctx, in)
	var r0 *product.Product
	if rf, ok := ret.Get(0).(func(context.Context, catalog.ProductInput) *product.Product); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*product.Product)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// ListProducts mocks: ctx, query, page
func (_m *mockCatalogService) ListProducts(ctx context.Context, query string, page domain.Pagination) ([]*product.Product, error) {
	ret := _m.Called(ctx, query, page)
	var r0 []*product.Product
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Pagination) []*product.Product); ok {
		r0 = rf(ctx, query, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*product.Product)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// CreateTag mocks: ctx, name, color
func (_m *mockCatalogService) CreateTag(ctx context.Context, name string, color string) (*tag.Tag, error) {
	ret := _m.Called(ctx, name, color)
	var r0 *tag.Tag
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *tag.Tag); ok {
		r0 = rf(ctx, name, color)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*tag.Tag)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// CreateCustomer mocks: ctx, in
func (_m *mockCatalogService) CreateCustomer(ctx context.Context, in catalog.CustomerInput) (*customer.Customer, error) {
	ret := _m.Called(ctx, in)
	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, catalog.CustomerInput) *customer.Customer); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// ListCustomers mocks: ctx, query, page
func (_m *mockCatalogService) ListCustomers(ctx context.Context, query string, page domain.Pagination) ([]*customer.Customer, error) {
	ret := _m.Called(ctx, query, page)
	var r0 []*customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.Pagination) []*customer.Customer); ok {
		r0 = rf(ctx, query, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// CreateExpense mocks: ctx, in
func (_m *mockCatalogService) CreateExpense(ctx context.Context, in catalog.ExpenseInput) (*expense.Expense, error) {
	ret := _m.Called(ctx, in)
	var r0 *expense.Expense
	if rf, ok := ret.Get(0).(func(context.Context, catalog.ExpenseInput) *expense.Expense); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// ListExpenses mocks: ctx, filters, page
func (_m *mockCatalogService) ListExpenses(ctx context.Context, filters expense.Filters, page domain.Pagination) ([]*expense.Expense, error) {
	ret := _m.Called(ctx, filters, page)
	var r0 []*expense.Expense
	if rf, ok := ret.Get(0).(func(context.Context, expense.Filters, domain.Pagination) []*expense.Expense); ok {
		r0 = rf(ctx, filters, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// DeleteExpense mocks: ctx, id
func (_m *mockCatalogService) DeleteExpense(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

// ListOffers mocks: ctx, onlyVisible, page
func (_m *mockCatalogService) ListOffers(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*offer.Offer, error) {
	ret := _m.Called(ctx, onlyVisible, page)
	var r0 []*offer.Offer
	if rf, ok := ret.Get(0).(func(context.Context, bool, domain.Pagination) []*offer.Offer); ok {
		r0 = rf(ctx, onlyVisible, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*offer.Offer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// newMockCatalogService cria o mock e confere as expectativas ao fim do teste
func newMockCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *mockCatalogService {
	m := &mockCatalogService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
