package mocks

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, draft, totalAmount
func (_m *OrderRepository) Create(ctx context.Context, draft *order.Order, totalAmount float64) (*order.Order, error) {
	ret := _m.Called(ctx, draft, totalAmount)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, *order.Order, float64) *order.Order); ok {
		r0 = rf(ctx, draft, totalAmount)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, patch
func (_m *OrderRepository) Update(ctx context.Context, id string, patch order.Patch) (*order.Order, error) {
	ret := _m.Called(ctx, id, patch)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, order.Patch) *order.Order); ok {
		r0 = rf(ctx, id, patch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// UpdatePaymentStatus provides a mock function with given fields: ctx, id, status
func (_m *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status order.PaymentStatus) error {
	ret := _m.Called(ctx, id, status)
	r0 := ret.Error(0)
	return r0
}

// SelectByID provides a mock function with given fields: ctx, id, fastOrder
func (_m *OrderRepository) SelectByID(ctx context.Context, id string, fastOrder bool) (*order.Order, error) {
	ret := _m.Called(ctx, id, fastOrder)
	var r0 *order.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) *order.Order); ok {
		r0 = rf(ctx, id, fastOrder)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAll provides a mock function with given fields: ctx, filters, page
func (_m *OrderRepository) SelectAll(ctx context.Context, filters order.Filters, page domain.Pagination) ([]*order.Order, error) {
	ret := _m.Called(ctx, filters, page)
	var r0 []*order.Order
	if rf, ok := ret.Get(0).(func(context.Context, order.Filters, domain.Pagination) []*order.Order); ok {
		r0 = rf(ctx, filters, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAllWithoutFilters provides a mock function with given fields: ctx, r
func (_m *OrderRepository) SelectAllWithoutFilters(ctx context.Context, r domain.DateRange) ([]*order.Order, error) {
	ret := _m.Called(ctx, r)
	var r0 []*order.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.DateRange) []*order.Order); ok {
		r0 = rf(ctx, r)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*order.Order)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectCount provides a mock function with given fields: ctx, filters
func (_m *OrderRepository) SelectCount(ctx context.Context, filters order.Filters) (int, error) {
	ret := _m.Called(ctx, filters)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// ExistsFastOrderOn provides a mock function with given fields: ctx, day
func (_m *OrderRepository) ExistsFastOrderOn(ctx context.Context, day time.Time) (bool, error) {
	ret := _m.Called(ctx, day)
	r0 := ret.Bool(0)
	r1 := ret.Error(1)
	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *OrderRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
