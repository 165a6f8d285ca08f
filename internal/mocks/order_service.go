package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/order"
)

// OrderService is a mock type for the OrderService type
type OrderService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, req
func (_m *OrderService) Create(ctx context.Context, req order.RequestOrder) (*order.Order, error) {
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

// Get provides a mock function with given fields: ctx, id
func (_m *OrderService) Get(ctx context.Context, id string) (*order.Order, error) {
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

// Delete provides a mock function with given fields: ctx, id
func (_m *OrderService) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

// NewOrderService creates a new instance of OrderService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
