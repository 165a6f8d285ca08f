package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// CustomerRepository is a mock type for the CustomerRepository type
type CustomerRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, c
func (_m *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	ret := _m.Called(ctx, c)
	r0 := ret.Error(0)
	return r0
}

// SelectByID provides a mock function with given fields: ctx, id
func (_m *CustomerRepository) SelectByID(ctx context.Context, id string) (*customer.Customer, error) {
	ret := _m.Called(ctx, id)
	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *customer.Customer); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectByPhone provides a mock function with given fields: ctx, phone
func (_m *CustomerRepository) SelectByPhone(ctx context.Context, phone customer.Phone) (*customer.Customer, error) {
	ret := _m.Called(ctx, phone)
	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, customer.Phone) *customer.Customer); ok {
		r0 = rf(ctx, phone)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectByEmail provides a mock function with given fields: ctx, email
func (_m *CustomerRepository) SelectByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	ret := _m.Called(ctx, email)
	var r0 *customer.Customer
	if rf, ok := ret.Get(0).(func(context.Context, string) *customer.Customer); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*customer.Customer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAll provides a mock function with given fields: ctx, query, page
func (_m *CustomerRepository) SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*customer.Customer, error) {
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

// Update provides a mock function with given fields: ctx, c
func (_m *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	ret := _m.Called(ctx, c)
	r0 := ret.Error(0)
	return r0
}

// Count provides a mock function with given fields: ctx
func (_m *CustomerRepository) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// NewCustomerRepository creates a new instance of CustomerRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
