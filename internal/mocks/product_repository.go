package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, p
func (_m *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	ret := _m.Called(ctx, p)
	r0 := ret.Error(0)
	return r0
}

// SelectByID provides a mock function with given fields: ctx, id
func (_m *ProductRepository) SelectByID(ctx context.Context, id string) (*product.Product, error) {
	ret := _m.Called(ctx, id)
	var r0 *product.Product
	if rf, ok := ret.Get(0).(func(context.Context, string) *product.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*product.Product)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectByIDs provides a mock function with given fields: ctx, ids
func (_m *ProductRepository) SelectByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	ret := _m.Called(ctx, ids)
	var r0 []*product.Product
	if rf, ok := ret.Get(0).(func(context.Context, []string) []*product.Product); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*product.Product)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAll provides a mock function with given fields: ctx, query, page
func (_m *ProductRepository) SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*product.Product, error) {
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

// Count provides a mock function with given fields: ctx
func (_m *ProductRepository) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// NewProductRepository creates a new instance of ProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
