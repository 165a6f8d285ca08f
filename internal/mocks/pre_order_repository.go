package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// PreOrderRepository is a mock type for the PreOrderRepository type
type PreOrderRepository struct {
	mock.Mock
}

// SelectByID provides a mock function with given fields: ctx, id
func (_m *PreOrderRepository) SelectByID(ctx context.Context, id string) (*preorder.PreOrder, error) {
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

// SelectAll provides a mock function with given fields: ctx, status, page
func (_m *PreOrderRepository) SelectAll(ctx context.Context, status preorder.Status, page domain.Pagination) ([]*preorder.PreOrder, error) {
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

// CountByStatus provides a mock function with given fields: ctx, status
func (_m *PreOrderRepository) CountByStatus(ctx context.Context, status preorder.Status) (int, error) {
	ret := _m.Called(ctx, status)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// UpdateStatus provides a mock function with given fields: ctx, id, status, orderID
func (_m *PreOrderRepository) UpdateStatus(ctx context.Context, id string, status preorder.Status, orderID string) (*preorder.PreOrder, error) {
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

// NewPreOrderRepository creates a new instance of PreOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreOrderRepository {
	m := &PreOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
