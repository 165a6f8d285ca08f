package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// ExpenseRepository is a mock type for the ExpenseRepository type
type ExpenseRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, e
func (_m *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	ret := _m.Called(ctx, e)
	r0 := ret.Error(0)
	return r0
}

// Update provides a mock function with given fields: ctx, id, patch
func (_m *ExpenseRepository) Update(ctx context.Context, id string, patch expense.Patch) (*expense.Expense, error) {
	ret := _m.Called(ctx, id, patch)
	var r0 *expense.Expense
	if rf, ok := ret.Get(0).(func(context.Context, string, expense.Patch) *expense.Expense); ok {
		r0 = rf(ctx, id, patch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectByID provides a mock function with given fields: ctx, id
func (_m *ExpenseRepository) SelectByID(ctx context.Context, id string) (*expense.Expense, error) {
	ret := _m.Called(ctx, id)
	var r0 *expense.Expense
	if rf, ok := ret.Get(0).(func(context.Context, string) *expense.Expense); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*expense.Expense)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAll provides a mock function with given fields: ctx, filters, page
func (_m *ExpenseRepository) SelectAll(ctx context.Context, filters expense.Filters, page domain.Pagination) ([]*expense.Expense, error) {
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

// SelectCountByDate provides a mock function with given fields: ctx, r
func (_m *ExpenseRepository) SelectCountByDate(ctx context.Context, r domain.DateRange) (int, error) {
	ret := _m.Called(ctx, r)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// DeleteByID provides a mock function with given fields: ctx, id
func (_m *ExpenseRepository) DeleteByID(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	r0 := ret.Error(0)
	return r0
}

// NewExpenseRepository creates a new instance of ExpenseRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewExpenseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ExpenseRepository {
	m := &ExpenseRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
