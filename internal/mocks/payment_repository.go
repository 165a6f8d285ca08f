package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
)

// PaymentRepository is a mock type for the PaymentRepository type
type PaymentRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, p
func (_m *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	ret := _m.Called(ctx, p)
	r0 := ret.Error(0)
	return r0
}

// SelectByOrder provides a mock function with given fields: ctx, orderID
func (_m *PaymentRepository) SelectByOrder(ctx context.Context, orderID string) ([]payment.Payment, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []payment.Payment
	if rf, ok := ret.Get(0).(func(context.Context, string) []payment.Payment); ok {
		r0 = rf(ctx, orderID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]payment.Payment)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewPaymentRepository creates a new instance of PaymentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
