package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/service/notification"
)

// Publisher is a mock type for the Publisher type
type Publisher struct {
	mock.Mock
}

// Publish provides a mock function with given fields: ctx, m
func (_m *Publisher) Publish(ctx context.Context, m notification.Message) error {
	ret := _m.Called(ctx, m)
	r0 := ret.Error(0)
	return r0
}

// NewPublisher creates a new instance of Publisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
