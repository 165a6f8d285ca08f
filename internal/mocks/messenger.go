package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// Messenger is a mock type for the Messenger type
type Messenger struct {
	mock.Mock
}

// CheckReachable provides a mock function with given fields: ctx, number
func (_m *Messenger) CheckReachable(ctx context.Context, number string) (bool, error) {
	ret := _m.Called(ctx, number)
	r0 := ret.Bool(0)
	r1 := ret.Error(1)
	return r0, r1
}

// Send provides a mock function with given fields: ctx, number, body
func (_m *Messenger) Send(ctx context.Context, number string, body string) (string, error) {
	ret := _m.Called(ctx, number, body)
	r0 := ret.String(0)
	r1 := ret.Error(1)
	return r0, r1
}

// NewMessenger creates a new instance of Messenger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMessenger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Messenger {
	m := &Messenger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
