package mocks

import (
	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/service/notification"
)

// Emitter is a mock type for the Emitter type
type Emitter struct {
	mock.Mock
}

// Emit provides a mock function with given fields: e
func (_m *Emitter) Emit(e notification.Event) {
	_m.Called(e)
}

// NewEmitter creates a new instance of Emitter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEmitter(t interface {
	mock.TestingT
	Cleanup(func())
}) *Emitter {
	m := &Emitter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
