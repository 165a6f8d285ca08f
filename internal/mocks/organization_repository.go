package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/organization"
)

// OrganizationRepository is a mock type for the OrganizationRepository type
type OrganizationRepository struct {
	mock.Mock
}

// Select provides a mock function with given fields: ctx
func (_m *OrganizationRepository) Select(ctx context.Context) (*organization.Organization, error) {
	ret := _m.Called(ctx)
	var r0 *organization.Organization
	if rf, ok := ret.Get(0).(func(context.Context) *organization.Organization); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*organization.Organization)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewOrganizationRepository creates a new instance of OrganizationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrganizationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrganizationRepository {
	m := &OrganizationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
