package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
)

// PlanRepository is a mock type for the PlanRepository type
type PlanRepository struct {
	mock.Mock
}

// SelectWithInvoices provides a mock function with given fields: ctx, organizationID
func (_m *PlanRepository) SelectWithInvoices(ctx context.Context, organizationID string) ([]plan.OrganizationPlan, error) {
	ret := _m.Called(ctx, organizationID)
	var r0 []plan.OrganizationPlan
	if rf, ok := ret.Get(0).(func(context.Context, string) []plan.OrganizationPlan); ok {
		r0 = rf(ctx, organizationID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]plan.OrganizationPlan)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectFeature provides a mock function with given fields: ctx, planID, name
func (_m *PlanRepository) SelectFeature(ctx context.Context, planID string, name plan.FeatureName) (*plan.Feature, error) {
	ret := _m.Called(ctx, planID, name)
	var r0 *plan.Feature
	if rf, ok := ret.Get(0).(func(context.Context, string, plan.FeatureName) *plan.Feature); ok {
		r0 = rf(ctx, planID, name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*plan.Feature)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewPlanRepository creates a new instance of PlanRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPlanRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PlanRepository {
	m := &PlanRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
