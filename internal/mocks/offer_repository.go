package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/offer"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// OfferRepository is a mock type for the OfferRepository type
type OfferRepository struct {
	mock.Mock
}

// SelectByID provides a mock function with given fields: ctx, id
func (_m *OfferRepository) SelectByID(ctx context.Context, id string) (*offer.Offer, error) {
	ret := _m.Called(ctx, id)
	var r0 *offer.Offer
	if rf, ok := ret.Get(0).(func(context.Context, string) *offer.Offer); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*offer.Offer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// SelectAll provides a mock function with given fields: ctx, onlyVisible, page
func (_m *OfferRepository) SelectAll(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*offer.Offer, error) {
	ret := _m.Called(ctx, onlyVisible, page)
	var r0 []*offer.Offer
	if rf, ok := ret.Get(0).(func(context.Context, bool, domain.Pagination) []*offer.Offer); ok {
		r0 = rf(ctx, onlyVisible, page)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*offer.Offer)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewOfferRepository creates a new instance of OfferRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOfferRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OfferRepository {
	m := &OfferRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
