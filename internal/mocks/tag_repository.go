package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
)

// TagRepository is a mock type for the TagRepository type
type TagRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, t
func (_m *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	ret := _m.Called(ctx, t)
	r0 := ret.Error(0)
	return r0
}

// SelectByIDs provides a mock function with given fields: ctx, ids
func (_m *TagRepository) SelectByIDs(ctx context.Context, ids []string) ([]*tag.Tag, error) {
	ret := _m.Called(ctx, ids)
	var r0 []*tag.Tag
	if rf, ok := ret.Get(0).(func(context.Context, []string) []*tag.Tag); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*tag.Tag)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// Count provides a mock function with given fields: ctx
func (_m *TagRepository) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)
	r0 := ret.Int(0)
	r1 := ret.Error(1)
	return r0, r1
}

// NewTagRepository creates a new instance of TagRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTagRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TagRepository {
	m := &TagRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
