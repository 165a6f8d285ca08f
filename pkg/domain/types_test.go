package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.01, Round2(10.005000001))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 12.5, Round2(12.5))
}

func TestMonthRange_DecemberRollsYear(t *testing.T) {
	r := MonthRange(12, 2024)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.End)
	assert.True(t, r.Contains(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(r.End))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2, 2024))
	assert.Equal(t, 28, DaysIn(2, 2023))
	assert.Equal(t, 31, DaysIn(12, 2023))
}

func TestParseMonthYear(t *testing.T) {
	m, y, err := ParseMonthYear("3/2024")
	require.NoError(t, err)
	assert.Equal(t, 3, m)
	assert.Equal(t, 2024, y)

	for _, invalid := range []string{"", "13/2024", "0/2024", "3-2024", "3/abc"} {
		_, _, err := ParseMonthYear(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(0, 500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	assert.Equal(t, 20, NewPagination(3, 10).Offset())
}
