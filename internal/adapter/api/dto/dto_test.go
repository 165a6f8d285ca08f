package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "sem registros", total: 0, pageSize: 10, want: 1},
		{name: "página exata", total: 20, pageSize: 10, want: 2},
		{name: "página parcial", total: 21, pageSize: 10, want: 3},
		{name: "tamanho inválido", total: 5, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateTotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestOrderQuery_ToFilters(t *testing.T) {
	minAmount := 10.0
	q := OrderQuery{
		Status:        "PENDING",
		PaymentStatus: []string{"PENDING", "PARTIALLY_PAID"},
		From:          "2024-03-01",
		To:            "2024-03-31",
		MinAmount:     &minAmount,
	}

	f := q.ToFilters()

	assert.Equal(t, order.StatusPending, f.Status)
	assert.Equal(t, []order.PaymentStatus{"PENDING", "PARTIALLY_PAID"}, f.PaymentStatus)
	assert.Equal(t, &minAmount, f.MinAmount)
	assert.False(t, f.IgnoreDefaultFilters)
	require.NotNil(t, f.DateRange)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.DateRange.Start)
	// to é inclusivo: o fim é o primeiro instante do dia seguinte
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), f.DateRange.End)
}

func TestOrderQuery_ToFilters_NoRange(t *testing.T) {
	f := OrderQuery{All: true}.ToFilters()

	assert.Nil(t, f.DateRange)
	assert.True(t, f.IgnoreDefaultFilters)
}

func TestOrderRequest_ToRequestOrder(t *testing.T) {
	req := OrderRequest{
		CustomerID: "c-1",
		Products: []OrderProductRequest{{
			ProductID:   "p-1",
			Quantity:    2,
			Additionals: []AdditionalRequest{{ItemID: "a-1", Quantity: 1}},
		}},
		Delivery: DeliveryRequest{DeliveryType: order.DeliveryTypeWithdrawal},
		Discount: 5,
	}

	got := req.ToRequestOrder()

	require.Len(t, got.Products, 1)
	assert.Equal(t, "p-1", got.Products[0].ProductID)
	assert.Equal(t, []order.RequestedAdditional{{ItemID: "a-1", Quantity: 1}}, got.Products[0].Additionals)
	assert.Equal(t, order.DeliveryTypeWithdrawal, got.Delivery.Type)
	assert.Nil(t, got.Delivery.Address)
	assert.Equal(t, 5.0, got.Discount)
}

func TestExpenseQuery_ToFilters(t *testing.T) {
	f := ExpenseQuery{Query: "gás", MonthYear: "2/2024"}.ToFilters()

	assert.Equal(t, "gás", f.Query)
	require.NotNil(t, f.DateRange)
	assert.Equal(t, domain.MonthRange(2, 2024), *f.DateRange)

	assert.Nil(t, ExpenseQuery{}.ToFilters().DateRange)
}

func TestNewListResponse(t *testing.T) {
	page := domain.NewPagination(2, 10)
	list := NewListResponse([]string{"a"}, 11, page)

	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, 2, list.TotalPages)
	assert.Equal(t, 11, list.Total)
}
