package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedMapper(t *testing.T) (*Mapper, time.Time) {
	t.Helper()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	m := NewMapper()
	m.nowFunc = func() time.Time { return now }
	return m, now
}

func TestToOrder_CopiesItemsInOrder(t *testing.T) {
	m, now := fixedMapper(t)

	order := m.ToOrder(validRequest(), "cust-1")

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, "cust-1", order.CustomerID)
	assert.Equal(t, now, order.CreatedAt)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "A", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 10.0, order.Items[0].Price)
	assert.Equal(t, "B", order.Items[1].ProductName)
	assert.NotEmpty(t, order.Items[0].ProductID)
	assert.NotEqual(t, order.Items[0].ProductID, order.Items[1].ProductID)
}

func TestToOrderResponse_DecimalTotal(t *testing.T) {
	m, now := fixedMapper(t)

	order := Order{
		OrderID:    "o1",
		CustomerID: "cust-1",
		CreatedAt:  now,
		Items: []OrderItem{
			{ProductName: "A", Quantity: 2, Price: 10.00},
			{ProductName: "B", Quantity: 1, Price: 5.50},
		},
	}

	resp := m.ToOrderResponse(&order)

	assert.Equal(t, "o1", resp.OrderID)
	assert.Equal(t, "cust-1", resp.CustomerID)
	assert.True(t, resp.OrderTotal.Equal(decimal.RequireFromString("25.50")),
		"total = %s", resp.OrderTotal)
	assert.Equal(t, "2025-03-14T09:26:53", resp.CreatedAt)
}

func TestToOrderResponse_NoFloatDrift(t *testing.T) {
	m, _ := fixedMapper(t)

	// 0.1 + 0.1 + 0.1 drifts under binary float addition
	order := Order{
		Items: []OrderItem{
			{ProductName: "A", Quantity: 3, Price: 0.1},
		},
	}

	resp := m.ToOrderResponse(&order)
	assert.True(t, resp.OrderTotal.Equal(decimal.RequireFromString("0.3")),
		"total = %s", resp.OrderTotal)
}

func TestToOrderItemDTO_Lossless(t *testing.T) {
	m, _ := fixedMapper(t)

	dto := m.ToOrderItemDTO(OrderItem{ProductID: "p1", ProductName: "A", Quantity: 4, Price: 2.25})

	assert.Equal(t, "A", dto.ProductName)
	require.NotNil(t, dto.Quantity)
	assert.Equal(t, 4, *dto.Quantity)
	require.NotNil(t, dto.Price)
	assert.Equal(t, 2.25, *dto.Price)
}
