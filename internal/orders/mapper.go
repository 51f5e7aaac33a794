package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatedAtLayout is the fixed serialization format for order timestamps.
const CreatedAtLayout = "2006-01-02T15:04:05"

// Mapper converts between wire DTOs and order documents. It assumes its
// inputs already passed ValidateOrderRequest.
type Mapper struct {
	nowFunc func() time.Time
}

func NewMapper() *Mapper {
	return &Mapper{nowFunc: time.Now}
}

// ToOrder builds a new order document from a validated request. The creation
// timestamp and all ids are service-assigned.
func (m *Mapper) ToOrder(req *OrderRequest, customerID string) Order {
	items := make([]OrderItem, 0, len(req.Items))
	for _, dto := range req.Items {
		items = append(items, OrderItem{
			ProductID:   uuid.NewString(),
			ProductName: dto.ProductName,
			Quantity:    *dto.Quantity,
			Price:       *dto.Price,
		})
	}
	return Order{
		OrderID:    uuid.NewString(),
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  m.nowFunc().UTC(),
	}
}

// ToOrderResponse maps a persisted order to its response DTO, computing the
// total with decimal arithmetic so money sums never drift.
func (m *Mapper) ToOrderResponse(order *Order) OrderResponse {
	return OrderResponse{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		OrderTotal: orderTotal(order.Items),
		CreatedAt:  order.CreatedAt.Format(CreatedAtLayout),
	}
}

// ToOrderItemDTO is a lossless 1:1 field copy; the persisted product id does
// not travel to clients.
func (m *Mapper) ToOrderItemDTO(item OrderItem) OrderItemDTO {
	quantity := item.Quantity
	price := item.Price
	return OrderItemDTO{
		ProductName: item.ProductName,
		Quantity:    &quantity,
		Price:       &price,
	}
}

func orderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		subtotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
	}
	return total
}
