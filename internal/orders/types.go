package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents the document stored in the orders DynamoDB table.
type Order struct {
	OrderID    string      `dynamodbav:"order_id"`    // PK
	CustomerID string      `dynamodbav:"customer_id"` // GSI hash key
	Items      []OrderItem `dynamodbav:"items"`
	CreatedAt  time.Time   `dynamodbav:"created_at"`
}

// OrderItem is a line item inside an order document.
type OrderItem struct {
	ProductID   string  `dynamodbav:"product_id"`
	ProductName string  `dynamodbav:"product_name"`
	Quantity    int     `dynamodbav:"quantity"`
	Price       float64 `dynamodbav:"price"`
}

// OrderRequest is the payload for POST /api/orders/create. The customer id
// comes from the bearer token, never from the body.
type OrderRequest struct {
	Items []OrderItemDTO `json:"items"`
}

// OrderItemDTO is the wire shape of a line item. Quantity and Price are
// pointers so the validator can tell a missing field from a zero.
type OrderItemDTO struct {
	ProductName string   `json:"productName"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// OrderResponse summarizes a persisted order for clients. OrderTotal is
// derived at mapping time and never stored.
type OrderResponse struct {
	OrderID    string          `json:"orderId"`
	CustomerID string          `json:"customerId"`
	OrderTotal decimal.Decimal `json:"orderTotal"`
	CreatedAt  string          `json:"createdAt"`
}
