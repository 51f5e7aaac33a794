package orders

import (
	"strings"

	"github.com/chitsa/order-service/internal/apperrors"
)

// Validation messages, one per rule so clients can tell failures apart.
const (
	ErrMsgRequestNil          = "order request cannot be nil"
	ErrMsgCustomerIDEmpty     = "customer id cannot be empty"
	ErrMsgItemsEmpty          = "order must contain at least one item"
	ErrMsgProductNameEmpty    = "product name cannot be empty"
	ErrMsgQuantityNotPositive = "quantity must be greater than 0"
	ErrMsgPriceNotPositive    = "price must be greater than 0"
)

// ValidateOrderRequest checks an incoming order request in a fixed rule
// order, stopping at the first violation. It has no side effects; all
// failures are InvalidArgument-kind errors.
func ValidateOrderRequest(req *OrderRequest, customerID string) error {
	if req == nil {
		return apperrors.New(apperrors.KindInvalidArgument, ErrMsgRequestNil)
	}
	if strings.TrimSpace(customerID) == "" {
		return apperrors.New(apperrors.KindInvalidArgument, ErrMsgCustomerIDEmpty)
	}
	if len(req.Items) == 0 {
		return apperrors.New(apperrors.KindInvalidArgument, ErrMsgItemsEmpty)
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return apperrors.New(apperrors.KindInvalidArgument, ErrMsgProductNameEmpty)
		}
		if item.Quantity == nil || *item.Quantity <= 0 {
			return apperrors.New(apperrors.KindInvalidArgument, ErrMsgQuantityNotPositive)
		}
		if item.Price == nil || *item.Price <= 0 {
			return apperrors.New(apperrors.KindInvalidArgument, ErrMsgPriceNotPositive)
		}
	}
	return nil
}
