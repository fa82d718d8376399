package validation

import (
	"fmt"
	"strings"

	"github.com/Second-Serve/backend/order-svc/internal/domain"
)

// MaxQuantity caps the bags requested on a single line.
const MaxQuantity = 1000

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidatePlaceOrderRequest(req *domain.PlaceOrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		}
	}

	for i, item := range req.Items {
		if err := validateLineItem(item, i); err != nil {
			return err
		}
	}
	return nil
}

func validateLineItem(item domain.LineItem, index int) error {
	if strings.TrimSpace(item.RestaurantID) == "" {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].restaurantId", index),
			Message: "restaurant id is required",
		}
	}

	if strings.Contains(item.RestaurantID, "/") {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].restaurantId", index),
			Message: "restaurant id must not contain '/'",
		}
	}

	if item.Quantity <= 0 {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].quantity", index),
			Message: "quantity must be a positive integer",
		}
	}

	if item.Quantity > MaxQuantity {
		return ValidationError{
			Field:   fmt.Sprintf("items[%d].quantity", index),
			Message: fmt.Sprintf("quantity must not exceed %d", MaxQuantity),
		}
	}
	return nil
}
