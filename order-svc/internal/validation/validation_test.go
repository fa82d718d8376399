package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/Second-Serve/backend/order-svc/internal/domain"
)

func TestValidatePlaceOrderRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       *domain.PlaceOrderRequest
		wantField string
	}{
		{
			name: "valid request",
			req: &domain.PlaceOrderRequest{Items: []domain.LineItem{
				{RestaurantID: "rest-1", Quantity: 1},
				{RestaurantID: "rest-2", Quantity: 3},
			}},
		},
		{
			name:      "nil request",
			req:       nil,
			wantField: "items",
		},
		{
			name:      "empty item list",
			req:       &domain.PlaceOrderRequest{},
			wantField: "items",
		},
		{
			name:      "blank restaurant id",
			req:       &domain.PlaceOrderRequest{Items: []domain.LineItem{{RestaurantID: "  ", Quantity: 1}}},
			wantField: "items[0].restaurantId",
		},
		{
			name:      "path-like restaurant id",
			req:       &domain.PlaceOrderRequest{Items: []domain.LineItem{{RestaurantID: "users/abc", Quantity: 1}}},
			wantField: "items[0].restaurantId",
		},
		{
			name: "zero quantity",
			req: &domain.PlaceOrderRequest{Items: []domain.LineItem{
				{RestaurantID: "rest-1", Quantity: 1},
				{RestaurantID: "rest-2", Quantity: 0},
			}},
			wantField: "items[1].quantity",
		},
		{
			name:      "negative quantity",
			req:       &domain.PlaceOrderRequest{Items: []domain.LineItem{{RestaurantID: "rest-1", Quantity: -2}}},
			wantField: "items[0].quantity",
		},
		{
			name:      "quantity at the cap",
			req:       &domain.PlaceOrderRequest{Items: []domain.LineItem{{RestaurantID: "rest-1", Quantity: MaxQuantity}}},
		},
		{
			name: "quantity above the cap",
			req: &domain.PlaceOrderRequest{Items: []domain.LineItem{
				{RestaurantID: "rest-1", Quantity: 1},
				{RestaurantID: "rest-1", Quantity: math.MaxInt32},
			}},
			wantField: "items[1].quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaceOrderRequest(tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidatePlaceOrderRequest() unexpected error = %v", err)
				}
				return
			}

			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("ValidatePlaceOrderRequest() error = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("ValidatePlaceOrderRequest() field = %s, want %s", validationErr.Field, tt.wantField)
			}
		})
	}
}
