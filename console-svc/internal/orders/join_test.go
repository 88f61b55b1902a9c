package orders

import (
	"testing"

	"overcooked-console/console-svc/internal/catalog"
	"overcooked-console/console-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	idx := catalog.New(
		[]domain.Restaurant{{ID: 10, Name: "Trattoria"}},
		[]domain.Dish{{ID: 100, Name: "Pizza", Price: decimal.RequireFromString("4.50"), RestaurantID: 10}},
		[]domain.User{{ID: 1, FirstName: "Ann", LastName: "Lee"}, {ID: 2}},
	)

	tests := []struct {
		name           string
		order          domain.Order
		wantUser       string
		wantRestaurant string
		wantTotal      string
		wantDetails    []string
	}{
		{
			name:           "fully resolved",
			order:          domain.Order{UserID: 1, RestaurantID: 10, Lines: []domain.OrderLine{{DishID: 100, Quantity: 2}}},
			wantUser:       "Ann Lee",
			wantRestaurant: "Trattoria",
			wantTotal:      "9",
			wantDetails:    []string{"Pizza x 2"},
		},
		{
			name:           "unknown references",
			order:          domain.Order{UserID: 5, RestaurantID: 50, Lines: []domain.OrderLine{{DishID: 7, Quantity: 1}}},
			wantUser:       "N/A",
			wantRestaurant: "N/A",
			wantTotal:      "0",
			wantDetails:    []string{"N/A x 1"},
		},
		{
			name:           "user without a name",
			order:          domain.Order{UserID: 2, RestaurantID: 10},
			wantUser:       "N/A",
			wantRestaurant: "Trattoria",
			wantTotal:      "0",
			wantDetails:    []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rows := Join([]domain.Order{testCase.order}, idx)

			assert.Len(t, rows, 1)
			assert.Equal(t, testCase.wantUser, rows[0].UserName)
			assert.Equal(t, testCase.wantRestaurant, rows[0].RestaurantName)
			assert.True(t, decimal.RequireFromString(testCase.wantTotal).Equal(rows[0].TotalPrice))
			assert.Equal(t, testCase.wantDetails, rows[0].Details)
		})
	}
}

func TestJoin_DoesNotAliasOrders(t *testing.T) {
	orders := []domain.Order{{ID: 1, Lines: []domain.OrderLine{{DishID: 1, Quantity: 1}}}}

	rows := Join(orders, nil)
	orders[0].Lines[0].Quantity = 9

	assert.Equal(t, 1, rows[0].Order.Lines[0].Quantity)
}
