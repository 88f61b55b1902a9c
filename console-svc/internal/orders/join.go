package orders

import (
	"strconv"

	"overcooked-console/console-svc/internal/catalog"
	"overcooked-console/console-svc/internal/domain"
)

const notAvailable = "N/A"

// Join resolves names and totals for every order against idx.
func Join(orders []domain.Order, idx *catalog.Index) []domain.JoinedRow {
	rows := make([]domain.JoinedRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, joinOrder(order, idx))
	}
	return rows
}

func joinOrder(order domain.Order, idx *catalog.Index) domain.JoinedRow {
	row := domain.JoinedRow{
		Order:          order.Clone(),
		UserName:       notAvailable,
		RestaurantName: notAvailable,
		Details:        make([]string, 0, len(order.Lines)),
	}

	if u, ok := idx.User(order.UserID); ok && u.DisplayName() != "" {
		row.UserName = u.DisplayName()
	}
	if r, ok := idx.Restaurant(order.RestaurantID); ok && r.Name != "" {
		row.RestaurantName = r.Name
	}

	_, row.TotalPrice = idx.Totals(order.Lines)

	for _, line := range order.Lines {
		name := notAvailable
		if d, ok := idx.Dish(line.DishID); ok && d.Name != "" {
			name = d.Name
		}
		row.Details = append(row.Details, name+" x "+strconv.Itoa(line.Quantity))
	}
	return row
}
