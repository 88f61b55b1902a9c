package composer

import (
	"fmt"

	"overcooked-console/console-svc/internal/catalog"
	"overcooked-console/console-svc/internal/domain"
)

// validateLines reports at most one lines-level message: the first failing
// row by index, then the aggregate ceiling.
func validateLines(lines []domain.OrderLine, restaurantID int, idx *catalog.Index) string {
	if len(lines) == 0 {
		return "At least one dish must be added."
	}

	total := 0
	for i, line := range lines {
		row := i + 1
		switch {
		case line.DishID == 0:
			return fmt.Sprintf("Dish at row %d is required.", row)
		case !dishAvailable(idx, restaurantID, line.DishID):
			return fmt.Sprintf("Dish at row %d is not available at the selected restaurant.", row)
		case line.Quantity < domain.MinLineQuantity:
			return fmt.Sprintf("Quantity at row %d must be greater than 0.", row)
		case line.Quantity > domain.MaxLineQuantity:
			return fmt.Sprintf("Quantity at row %d cannot exceed %d.", row, domain.MaxLineQuantity)
		}
		total += line.Quantity
	}

	if total > domain.MaxOrderQuantity {
		return fmt.Sprintf("Total quantity cannot exceed %d dishes.", domain.MaxOrderQuantity)
	}
	return ""
}

// dishAvailable only rejects dishes known to belong elsewhere, so a
// partially loaded catalog does not block an edit.
func dishAvailable(idx *catalog.Index, restaurantID, dishID int) bool {
	d, ok := idx.Dish(dishID)
	return !ok || d.RestaurantID == restaurantID
}

func validateDraft(draft domain.Order, idx *catalog.Index) domain.Errors {
	errs := domain.Errors{}
	set := func(field, msg string) {
		if msg != "" {
			errs[field] = msg
		}
	}

	set(FieldUser, validateUser(draft.UserID))
	set(FieldStatus, validateStatus(draft.Status))
	set(FieldRestaurant, validateRestaurant(draft.RestaurantID))
	set(FieldDeliveryAddress, validateDeliveryAddress(draft.DeliveryAddress))
	set(FieldLines, validateLines(draft.Lines, draft.RestaurantID, idx))

	return errs
}
