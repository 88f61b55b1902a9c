package catalog

import (
	"overcooked-console/console-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Index is a read-only lookup over one load of the reference collections.
// A nil *Index behaves as an empty one.
type Index struct {
	restaurants     []domain.Restaurant
	dishes          []domain.Dish
	users           []domain.User
	restaurantsByID map[int]domain.Restaurant
	dishesByID      map[int]domain.Dish
	usersByID       map[int]domain.User
}

func New(restaurants []domain.Restaurant, dishes []domain.Dish, users []domain.User) *Index {
	idx := &Index{
		restaurants:     append([]domain.Restaurant(nil), restaurants...),
		dishes:          append([]domain.Dish(nil), dishes...),
		users:           append([]domain.User(nil), users...),
		restaurantsByID: make(map[int]domain.Restaurant, len(restaurants)),
		dishesByID:      make(map[int]domain.Dish, len(dishes)),
		usersByID:       make(map[int]domain.User, len(users)),
	}
	for _, r := range restaurants {
		idx.restaurantsByID[r.ID] = r
	}
	for _, d := range dishes {
		idx.dishesByID[d.ID] = d
	}
	for _, u := range users {
		idx.usersByID[u.ID] = u
	}
	return idx
}

func (i *Index) Restaurant(id int) (domain.Restaurant, bool) {
	if i == nil {
		return domain.Restaurant{}, false
	}
	r, ok := i.restaurantsByID[id]
	return r, ok
}

func (i *Index) Dish(id int) (domain.Dish, bool) {
	if i == nil {
		return domain.Dish{}, false
	}
	d, ok := i.dishesByID[id]
	return d, ok
}

func (i *Index) User(id int) (domain.User, bool) {
	if i == nil {
		return domain.User{}, false
	}
	u, ok := i.usersByID[id]
	return u, ok
}

// DishesFor returns the restaurant-scoped catalog in fetch order.
func (i *Index) DishesFor(restaurantID int) []domain.Dish {
	if i == nil || restaurantID == 0 {
		return nil
	}
	var out []domain.Dish
	for _, d := range i.dishes {
		if d.RestaurantID == restaurantID {
			out = append(out, d)
		}
	}
	return out
}

// Offers reports whether dishID is part of restaurantID's catalog.
func (i *Index) Offers(restaurantID, dishID int) bool {
	d, ok := i.Dish(dishID)
	return ok && d.RestaurantID == restaurantID
}

// Totals sums quantities over all lines and prices over the lines whose dish
// resolves; unresolved lines contribute zero to the price.
func (i *Index) Totals(lines []domain.OrderLine) (int, decimal.Decimal) {
	quantity := 0
	price := decimal.Zero
	for _, line := range lines {
		quantity += line.Quantity
		if d, ok := i.Dish(line.DishID); ok {
			price = price.Add(d.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return quantity, price
}

func (i *Index) Restaurants() []domain.Restaurant {
	if i == nil {
		return nil
	}
	return append([]domain.Restaurant(nil), i.restaurants...)
}

func (i *Index) Users() []domain.User {
	if i == nil {
		return nil
	}
	return append([]domain.User(nil), i.users...)
}
