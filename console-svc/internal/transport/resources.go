package transport

import (
	"context"
	"errors"
	"strconv"

	"overcooked-console/console-svc/internal/domain"
)

func (c *Client) CreateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	var out domain.Restaurant
	err := c.Post(ctx, "/restaurants", r, &out)
	return echoed(out, r, out.ID, err)
}

func (c *Client) UpdateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	var out domain.Restaurant
	err := c.Put(ctx, "/restaurants/"+strconv.Itoa(r.ID), r, &out)
	return echoed(out, r, out.ID, err)
}

func (c *Client) DeleteRestaurant(ctx context.Context, id int) error {
	return c.Delete(ctx, "/restaurants/"+strconv.Itoa(id))
}

func (c *Client) CreateDish(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	var out domain.Dish
	err := c.Post(ctx, "/dishes", d, &out)
	return echoed(out, d, out.ID, err)
}

func (c *Client) UpdateDish(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	var out domain.Dish
	err := c.Put(ctx, "/dishes/"+strconv.Itoa(d.ID), d, &out)
	return echoed(out, d, out.ID, err)
}

func (c *Client) DeleteDish(ctx context.Context, id int) error {
	return c.Delete(ctx, "/dishes/"+strconv.Itoa(id))
}

func (c *Client) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	var out domain.User
	err := c.Post(ctx, "/users", u, &out)
	return echoed(out, u, out.ID, err)
}

func (c *Client) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	var out domain.User
	err := c.Put(ctx, "/users/"+strconv.Itoa(u.ID), u, &out)
	return echoed(out, u, out.ID, err)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.Delete(ctx, "/users/"+strconv.Itoa(id))
}

// echoed returns the saved entity the API answered with. An empty or
// unreadable 2xx body still means the change was accepted, so the input is
// returned in its place.
func echoed[T any](out, in T, outID int, err error) (T, error) {
	switch {
	case errors.Is(err, ErrUnreadableReply):
		return in, nil
	case err != nil:
		var zero T
		return zero, err
	case outID == 0:
		return in, nil
	}
	return out, nil
}
