package transport

import (
	"context"
	"strconv"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/session"
)

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.ID = 0
	order.OrderDate = nil
	var created domain.Order
	err := c.Post(ctx, "/orders", order, &created)
	return echoed(created, order, created.ID, err)
}

func (c *Client) UpdateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	var updated domain.Order
	err := c.Put(ctx, "/orders/"+strconv.Itoa(order.ID), order, &updated)
	return echoed(updated, order, updated.ID, err)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.Delete(ctx, "/orders/"+strconv.Itoa(id))
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := c.Get(ctx, "/restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	var dishes []domain.Dish
	if err := c.Get(ctx, "/dishes", &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	TokenUpper string `json:"Token"`
	User       struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
}

// Login exchanges credentials for a bearer token and the caller's role.
func (c *Client) Login(ctx context.Context, username, password string) (session.Credentials, error) {
	var resp loginResponse
	if err := c.Post(ctx, "/Auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return session.Credentials{}, err
	}
	token := resp.Token
	if token == "" {
		token = resp.TokenUpper
	}
	return session.Credentials{
		Token:    token,
		UserID:   resp.User.UserID,
		Username: resp.User.Username,
		Role:     resp.User.Role,
	}, nil
}

var _ session.Authenticator = (*Client)(nil)
