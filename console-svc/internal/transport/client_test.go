package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/transport"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClient struct{}

func (failingClient) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestClient_ListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"order_Id":1,"user_Id":2,"status":"Pending","restaurant_Id":3,
			"order_Date":"2024-03-05T14:07:09.123","delivery_Address":"Elm St",
			"orderDetails":[{"dish_Id":4,"quantity":2}]}]`))
	}))
	defer srv.Close()

	client := transport.NewClient(srv.URL+"/api/", srv.Client(), nil).WithToken("tok")

	orders, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 3, orders[0].RestaurantID)
	assert.Equal(t, []domain.OrderLine{{DishID: 4, Quantity: 2}}, orders[0].Lines)
	require.NotNil(t, orders[0].OrderDate)
	assert.Equal(t, 14, orders[0].OrderDate.Hour())
}

func TestClient_ListDishesDecodesPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"dish_Id":1,"dish_Name":"Soup","price":4.75,"restaurant_Id":2}]`))
	}))
	defer srv.Close()

	dishes, err := transport.NewClient(srv.URL, srv.Client(), nil).ListDishes(context.Background())

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.75").Equal(dishes[0].Price))
}

func TestClient_CreateOrderOmitsServerFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.NotContains(t, payload, "order_Id")
		assert.NotContains(t, payload, "order_Date")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"order_Id":42,"restaurant_Id":1,"orderDetails":[]}`))
	}))
	defer srv.Close()

	created, err := transport.NewClient(srv.URL, srv.Client(), nil).CreateOrder(context.Background(), domain.Order{
		RestaurantID: 1,
		Lines:        []domain.OrderLine{{DishID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
}

func TestClient_SaveWithPlainTextReply(t *testing.T) {
	var saves int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		saves++
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Order created successfully"))
	}))
	defer srv.Close()
	client := transport.NewClient(srv.URL, srv.Client(), nil)

	draft := domain.Order{UserID: 2, RestaurantID: 1, Lines: []domain.OrderLine{{DishID: 1, Quantity: 1}}}
	created, err := client.CreateOrder(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, draft.Lines, created.Lines)

	updated, err := client.UpdateOrder(context.Background(), domain.Order{ID: 7, DeliveryAddress: "Elm St"})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.ID)

	dish, err := client.CreateDish(context.Background(), domain.Dish{Name: "Soup", RestaurantID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Soup", dish.Name)

	assert.Equal(t, 3, saves)
}

func TestClient_ListWithPlainTextReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a list"))
	}))
	defer srv.Close()

	_, err := transport.NewClient(srv.URL, srv.Client(), nil).ListOrders(context.Background())

	assert.ErrorIs(t, err, transport.ErrUnreadableReply)
}

func TestClient_UpdateAndDeletePaths(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()
	client := transport.NewClient(srv.URL, srv.Client(), nil)

	updated, err := client.UpdateOrder(context.Background(), domain.Order{ID: 5, DeliveryAddress: "x"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.ID)

	require.NoError(t, client.DeleteOrder(context.Background(), 5))
	require.NoError(t, client.DeleteDish(context.Background(), 8))

	assert.Equal(t, []string{"PUT /orders/5", "DELETE /orders/5", "DELETE /dishes/8"}, seen)
}

func TestClient_ServerRejection(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "message from body", status: http.StatusBadRequest, body: `{"message":"Dish is sold out"}`, wantMessage: "Dish is sold out"},
		{name: "unauthorized default", status: http.StatusUnauthorized, body: ``, wantMessage: "Unauthorized. Please login again."},
		{name: "service unavailable", status: http.StatusServiceUnavailable, body: `{}`, wantMessage: "Service is temporarily unavailable. Please try again later."},
		{name: "unexpected status", status: http.StatusTeapot, body: ``, wantMessage: "Unexpected error occurred (Status code: 418)."},
		{name: "plain text body", status: http.StatusNotFound, body: `order missing`, wantMessage: "order missing"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer srv.Close()

			_, err := transport.NewClient(srv.URL, srv.Client(), nil).ListUsers(context.Background())

			var httpErr *transport.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, testCase.status, httpErr.Status)
			assert.Equal(t, testCase.wantMessage, transport.UserMessage(err))
			assert.Equal(t, testCase.status, transport.StatusCode(err))
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	client := transport.NewClient("http://ordering.invalid", failingClient{}, nil)

	_, err := client.ListRestaurants(context.Background())

	var netErr *transport.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "Server is not responding. Please check your network connection.", transport.UserMessage(err))
	assert.Equal(t, http.StatusBadGateway, transport.StatusCode(err))
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Auth/login", r.URL.Path)
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ann", req["username"])
		w.Write([]byte(`{"Token":"abc","user":{"userId":3,"username":"ann","role":"Admin"}}`))
	}))
	defer srv.Close()

	creds, err := transport.NewClient(srv.URL, srv.Client(), nil).Login(context.Background(), "ann", "pw")

	require.NoError(t, err)
	assert.Equal(t, "abc", creds.Token)
	assert.Equal(t, 3, creds.UserID)
	assert.Equal(t, "Admin", creds.Role)
}

func TestUserMessage_Unknown(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred. Please try again.", transport.UserMessage(errors.New("boom")))
}
