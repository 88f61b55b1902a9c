package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinLineQuantity  = 1
	MaxLineQuantity  = 10
	MaxOrderQuantity = 20
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Restaurant struct {
	ID       int     `json:"restaurant_Id"`
	Name     string  `json:"restaurant_Name"`
	Address  string  `json:"restaurant_Address"`
	Phone    string  `json:"restaurant_Phone"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
}

type Dish struct {
	ID           int             `json:"dish_Id"`
	Name         string          `json:"dish_Name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	RestaurantID int             `json:"restaurant_Id"`
}

type User struct {
	ID        int    `json:"user_Id"`
	FirstName string `json:"first_Name"`
	LastName  string `json:"last_Name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Address   string `json:"user_Address,omitempty"`
	Phone     string `json:"user_Phone,omitempty"`
	RoleID    int    `json:"role_Id"`
	// Password is write-only: only Admin sessions may send it and it is
	// never returned.
	Password string `json:"password,omitempty"`
}

func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// OrderLine has no identity of its own; it is addressed by its position in
// Order.Lines.
type OrderLine struct {
	DishID   int `json:"dish_Id"`
	Quantity int `json:"quantity"`
}

type Order struct {
	ID              int         `json:"order_Id,omitempty"`
	UserID          int         `json:"user_Id"`
	Status          OrderStatus `json:"status"`
	RestaurantID    int         `json:"restaurant_Id"`
	OrderDate       *Timestamp  `json:"order_Date,omitempty"`
	DeliveryAddress string      `json:"delivery_Address"`
	Lines           []OrderLine `json:"orderDetails"`
}

func (o Order) Persisted() bool {
	return o.ID != 0
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	clone := o
	clone.Lines = make([]OrderLine, len(o.Lines))
	copy(clone.Lines, o.Lines)
	if o.OrderDate != nil {
		ts := *o.OrderDate
		clone.OrderDate = &ts
	}
	return clone
}

// JoinedRow is an order enriched for display. It is never persisted.
type JoinedRow struct {
	Order          Order           `json:"order"`
	UserName       string          `json:"user_name"`
	RestaurantName string          `json:"restaurant_name"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Details        []string        `json:"details"`
}
