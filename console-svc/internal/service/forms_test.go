package service_test

import (
	"testing"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validRestaurant() domain.Restaurant {
	return domain.Restaurant{Name: "Trattoria", Address: "1 Main St", Phone: "+1-555-0100", Rating: 8.5, Category: "Italian"}
}

func validDish() domain.Dish {
	return domain.Dish{Name: "Pizza", Description: "Margherita", Price: decimal.RequireFromString("9.50"), Category: "Main", RestaurantID: 10}
}

func validUser() domain.User {
	return domain.User{FirstName: "Ann", LastName: "Lee", Username: "ann", Email: "ann@example.com", RoleID: 2}
}

func TestValidateRestaurant(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.Restaurant)
		want   domain.Errors
	}{
		{name: "valid", modify: func(*domain.Restaurant) {}, want: domain.Errors{}},
		{
			name:   "blank name",
			modify: func(r *domain.Restaurant) { r.Name = "  " },
			want:   domain.Errors{"restaurant_Name": "restaurant Name is required."},
		},
		{
			name:   "phone with letters",
			modify: func(r *domain.Restaurant) { r.Phone = "555-CALL" },
			want:   domain.Errors{"restaurant_Phone": "Phone number can contain only digits and symbols '+' and '-'."},
		},
		{
			name:   "phone too long",
			modify: func(r *domain.Restaurant) { r.Phone = "+1-555-0100-0100" },
			want:   domain.Errors{"restaurant_Phone": "Phone number cannot exceed 15 characters."},
		},
		{
			name:   "rating out of range",
			modify: func(r *domain.Restaurant) { r.Rating = 11 },
			want:   domain.Errors{"rating": "Rating must be a number between 0 and 10."},
		},
		{
			name:   "missing category and address",
			modify: func(r *domain.Restaurant) { r.Category, r.Address = "", "" },
			want: domain.Errors{
				"category":           "category is required.",
				"restaurant_Address": "restaurant Address is required.",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := validRestaurant()
			testCase.modify(&r)

			assert.Equal(t, testCase.want, service.ValidateRestaurant(r))
		})
	}
}

func TestValidateDish(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.Dish)
		want   domain.Errors
	}{
		{name: "valid", modify: func(*domain.Dish) {}, want: domain.Errors{}},
		{name: "free dish", modify: func(d *domain.Dish) { d.Price = decimal.Zero }, want: domain.Errors{}},
		{
			name:   "negative price",
			modify: func(d *domain.Dish) { d.Price = decimal.RequireFromString("-1") },
			want:   domain.Errors{"price": "Price must be a non-negative number."},
		},
		{
			name:   "no restaurant",
			modify: func(d *domain.Dish) { d.RestaurantID = 0 },
			want:   domain.Errors{"restaurant_Id": "restaurant Id is required."},
		},
		{
			name:   "blank name",
			modify: func(d *domain.Dish) { d.Name = "" },
			want:   domain.Errors{"dish_Name": "dish Name is required."},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			d := validDish()
			testCase.modify(&d)

			assert.Equal(t, testCase.want, service.ValidateDish(d))
		})
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.User)
		want   domain.Errors
	}{
		{name: "valid", modify: func(*domain.User) {}, want: domain.Errors{}},
		{name: "valid phone", modify: func(u *domain.User) { u.Phone = "5550100123" }, want: domain.Errors{}},
		{
			name:   "short phone",
			modify: func(u *domain.User) { u.Phone = "555" },
			want:   domain.Errors{"user_Phone": "Phone number must be 10-15 digits."},
		},
		{
			name:   "bad email",
			modify: func(u *domain.User) { u.Email = "ann.example.com" },
			want:   domain.Errors{"email": "Invalid email format."},
		},
		{
			name:   "missing role and first name",
			modify: func(u *domain.User) { u.RoleID, u.FirstName = 0, "" },
			want: domain.Errors{
				"role_Id":    "role Id is required.",
				"first_Name": "first Name is required.",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			u := validUser()
			testCase.modify(&u)

			assert.Equal(t, testCase.want, service.ValidateUser(u))
		})
	}
}
