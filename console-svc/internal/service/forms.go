package service

import (
	"regexp"
	"strings"

	"overcooked-console/console-svc/internal/domain"
)

var (
	restaurantPhonePattern = regexp.MustCompile(`^[0-9+-]+$`)
	emailPattern           = regexp.MustCompile(`\S+@\S+\.\S+`)
	userPhonePattern       = regexp.MustCompile(`^\d{10,15}$`)
)

const maxRestaurantPhone = 15

// requiredMessage turns a wire field name into "restaurant Name is required.".
func requiredMessage(field string) string {
	return strings.Replace(field, "_", " ", 1) + " is required."
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateRestaurant(r domain.Restaurant) domain.Errors {
	errs := domain.Errors{}
	if blank(r.Name) {
		errs["restaurant_Name"] = requiredMessage("restaurant_Name")
	}
	if blank(r.Address) {
		errs["restaurant_Address"] = requiredMessage("restaurant_Address")
	}

	phone := strings.TrimSpace(r.Phone)
	switch {
	case phone == "":
		errs["restaurant_Phone"] = requiredMessage("restaurant_Phone")
	case !restaurantPhonePattern.MatchString(phone):
		errs["restaurant_Phone"] = "Phone number can contain only digits and symbols '+' and '-'."
	case len(phone) > maxRestaurantPhone:
		errs["restaurant_Phone"] = "Phone number cannot exceed 15 characters."
	}

	if r.Rating < 0 || r.Rating > 10 {
		errs["rating"] = "Rating must be a number between 0 and 10."
	}
	if blank(r.Category) {
		errs["category"] = requiredMessage("category")
	}
	return errs
}

func ValidateDish(d domain.Dish) domain.Errors {
	errs := domain.Errors{}
	if blank(d.Name) {
		errs["dish_Name"] = requiredMessage("dish_Name")
	}
	if blank(d.Description) {
		errs["description"] = requiredMessage("description")
	}
	if d.Price.IsNegative() {
		errs["price"] = "Price must be a non-negative number."
	}
	if blank(d.Category) {
		errs["category"] = requiredMessage("category")
	}
	if d.RestaurantID == 0 {
		errs["restaurant_Id"] = requiredMessage("restaurant_Id")
	}
	return errs
}

func ValidateUser(u domain.User) domain.Errors {
	errs := domain.Errors{}
	if blank(u.FirstName) {
		errs["first_Name"] = requiredMessage("first_Name")
	}
	if blank(u.LastName) {
		errs["last_Name"] = requiredMessage("last_Name")
	}
	if blank(u.Username) {
		errs["username"] = requiredMessage("username")
	}

	email := strings.TrimSpace(u.Email)
	switch {
	case email == "":
		errs["email"] = requiredMessage("email")
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email format."
	}

	if phone := strings.TrimSpace(u.Phone); phone != "" && !userPhonePattern.MatchString(phone) {
		errs["user_Phone"] = "Phone number must be 10-15 digits."
	}
	if u.RoleID == 0 {
		errs["role_Id"] = requiredMessage("role_Id")
	}
	return errs
}

func failed(errs domain.Errors) error {
	if len(errs) == 0 {
		return nil
	}
	return &domain.ValidationFailed{Errors: errs}
}
