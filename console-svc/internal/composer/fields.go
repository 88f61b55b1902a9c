package composer

import (
	"strconv"
	"strings"

	"overcooked-console/console-svc/internal/domain"
)

const (
	FieldUser            = "user_id"
	FieldStatus          = "status"
	FieldRestaurant      = "restaurant_id"
	FieldDeliveryAddress = "delivery_address"
	FieldLines           = "lines"
)

// HeaderEdit is one of SetUser, SetStatus, SetRestaurant or SetDeliveryAddress.
type HeaderEdit interface {
	Field() string
}

type SetUser struct{ UserID int }

type SetStatus struct{ Status domain.OrderStatus }

type SetRestaurant struct{ RestaurantID int }

type SetDeliveryAddress struct{ Address string }

func (SetUser) Field() string            { return FieldUser }
func (SetStatus) Field() string          { return FieldStatus }
func (SetRestaurant) Field() string      { return FieldRestaurant }
func (SetDeliveryAddress) Field() string { return FieldDeliveryAddress }

// ParseHeaderEdit turns a named form value into its typed edit. Identifiers
// that do not parse become 0 so the required check reports them.
func ParseHeaderEdit(name, value string) (HeaderEdit, error) {
	switch name {
	case FieldUser:
		return SetUser{UserID: parseID(value)}, nil
	case FieldStatus:
		return SetStatus{Status: domain.OrderStatus(strings.TrimSpace(value))}, nil
	case FieldRestaurant:
		return SetRestaurant{RestaurantID: parseID(value)}, nil
	case FieldDeliveryAddress:
		return SetDeliveryAddress{Address: value}, nil
	}
	return nil, ErrUnknownField
}

// ParseLineField maps "dish_id" or "quantity" to the line field it edits.
func ParseLineField(name string) (LineField, error) {
	switch name {
	case "dish_id":
		return LineDish, nil
	case "quantity":
		return LineQuantity, nil
	}
	return 0, ErrUnknownField
}

func validateUser(id int) string {
	if id == 0 {
		return requiredMessage(FieldUser)
	}
	return ""
}

func validateStatus(status domain.OrderStatus) string {
	if status != "" && !status.Valid() {
		return "status is invalid."
	}
	return ""
}

func validateRestaurant(id int) string {
	if id == 0 {
		return requiredMessage(FieldRestaurant)
	}
	return ""
}

func validateDeliveryAddress(address string) string {
	if strings.TrimSpace(address) == "" {
		return requiredMessage(FieldDeliveryAddress)
	}
	return ""
}

func requiredMessage(field string) string {
	return field + " is required."
}

func parseID(value string) int {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// parseQuantity coerces form input to an integer; fractional input is
// truncated and anything non-numeric becomes 0.
func parseQuantity(value string) int {
	value = strings.TrimSpace(value)
	if q, err := strconv.Atoi(value); err == nil {
		return q
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}
