package composer

import (
	"errors"
	"sync"

	"overcooked-console/console-svc/internal/catalog"
	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/session"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownField     = errors.New("unknown field")
	ErrNoRestaurant     = errors.New("select a restaurant before adding dishes")
	ErrOrderFull        = errors.New("you cannot add more than 20 dishes")
	ErrLineIndex        = errors.New("order line does not exist")
	ErrDishNotInCatalog = errors.New("dish is not available at the selected restaurant")
	ErrRestaurantLocked = errors.New("restaurant cannot be changed on an existing order")
	ErrEditorBusy       = errors.New("order is being saved")
)

type LineField int

const (
	LineDish LineField = iota
	LineQuantity
)

// CatalogSource hands out the catalog of the most recent load. It is read on
// every call, never cached.
type CatalogSource interface {
	Catalog() *catalog.Index
}

// StaticCatalog serves a fixed index.
type StaticCatalog struct {
	Index *catalog.Index
}

func (s StaticCatalog) Catalog() *catalog.Index { return s.Index }

type Totals struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Composer owns one draft order while it is being edited.
type Composer struct {
	mu       sync.Mutex
	session  session.Context
	source   CatalogSource
	draft    domain.Order
	errors   domain.Errors
	disabled bool
}

// New starts an empty draft, or a private copy of seed.
func New(sess session.Context, source CatalogSource, seed *domain.Order) *Composer {
	draft := domain.Order{Status: domain.StatusPending}
	if seed != nil {
		draft = seed.Clone()
	}
	if draft.Lines == nil {
		draft.Lines = []domain.OrderLine{}
	}
	return &Composer{
		session: sess,
		source:  source,
		draft:   draft,
		errors:  domain.Errors{},
	}
}

func (c *Composer) catalog() *catalog.Index {
	if c.source == nil {
		return nil
	}
	return c.source.Catalog()
}

func (c *Composer) mutable() error {
	if c.disabled {
		return ErrEditorBusy
	}
	return c.session.Check()
}

func (c *Composer) setError(field, msg string) {
	if msg == "" {
		delete(c.errors, field)
		return
	}
	c.errors[field] = msg
}

func (c *Composer) revalidateLines() {
	c.setError(FieldLines, validateLines(c.draft.Lines, c.draft.RestaurantID, c.catalog()))
}

// SetHeader applies one header edit and re-validates that field only.
// Selecting a restaurant clears every line.
func (c *Composer) SetHeader(edit HeaderEdit) (domain.Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutable(); err != nil {
		return c.errors.Clone(), err
	}

	switch e := edit.(type) {
	case SetUser:
		c.draft.UserID = e.UserID
		c.setError(FieldUser, validateUser(e.UserID))
	case SetStatus:
		c.draft.Status = e.Status
		c.setError(FieldStatus, validateStatus(e.Status))
	case SetRestaurant:
		if c.draft.Persisted() {
			return c.errors.Clone(), ErrRestaurantLocked
		}
		c.draft.RestaurantID = e.RestaurantID
		c.draft.Lines = []domain.OrderLine{}
		c.setError(FieldRestaurant, validateRestaurant(e.RestaurantID))
		c.revalidateLines()
	case SetDeliveryAddress:
		c.draft.DeliveryAddress = e.Address
		c.setError(FieldDeliveryAddress, validateDeliveryAddress(e.Address))
	default:
		return c.errors.Clone(), ErrUnknownField
	}

	return c.errors.Clone(), nil
}

// AddLine appends an empty line with quantity 1.
func (c *Composer) AddLine() (domain.Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutable(); err != nil {
		return c.errors.Clone(), err
	}
	if c.draft.RestaurantID == 0 {
		return c.errors.Clone(), ErrNoRestaurant
	}

	quantity, _ := c.catalog().Totals(c.draft.Lines)
	if len(c.draft.Lines) >= domain.MaxOrderQuantity || quantity+domain.MinLineQuantity > domain.MaxOrderQuantity {
		return c.errors.Clone(), ErrOrderFull
	}

	lines := make([]domain.OrderLine, len(c.draft.Lines), len(c.draft.Lines)+1)
	copy(lines, c.draft.Lines)
	c.draft.Lines = append(lines, domain.OrderLine{Quantity: domain.MinLineQuantity})
	c.revalidateLines()

	return c.errors.Clone(), nil
}

// UpdateLine sets one field of the line at index. Quantity is coerced to an
// integer but not clamped; out-of-range values stay visible as errors.
func (c *Composer) UpdateLine(index int, field LineField, value string) (domain.Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutable(); err != nil {
		return c.errors.Clone(), err
	}
	if index < 0 || index >= len(c.draft.Lines) {
		return c.errors.Clone(), ErrLineIndex
	}

	lines := make([]domain.OrderLine, len(c.draft.Lines))
	copy(lines, c.draft.Lines)

	switch field {
	case LineDish:
		dishID := parseID(value)
		if dishID != 0 && !c.catalog().Offers(c.draft.RestaurantID, dishID) {
			return c.errors.Clone(), ErrDishNotInCatalog
		}
		lines[index].DishID = dishID
	case LineQuantity:
		lines[index].Quantity = parseQuantity(value)
	default:
		return c.errors.Clone(), ErrUnknownField
	}

	c.draft.Lines = lines
	c.revalidateLines()

	return c.errors.Clone(), nil
}

func (c *Composer) RemoveLine(index int) (domain.Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutable(); err != nil {
		return c.errors.Clone(), err
	}
	if index < 0 || index >= len(c.draft.Lines) {
		return c.errors.Clone(), ErrLineIndex
	}

	lines := make([]domain.OrderLine, 0, len(c.draft.Lines)-1)
	lines = append(lines, c.draft.Lines[:index]...)
	c.draft.Lines = append(lines, c.draft.Lines[index+1:]...)
	c.revalidateLines()

	return c.errors.Clone(), nil
}

// Validate checks every field of the current draft without touching state.
func (c *Composer) Validate() domain.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validateDraft(c.draft, c.catalog())
}

// Submit returns the draft as an independent Order, or *domain.ValidationFailed.
func (c *Composer) Submit() (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutable(); err != nil {
		return domain.Order{}, err
	}

	errs := validateDraft(c.draft, c.catalog())
	if len(errs) > 0 {
		c.errors = errs
		return domain.Order{}, &domain.ValidationFailed{Errors: errs.Clone()}
	}
	c.errors = domain.Errors{}
	return c.draft.Clone(), nil
}

func (c *Composer) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	quantity, price := c.catalog().Totals(c.draft.Lines)
	return Totals{TotalQuantity: quantity, TotalPrice: price}
}

func (c *Composer) Draft() domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

func (c *Composer) Lines() []domain.OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.OrderLine{}, c.draft.Lines...)
}

// Errors returns the messages produced by the mutations so far.
func (c *Composer) Errors() domain.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

func (c *Composer) AvailableDishes() []domain.Dish {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog().DishesFor(c.draft.RestaurantID)
}

func (c *Composer) Catalog() *catalog.Index {
	return c.catalog()
}

func (c *Composer) Session() session.Context {
	return c.session
}

func (c *Composer) Disable() {
	c.mu.Lock()
	c.disabled = true
	c.mu.Unlock()
}

func (c *Composer) Enable() {
	c.mu.Lock()
	c.disabled = false
	c.mu.Unlock()
}

func (c *Composer) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

// ClampQuantity bounds a quantity for display in the quantity input.
func ClampQuantity(q int) int {
	if q < domain.MinLineQuantity {
		return domain.MinLineQuantity
	}
	if q > domain.MaxLineQuantity {
		return domain.MaxLineQuantity
	}
	return q
}
