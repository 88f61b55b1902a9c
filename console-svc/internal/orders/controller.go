package orders

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"overcooked-console/console-svc/internal/catalog"
	"overcooked-console/console-svc/internal/composer"
	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/export"
	"overcooked-console/console-svc/internal/session"
	"overcooked-console/console-svc/internal/transport"

	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoEditor         = errors.New("no order is being edited")
	ErrMutationInFlight = errors.New("another change is still being saved")
	ErrNoPendingDelete  = errors.New("delete was not confirmed")
)

const (
	CollectionOrders      = "orders"
	CollectionUsers       = "users"
	CollectionRestaurants = "restaurants"
	CollectionDishes      = "dishes"
)

// LoadReport describes one Load. Failures maps a collection to the message
// shown for it; Stale is set when a newer load had already been applied.
// Cancelled is set when ctx ended before the fetches settled; such a load is
// not applied.
type LoadReport struct {
	Generation uint64            `json:"generation"`
	Failures   map[string]string `json:"failures"`
	Stale      bool              `json:"stale"`
	Cancelled  bool              `json:"cancelled"`
}

// Controller owns the persisted order list of one console session and routes
// create/edit/delete through a Composer.
type Controller struct {
	api       API
	session   session.Context
	log       *logrus.Entry
	observers []Observer
	exportLoc *time.Location

	catalog atomic.Pointer[catalog.Index]

	mu         sync.Mutex
	orders     []domain.Order
	rows       []domain.JoinedRow
	report     LoadReport
	nextGen    uint64
	appliedGen uint64

	editor        *composer.Composer
	pendingDelete *domain.Order
	mutating      bool
}

func NewController(api API, sess session.Context, log *logrus.Entry, observers ...Observer) *Controller {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	c := &Controller{
		api:       api,
		session:   sess,
		log:       log.WithField("session_id", sess.ID),
		observers: observers,
		exportLoc: time.UTC,
	}
	c.catalog.Store(catalog.New(nil, nil, nil))
	return c
}

func (c *Controller) SetExportLocation(loc *time.Location) {
	if loc != nil {
		c.exportLoc = loc
	}
}

// Catalog returns the index of the last applied load.
func (c *Controller) Catalog() *catalog.Index {
	return c.catalog.Load()
}

func (c *Controller) Session() session.Context {
	return c.session
}

// Load fetches the four collections in parallel and rebuilds the joined rows
// once all of them have settled. A failed reference collection leaves its
// slot empty; a failed order fetch keeps the previous order list. Results of
// a load older than the last applied one are dropped.
func (c *Controller) Load(ctx context.Context) LoadReport {
	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.mu.Unlock()

	var (
		wg          sync.WaitGroup
		orders      []domain.Order
		users       []domain.User
		restaurants []domain.Restaurant
		dishes      []domain.Dish
		errs        = make(map[string]error, 4)
		errsMu      sync.Mutex
	)
	fetch := func(name string, call func() error) {
		defer wg.Done()
		if err := call(); err != nil {
			errsMu.Lock()
			errs[name] = err
			errsMu.Unlock()
		}
	}

	wg.Add(4)
	go fetch(CollectionOrders, func() (err error) { orders, err = c.api.ListOrders(ctx); return })
	go fetch(CollectionUsers, func() (err error) { users, err = c.api.ListUsers(ctx); return })
	go fetch(CollectionRestaurants, func() (err error) { restaurants, err = c.api.ListRestaurants(ctx); return })
	go fetch(CollectionDishes, func() (err error) { dishes, err = c.api.ListDishes(ctx); return })
	wg.Wait()

	report := LoadReport{Generation: gen, Failures: make(map[string]string, len(errs))}
	if ctx.Err() != nil {
		report.Cancelled = true
		c.log.WithError(ctx.Err()).WithField("generation", gen).Debug("discarding cancelled load")
		return report
	}
	for name, err := range errs {
		report.Failures[name] = transport.UserMessage(err)
		c.log.WithError(err).WithField("collection", name).Warn("failed to load collection")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen <= c.appliedGen {
		report.Stale = true
		c.log.WithField("generation", gen).Debug("discarding stale load")
		return report
	}
	c.appliedGen = gen

	if _, failed := errs[CollectionOrders]; failed {
		orders = c.orders
	}

	idx := catalog.New(restaurants, dishes, users)
	c.catalog.Store(idx)
	c.orders = orders
	c.rows = Join(orders, idx)
	c.report = report

	c.log.WithField("orders", len(orders)).WithField("failures", len(errs)).Info("order list loaded")
	return report
}

func (c *Controller) Rows() []domain.JoinedRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.JoinedRow(nil), c.rows...)
}

func (c *Controller) LastReport() LoadReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report
}

// Order returns a copy of a persisted order from the current list.
func (c *Controller) Order(id int) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findOrder(id)
}

func (c *Controller) findOrder(id int) (domain.Order, error) {
	for _, o := range c.orders {
		if o.ID == id {
			return o.Clone(), nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

func (c *Controller) BeginCreate() (*composer.Composer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mutating {
		return nil, ErrMutationInFlight
	}
	c.editor = composer.New(c.session, c, nil)
	return c.editor, nil
}

// BeginEdit seeds the editor with a copy of the stored order, so edits never
// reach the displayed list before they are saved.
func (c *Controller) BeginEdit(orderID int) (*composer.Composer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mutating {
		return nil, ErrMutationInFlight
	}
	order, err := c.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	c.editor = composer.New(c.session, c, &order)
	return c.editor, nil
}

func (c *Controller) Editor() (*composer.Composer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor, c.editor != nil
}

func (c *Controller) CancelEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mutating {
		return ErrMutationInFlight
	}
	c.editor = nil
	return nil
}

// Submit validates the open draft and creates or updates it. On success the
// editor closes and the list reloads; on failure the editor stays open with
// the draft intact.
func (c *Controller) Submit(ctx context.Context) (domain.Order, error) {
	c.mu.Lock()
	if err := c.session.Check(); err != nil {
		c.mu.Unlock()
		return domain.Order{}, err
	}
	editor := c.editor
	if editor == nil {
		c.mu.Unlock()
		return domain.Order{}, ErrNoEditor
	}
	if c.mutating {
		c.mu.Unlock()
		return domain.Order{}, ErrMutationInFlight
	}
	draft, err := editor.Submit()
	if err != nil {
		c.mu.Unlock()
		return domain.Order{}, err
	}
	c.mutating = true
	editor.Disable()
	c.mu.Unlock()

	eventType := domain.OrderCreated
	var saved domain.Order
	if draft.Persisted() {
		eventType = domain.OrderUpdated
		saved, err = c.api.UpdateOrder(ctx, draft)
	} else {
		saved, err = c.api.CreateOrder(ctx, draft)
	}

	c.mu.Lock()
	c.mutating = false
	editor.Enable()
	if err != nil {
		c.mu.Unlock()
		c.log.WithError(err).WithField("order_id", draft.ID).Warn("failed to save order")
		return domain.Order{}, err
	}
	if c.editor == editor {
		c.editor = nil
	}
	c.mu.Unlock()

	c.log.WithField("order_id", saved.ID).WithField("event", eventType).Info("order saved")
	c.notify(ctx, eventType, saved)
	c.Load(context.WithoutCancel(ctx))
	return saved, nil
}

// ConfirmDelete is the first phase of a delete; nothing is sent yet.
func (c *Controller) ConfirmDelete(orderID int) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, err := c.findOrder(orderID)
	if err != nil {
		return domain.Order{}, err
	}
	c.pendingDelete = &order
	return order.Clone(), nil
}

func (c *Controller) PendingDelete() (domain.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pendingDelete == nil {
		return domain.Order{}, false
	}
	return c.pendingDelete.Clone(), true
}

func (c *Controller) CancelDelete() {
	c.mu.Lock()
	c.pendingDelete = nil
	c.mu.Unlock()
}

// Delete removes the order confirmed by ConfirmDelete. The confirmation
// survives a failed attempt so the user can retry.
func (c *Controller) Delete(ctx context.Context, orderID int) error {
	c.mu.Lock()
	if err := c.session.Check(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.pendingDelete == nil || c.pendingDelete.ID != orderID {
		c.mu.Unlock()
		return ErrNoPendingDelete
	}
	if c.mutating {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	target := c.pendingDelete.Clone()
	c.mutating = true
	c.mu.Unlock()

	err := c.api.DeleteOrder(ctx, target.ID)

	c.mu.Lock()
	c.mutating = false
	if err != nil {
		c.mu.Unlock()
		c.log.WithError(err).WithField("order_id", target.ID).Warn("failed to delete order")
		return err
	}
	c.pendingDelete = nil
	c.mu.Unlock()

	c.log.WithField("order_id", target.ID).Info("order deleted")
	c.notify(ctx, domain.OrderDeleted, target)
	c.Load(context.WithoutCancel(ctx))
	return nil
}

// ExportCurrentView renders the rows currently on screen; it never refetches.
func (c *Controller) ExportCurrentView() []byte {
	return export.CSV(c.Rows(), c.exportLoc)
}

func (c *Controller) notify(ctx context.Context, eventType domain.OrderEventType, order domain.Order) {
	event := domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		SessionID:    c.session.ID,
		Actor:        c.session.Username,
		Timestamp:    time.Now().UTC(),
	}
	for _, o := range c.observers {
		if err := o.OnOrderEvent(ctx, event); err != nil {
			c.log.WithError(err).WithField("event", eventType).Warn("order event observer failed")
		}
	}
}

var _ composer.CatalogSource = (*Controller)(nil)
