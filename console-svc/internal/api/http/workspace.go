package httpapi

import (
	"sync"
	"time"

	"overcooked-console/console-svc/internal/orders"
	"overcooked-console/console-svc/internal/service"
	"overcooked-console/console-svc/internal/session"

	"github.com/sirupsen/logrus"
)

// Backend is the ordering API as seen by one signed-in session.
type Backend interface {
	orders.API
	service.ResourceAPI
}

// BackendFactory builds a Backend that authenticates with token.
type BackendFactory func(token string) Backend

// Workspaces keeps one order list controller per session, created on first use.
type Workspaces struct {
	mu          sync.Mutex
	controllers map[string]*orders.Controller

	newBackend BackendFactory
	observers  []orders.Observer
	exportLoc  *time.Location
	log        *logrus.Entry
}

func NewWorkspaces(newBackend BackendFactory, exportLoc *time.Location, log *logrus.Entry, observers ...orders.Observer) *Workspaces {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Workspaces{
		controllers: make(map[string]*orders.Controller),
		newBackend:  newBackend,
		observers:   observers,
		exportLoc:   exportLoc,
		log:         log,
	}
}

// Controller returns the session's controller. Workspaces of sessions that
// have expired since their last request are released on the way.
func (w *Workspaces) Controller(sess session.Context) *orders.Controller {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sweep(time.Now())
	if c, ok := w.controllers[sess.ID]; ok {
		return c
	}
	c := orders.NewController(w.newBackend(sess.Token), sess, w.log, w.observers...)
	c.SetExportLocation(w.exportLoc)
	w.controllers[sess.ID] = c
	return c
}

func (w *Workspaces) sweep(now time.Time) {
	for id, c := range w.controllers {
		if c.Session().Expired(now) {
			delete(w.controllers, id)
			w.log.WithField("session_id", id).Debug("released expired workspace")
		}
	}
}

func (w *Workspaces) Resources(sess session.Context) *service.ResourceService {
	return service.NewResourceService(w.newBackend(sess.Token), sess, w.log)
}

func (w *Workspaces) Drop(sessionID string) {
	w.mu.Lock()
	delete(w.controllers, sessionID)
	w.mu.Unlock()
}

func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.controllers)
}
