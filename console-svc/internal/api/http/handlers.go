package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"overcooked-console/console-svc/internal/composer"
	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/export"
	"overcooked-console/console-svc/internal/orders"
	"overcooked-console/console-svc/internal/service"
	"overcooked-console/console-svc/internal/session"
	"overcooked-console/console-svc/internal/transport"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	SessionHeader     = "X-Session-ID"
	defaultAuditLimit = 50
)

type SessionManager interface {
	Login(ctx context.Context, username, password string) (session.Context, error)
	Resolve(ctx context.Context, id string) (session.Context, error)
	Logout(ctx context.Context, id string) error
}

type AuditLog interface {
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type Handler struct {
	Sessions   SessionManager
	Workspaces *Workspaces
	QR         service.QRGenerator
	Audit      AuditLog
	Log        *logrus.Entry
}

func NewHandler(sessions SessionManager, workspaces *Workspaces, qr service.QRGenerator, audit AuditLog, log *logrus.Entry) *Handler {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Handler{Sessions: sessions, Workspaces: workspaces, QR: qr, Audit: audit, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	api := r.PathPrefix("/api/console").Subrouter()
	api.HandleFunc("/login", h.login).Methods("POST")
	api.HandleFunc("/logout", h.authed(h.logout)).Methods("POST")

	api.HandleFunc("/orders", h.authed(h.listOrders)).Methods("GET")
	api.HandleFunc("/orders/export", h.authed(h.exportOrders)).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}", h.authed(h.deleteOrder)).Methods("DELETE")
	api.HandleFunc("/orders/{id:[0-9]+}/qrcode", h.authed(h.orderQRCode)).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/delete-confirmation", h.authed(h.confirmDelete)).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/delete-confirmation", h.authed(h.cancelDelete)).Methods("DELETE")
	api.HandleFunc("/restaurants/{id:[0-9]+}/dishes", h.authed(h.restaurantDishes)).Methods("GET")

	api.HandleFunc("/editor", h.authed(h.openEditor)).Methods("POST")
	api.HandleFunc("/editor", h.authed(h.getEditor)).Methods("GET")
	api.HandleFunc("/editor", h.authed(h.closeEditor)).Methods("DELETE")
	api.HandleFunc("/editor/header", h.authed(h.setHeader)).Methods("PATCH")
	api.HandleFunc("/editor/lines", h.authed(h.addLine)).Methods("POST")
	api.HandleFunc("/editor/lines/{index:[0-9]+}", h.authed(h.updateLine)).Methods("PATCH")
	api.HandleFunc("/editor/lines/{index:[0-9]+}", h.authed(h.removeLine)).Methods("DELETE")
	api.HandleFunc("/editor/submit", h.authed(h.submitEditor)).Methods("POST")

	api.HandleFunc("/audit", h.authed(h.listAudit)).Methods("GET")

	api.HandleFunc("/restaurants", h.authed(h.listRestaurants)).Methods("GET")
	api.HandleFunc("/restaurants", h.authed(h.createRestaurant)).Methods("POST")
	api.HandleFunc("/restaurants/{id:[0-9]+}", h.authed(h.updateRestaurant)).Methods("PUT")
	api.HandleFunc("/restaurants/{id:[0-9]+}", h.authed(h.deleteRestaurant)).Methods("DELETE")
	api.HandleFunc("/dishes", h.authed(h.listDishes)).Methods("GET")
	api.HandleFunc("/dishes", h.authed(h.createDish)).Methods("POST")
	api.HandleFunc("/dishes/{id:[0-9]+}", h.authed(h.updateDish)).Methods("PUT")
	api.HandleFunc("/dishes/{id:[0-9]+}", h.authed(h.deleteDish)).Methods("DELETE")
	api.HandleFunc("/users", h.authed(h.listUsers)).Methods("GET")
	api.HandleFunc("/users", h.authed(h.createUser)).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", h.authed(h.updateUser)).Methods("PUT")
	api.HandleFunc("/users/{id:[0-9]+}", h.authed(h.deleteUser)).Methods("DELETE")
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess session.Context)

// authed resolves the X-Session-ID header. A session that expired or was
// evicted by the store loses its workspace.
func (h *Handler) authed(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		sess, err := h.Sessions.Resolve(r.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrExpired) || errors.Is(err, session.ErrNotFound) {
				h.Workspaces.Drop(id)
			}
			h.writeError(w, err)
			return
		}
		next(w, r, sess)
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "console-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	SessionID string    `json:"session_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	sess, err := h.Sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.Log.WithField("username", sess.Username).WithField("session_id", sess.ID).Info("console login")
	writeJSON(w, http.StatusOK, loginResponse{
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Username:  sess.Username,
		Role:      sess.Role,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, sess session.Context) {
	if err := h.Sessions.Logout(r.Context(), sess.ID); err != nil {
		h.writeError(w, err)
		return
	}
	h.Workspaces.Drop(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

type ordersResponse struct {
	Rows     []domain.JoinedRow `json:"rows"`
	Failures map[string]string  `json:"failures"`
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, sess session.Context) {
	ctrl := h.Workspaces.Controller(sess)
	report := ctrl.Load(context.WithoutCancel(r.Context()))
	writeJSON(w, http.StatusOK, ordersResponse{Rows: nonNil(ctrl.Rows()), Failures: report.Failures})
}

func (h *Handler) exportOrders(w http.ResponseWriter, r *http.Request, sess session.Context) {
	data := h.Workspaces.Controller(sess).ExportCurrentView()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request, sess session.Context) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, err := h.Workspaces.Controller(sess).Order(id); err != nil {
		h.writeError(w, err)
		return
	}

	png, err := h.QR.Generate(id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) confirmDelete(w http.ResponseWriter, r *http.Request, sess session.Context) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Workspaces.Controller(sess).ConfirmDelete(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelDelete(w http.ResponseWriter, r *http.Request, sess session.Context) {
	h.Workspaces.Controller(sess).CancelDelete()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request, sess session.Context) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Workspaces.Controller(sess).Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restaurantDishes(w http.ResponseWriter, r *http.Request, sess session.Context) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dishes := h.Workspaces.Controller(sess).Catalog().DishesFor(id)
	writeJSON(w, http.StatusOK, nonNil(dishes))
}

type lineView struct {
	DishID          int             `json:"dish_Id"`
	DishName        string          `json:"dish_Name,omitempty"`
	Quantity        int             `json:"quantity"`
	DisplayQuantity int             `json:"display_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LinePrice       decimal.Decimal `json:"line_price"`
}

type editorView struct {
	Draft           domain.Order    `json:"draft"`
	Errors          domain.Errors   `json:"errors"`
	Lines           []lineView      `json:"lines"`
	AvailableDishes []domain.Dish   `json:"available_dishes"`
	TotalQuantity   int             `json:"total_quantity"`
	MaxQuantity     int             `json:"max_quantity"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Saving          bool            `json:"saving"`
}

func newEditorView(c *composer.Composer) editorView {
	idx := c.Catalog()
	totals := c.Totals()

	lines := c.Lines()
	views := make([]lineView, 0, len(lines))
	for _, line := range lines {
		v := lineView{
			DishID:          line.DishID,
			Quantity:        line.Quantity,
			DisplayQuantity: composer.ClampQuantity(line.Quantity),
			UnitPrice:       decimal.Zero,
			LinePrice:       decimal.Zero,
		}
		if d, ok := idx.Dish(line.DishID); ok {
			v.DishName = d.Name
			v.UnitPrice = d.Price
			v.LinePrice = d.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		views = append(views, v)
	}

	return editorView{
		Draft:           c.Draft(),
		Errors:          c.Errors(),
		Lines:           views,
		AvailableDishes: nonNil(c.AvailableDishes()),
		TotalQuantity:   totals.TotalQuantity,
		MaxQuantity:     domain.MaxOrderQuantity,
		TotalPrice:      totals.TotalPrice,
		Saving:          c.Disabled(),
	}
}

type openEditorRequest struct {
	OrderID int `json:"order_id"`
}

func (h *Handler) openEditor(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var req openEditorRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid payload")
			return
		}
	}

	ctrl := h.Workspaces.Controller(sess)
	var (
		editor *composer.Composer
		err    error
	)
	if req.OrderID == 0 {
		editor, err = ctrl.BeginCreate()
	} else {
		editor, err = ctrl.BeginEdit(req.OrderID)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEditorView(editor))
}

func (h *Handler) editor(w http.ResponseWriter, sess session.Context) (*composer.Composer, bool) {
	editor, ok := h.Workspaces.Controller(sess).Editor()
	if !ok {
		h.writeError(w, orders.ErrNoEditor)
	}
	return editor, ok
}

func (h *Handler) getEditor(w http.ResponseWriter, r *http.Request, sess session.Context) {
	if editor, ok := h.editor(w, sess); ok {
		writeJSON(w, http.StatusOK, newEditorView(editor))
	}
}

func (h *Handler) closeEditor(w http.ResponseWriter, r *http.Request, sess session.Context) {
	if err := h.Workspaces.Controller(sess).CancelEdit(); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) setHeader(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	editor, ok := h.editor(w, sess)
	if !ok {
		return
	}

	edit, err := composer.ParseHeaderEdit(req.Field, req.Value)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondEdit(w, editor, func() (domain.Errors, error) { return editor.SetHeader(edit) })
}

func (h *Handler) addLine(w http.ResponseWriter, r *http.Request, sess session.Context) {
	if editor, ok := h.editor(w, sess); ok {
		h.respondEdit(w, editor, editor.AddLine)
	}
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request, sess session.Context) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	editor, ok := h.editor(w, sess)
	if !ok {
		return
	}

	field, err := composer.ParseLineField(req.Field)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondEdit(w, editor, func() (domain.Errors, error) { return editor.UpdateLine(index, field, req.Value) })
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request, sess session.Context) {
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	if editor, ok := h.editor(w, sess); ok {
		h.respondEdit(w, editor, func() (domain.Errors, error) { return editor.RemoveLine(index) })
	}
}

// respondEdit answers with the editor view; field errors travel inside it and
// only a rejected edit becomes an error status.
func (h *Handler) respondEdit(w http.ResponseWriter, editor *composer.Composer, edit func() (domain.Errors, error)) {
	if _, err := edit(); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newEditorView(editor))
}

type submitResponse struct {
	Order domain.Order       `json:"order"`
	Rows  []domain.JoinedRow `json:"rows"`
}

func (h *Handler) submitEditor(w http.ResponseWriter, r *http.Request, sess session.Context) {
	ctrl := h.Workspaces.Controller(sess)
	saved, err := ctrl.Submit(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Order: saved, Rows: nonNil(ctrl.Rows())})
}

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request, sess session.Context) {
	if h.Audit == nil {
		writeMessage(w, http.StatusServiceUnavailable, "Audit log is disabled.")
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultAuditLimit
	}

	entries, err := h.Audit.ListRecent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

type errorResponse struct {
	Message string        `json:"message"`
	Errors  domain.Errors `json:"errors,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status, body := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.Log.WithError(err).WithField("status", status).Error("console request failed")
	}
	writeJSON(w, status, body)
}

func errorStatus(err error) (int, errorResponse) {
	var validation *domain.ValidationFailed
	if errors.As(err, &validation) {
		return http.StatusUnprocessableEntity, errorResponse{Message: "Please fix the highlighted fields.", Errors: validation.Errors}
	}

	var httpErr *transport.HTTPError
	var netErr *transport.NetworkError
	if errors.As(err, &httpErr) || errors.As(err, &netErr) {
		return transport.StatusCode(err), errorResponse{Message: transport.UserMessage(err)}
	}

	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		return http.StatusUnauthorized, errorResponse{Message: err.Error()}
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, composer.ErrUnknownField),
		errors.Is(err, composer.ErrNoRestaurant),
		errors.Is(err, composer.ErrOrderFull),
		errors.Is(err, composer.ErrLineIndex),
		errors.Is(err, composer.ErrDishNotInCatalog),
		errors.Is(err, composer.ErrRestaurantLocked),
		errors.Is(err, service.ErrMissingID):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrAdminRequired), errors.Is(err, service.ErrPasswordAdmin):
		return http.StatusForbidden, errorResponse{Message: err.Error()}
	case errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, orders.ErrNoEditor),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: err.Error()}
	case errors.Is(err, orders.ErrMutationInFlight),
		errors.Is(err, orders.ErrNoPendingDelete),
		errors.Is(err, composer.ErrEditorBusy):
		return http.StatusConflict, errorResponse{Message: err.Error()}
	}
	return http.StatusInternalServerError, errorResponse{Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
