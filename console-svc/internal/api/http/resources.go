package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/session"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid payload")
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, status, v)
}

func (h *Handler) respondDeleted(w http.ResponseWriter, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request, sess session.Context) {
	list, err := h.Workspaces.Resources(sess).ListRestaurants(r.Context())
	h.respond(w, http.StatusOK, nonNil(list), err)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.Restaurant
	if !decode(w, r, &in) {
		return
	}
	out, err := h.Workspaces.Resources(sess).CreateRestaurant(r.Context(), in)
	h.respond(w, http.StatusCreated, out, err)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.Restaurant
	if !decode(w, r, &in) {
		return
	}
	in.ID = pathID(r)
	out, err := h.Workspaces.Resources(sess).UpdateRestaurant(r.Context(), in)
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request, sess session.Context) {
	h.respondDeleted(w, h.Workspaces.Resources(sess).DeleteRestaurant(r.Context(), pathID(r)))
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request, sess session.Context) {
	list, err := h.Workspaces.Resources(sess).ListDishes(r.Context())
	h.respond(w, http.StatusOK, nonNil(list), err)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.Dish
	if !decode(w, r, &in) {
		return
	}
	out, err := h.Workspaces.Resources(sess).CreateDish(r.Context(), in)
	h.respond(w, http.StatusCreated, out, err)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.Dish
	if !decode(w, r, &in) {
		return
	}
	in.ID = pathID(r)
	out, err := h.Workspaces.Resources(sess).UpdateDish(r.Context(), in)
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request, sess session.Context) {
	h.respondDeleted(w, h.Workspaces.Resources(sess).DeleteDish(r.Context(), pathID(r)))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, sess session.Context) {
	list, err := h.Workspaces.Resources(sess).ListUsers(r.Context())
	h.respond(w, http.StatusOK, nonNil(list), err)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.User
	if !decode(w, r, &in) {
		return
	}
	out, err := h.Workspaces.Resources(sess).CreateUser(r.Context(), in)
	h.respond(w, http.StatusCreated, out, err)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, sess session.Context) {
	var in domain.User
	if !decode(w, r, &in) {
		return
	}
	in.ID = pathID(r)
	out, err := h.Workspaces.Resources(sess).UpdateUser(r.Context(), in)
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request, sess session.Context) {
	h.respondDeleted(w, h.Workspaces.Resources(sess).DeleteUser(r.Context(), pathID(r)))
}
