package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gatherly/gatherly/internal/api/respond"
	"github.com/gatherly/gatherly/internal/api/validate"
	"github.com/gatherly/gatherly/internal/app/activities"
	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/model"
)

// ActivityHandler translates HTTP requests into dispatched commands
// and queries. It holds no business logic: validation happens before
// dispatch, outcome translation happens in respond.WriteResult, and
// any fault is returned to the recovery boundary.
type ActivityHandler struct {
	dispatcher *mediator.Dispatcher
}

func NewActivityHandler(d *mediator.Dispatcher) *ActivityHandler {
	return &ActivityHandler{dispatcher: d}
}

// ListActivities GET /api/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) error {
	out, err := h.dispatcher.Send(r.Context(), activities.ListQuery{})
	if err != nil {
		return err
	}
	respond.WriteResult(w, out)
	return nil
}

// GetActivity GET /api/activities/{id}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) error {
	id, ferrs := validate.ID(mux.Vars(r)["id"])
	if ferrs != nil {
		respond.WriteValidationErrors(w, ferrs)
		return nil
	}
	out, err := h.dispatcher.Send(r.Context(), activities.DetailsQuery{ID: id})
	if err != nil {
		return err
	}
	respond.WriteResult(w, out)
	return nil
}

// CreateActivity POST /api/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) error {
	var a model.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return nil
	}
	if ferrs := validate.Activity(a); ferrs != nil {
		respond.WriteValidationErrors(w, ferrs)
		return nil
	}
	out, err := h.dispatcher.Send(r.Context(), activities.CreateCommand{Activity: a})
	if err != nil {
		return err
	}
	respond.WriteResult(w, out)
	return nil
}

// UpdateActivity PUT /api/activities/{id}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) error {
	id, ferrs := validate.ID(mux.Vars(r)["id"])
	if ferrs != nil {
		respond.WriteValidationErrors(w, ferrs)
		return nil
	}
	var a model.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return nil
	}
	// The path id wins over whatever the body carries.
	a.ID = id
	if ferrs := validate.Activity(a); ferrs != nil {
		respond.WriteValidationErrors(w, ferrs)
		return nil
	}
	out, err := h.dispatcher.Send(r.Context(), activities.EditCommand{Activity: a})
	if err != nil {
		return err
	}
	respond.WriteResult(w, out)
	return nil
}

// DeleteActivity DELETE /api/activities/{id}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) error {
	id, ferrs := validate.ID(mux.Vars(r)["id"])
	if ferrs != nil {
		respond.WriteValidationErrors(w, ferrs)
		return nil
	}
	out, err := h.dispatcher.Send(r.Context(), activities.DeleteCommand{ID: id})
	if err != nil {
		return err
	}
	respond.WriteResult(w, out)
	return nil
}
