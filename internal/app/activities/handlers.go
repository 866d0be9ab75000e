package activities

import (
	"context"

	"github.com/gatherly/gatherly/internal/core"
	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/model"
	"github.com/gatherly/gatherly/internal/storage"
)

// Handlers implements one handler per request type against a Store.
// Infrastructure faults are returned as errors and escalate to the
// exception boundary; business failures travel inside the Result.
type Handlers struct {
	store storage.Store
}

func NewHandlers(store storage.Store) *Handlers { return &Handlers{store: store} }

// Register wires every activity handler into the dispatcher. Called
// once at startup; a duplicate registration aborts with an error.
func Register(d *mediator.Dispatcher, store storage.Store) error {
	h := NewHandlers(store)
	for name, fn := range map[string]mediator.HandlerFunc{
		ListQuery{}.RequestName():     h.list,
		DetailsQuery{}.RequestName():  h.details,
		CreateCommand{}.RequestName(): h.create,
		EditCommand{}.RequestName():   h.edit,
		DeleteCommand{}.RequestName(): h.delete,
	} {
		if err := d.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// list answers with the domain value directly; the transport layer
// wraps bare query results.
func (h *Handlers) list(ctx context.Context, _ mediator.Request) (any, error) {
	return h.store.ListActivities(ctx)
}

func (h *Handlers) details(ctx context.Context, req mediator.Request) (any, error) {
	q := req.(DetailsQuery)
	a, err := h.store.GetActivity(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return core.Empty[*model.Activity](), nil
	}
	return core.Ok(a), nil
}

func (h *Handlers) create(ctx context.Context, req mediator.Request) (any, error) {
	c := req.(CreateCommand)
	n, err := h.store.CreateActivity(ctx, c.Activity)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return core.Fail[core.Unit]("failed to create activity"), nil
	}
	return core.Ok(core.Unit{}), nil
}

func (h *Handlers) edit(ctx context.Context, req mediator.Request) (any, error) {
	c := req.(EditCommand)
	n, err := h.store.UpdateActivity(ctx, c.Activity)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return core.Fail[core.Unit]("failed to update activity"), nil
	}
	return core.Ok(core.Unit{}), nil
}

// delete yields an absent result for an unknown id, which the boundary
// surfaces as 404.
func (h *Handlers) delete(ctx context.Context, req mediator.Request) (any, error) {
	c := req.(DeleteCommand)
	n, err := h.store.DeleteActivity(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return core.Ok(core.Unit{}), nil
}
