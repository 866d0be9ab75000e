// Package activities contains the command and query handlers for the
// activity CRUD pipeline.
package activities

import (
	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/mediator"
	"github.com/gatherly/gatherly/internal/model"
)

// ListQuery asks for every activity.
type ListQuery struct{}

func (ListQuery) RequestName() string        { return "activities.list" }
func (ListQuery) RequestKind() mediator.Kind { return mediator.KindQuery }

// DetailsQuery asks for a single activity by id.
type DetailsQuery struct{ ID uuid.UUID }

func (DetailsQuery) RequestName() string        { return "activities.details" }
func (DetailsQuery) RequestKind() mediator.Kind { return mediator.KindQuery }

// CreateCommand persists a new activity. The id is already assigned.
type CreateCommand struct{ Activity model.Activity }

func (CreateCommand) RequestName() string        { return "activities.create" }
func (CreateCommand) RequestKind() mediator.Kind { return mediator.KindCommand }

// EditCommand replaces the stored record wholesale at Activity.ID.
type EditCommand struct{ Activity model.Activity }

func (EditCommand) RequestName() string        { return "activities.edit" }
func (EditCommand) RequestKind() mediator.Kind { return mediator.KindCommand }

// DeleteCommand removes an activity by id.
type DeleteCommand struct{ ID uuid.UUID }

func (DeleteCommand) RequestName() string        { return "activities.delete" }
func (DeleteCommand) RequestKind() mediator.Kind { return mediator.KindCommand }
