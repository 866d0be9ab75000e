// Package validate checks activity payloads before they reach a
// handler and produces the field-keyed error body.
package validate

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/model"
)

// Fields maps a field name to its violation messages, serialized as
// {"errors": {field: [message, ...]}}.
type Fields map[string][]string

func (f Fields) add(field, message string) { f[field] = append(f[field], message) }

// ID parses a path id. On failure it returns field errors keyed "id";
// the client's not-found redirect for reads keys on exactly that.
func ID(raw string) (uuid.UUID, Fields) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Fields{"id": {"id must be a valid uuid"}}
	}
	return id, nil
}

// Activity checks every required field of a create/update payload.
// Returns nil when the payload is valid.
func Activity(a model.Activity) Fields {
	errs := Fields{}
	if a.ID == uuid.Nil {
		errs.add("id", "id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		errs.add("title", "title is required")
	}
	if a.Date.IsZero() {
		errs.add("date", "date is required")
	}
	if strings.TrimSpace(a.Description) == "" {
		errs.add("description", "description is required")
	}
	if strings.TrimSpace(a.Category) == "" {
		errs.add("category", "category is required")
	}
	if strings.TrimSpace(a.City) == "" {
		errs.add("city", "city is required")
	}
	if strings.TrimSpace(a.Venue) == "" {
		errs.add("venue", "venue is required")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
