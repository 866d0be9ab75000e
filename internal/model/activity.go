// Package model holds the domain types shared by the API and storage layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single event record. The id is assigned by the client
// before the create request is sent and never changes afterwards; every
// other field is replaced as a whole on update.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	Venue       string    `json:"venue"`
}
