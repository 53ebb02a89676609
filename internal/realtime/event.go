// Package realtime fans recipe change events out to connected clients.
//
// Mutations publish an event; every subscriber reacts by reloading the full
// recipe list, so the payload only identifies what changed, it never carries
// row data.
package realtime

import "github.com/google/uuid"

// Actions a change event can describe.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is one row-level change on a table.
type Event struct {
	Table  string    `json:"table"`
	Action string    `json:"action"`
	ID     uuid.UUID `json:"id"`
}

// NewEvent creates an Event for the recipes table.
func NewEvent(action string, id uuid.UUID) Event {
	return Event{Table: "recipes", Action: action, ID: id}
}

// Publisher delivers change events to subscribers. The production
// implementation goes through Redis so events reach clients of every server
// instance; tests publish straight into a Hub.
type Publisher interface {
	Publish(event Event)
}
