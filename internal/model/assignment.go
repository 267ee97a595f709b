package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is the single source of truth for the staff-client
// relationship. Current pairings, a staff member's ever-assigned history and
// a client's current staff are all views over this relation, so the three
// can no longer drift apart.
type Assignment struct {
	ID            uuid.UUID `json:"id"`
	StaffID       uuid.UUID `json:"staff_id"`
	ClientID      uuid.UUID `json:"client_id"`
	Active        bool      `json:"active"`
	FirstAssigned time.Time `json:"first_assigned"`
}

func NewAssignment(staffID, clientID uuid.UUID, now time.Time) *Assignment {
	return &Assignment{
		ID:            uuid.New(),
		StaffID:       staffID,
		ClientID:      clientID,
		Active:        true,
		FirstAssigned: now,
	}
}
