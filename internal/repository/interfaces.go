package repository

import (
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/model"
)

// All repository interfaces in one file. State lives for the session only;
// implementations are in-memory (see the memory package).
type (
	// RoomRepository owns the room list and the sequential numbering of
	// rooms. Numbers are 1-based, assigned in insertion order and never
	// reused.
	RoomRepository interface {
		Add(room *model.Room) int
		Get(number int) (*model.Room, bool)
		NumberOf(id model.RoomID) (int, bool)
		All() []*model.Room
		Count() int
		WaitingRoomNumber() int
	}

	// StaffRepository owns the staff roster. Removal is soft: records stay
	// so assignment history remains attributable.
	StaffRepository interface {
		Add(staff *model.Staff)
		Get(id uuid.UUID) (*model.Staff, bool)
		Active() []*model.Staff
		Deactivate(id uuid.UUID) bool
	}

	// ClientRepository owns the active roster and the permanent archive.
	// Every client ever registered stays in the archive.
	ClientRepository interface {
		Add(client *model.Client)
		Get(id uuid.UUID) (*model.Client, bool)
		Active() []*model.Client
		Archive() []*model.Client
		RemoveActive(id uuid.UUID)
		Reactivate(client *model.Client)
		FindArchivedByName(firstName, lastName string) (*model.Client, bool)
		FindActiveByName(firstName, lastName string) (*model.Client, bool)
	}

	// AssignmentRepository owns the staff-client relation. Current
	// pairings, ever-assigned counts and a client's current staff are all
	// queries over the same rows.
	AssignmentRepository interface {
		Create(a *model.Assignment)
		Find(staffID, clientID uuid.UUID) (*model.Assignment, bool)
		ActiveForStaff(staffID uuid.UUID) []*model.Assignment
		ActiveForClient(clientID uuid.UUID) []*model.Assignment
		EverAssignedCount(staffID uuid.UUID) int
		DeactivateForClient(clientID uuid.UUID)
		DeactivateForStaff(staffID uuid.UUID)
	}
)
