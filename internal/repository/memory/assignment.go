package memory

import (
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/repository"
)

type assignmentRepository struct {
	// one row per (staff, client) pair ever assigned; rows are never
	// deleted, only deactivated
	rows   []*model.Assignment
	byPair map[uuid.UUID]map[uuid.UUID]*model.Assignment
}

func NewAssignmentRepository() repository.AssignmentRepository {
	return &assignmentRepository{
		byPair: make(map[uuid.UUID]map[uuid.UUID]*model.Assignment),
	}
}

func (r *assignmentRepository) Create(a *model.Assignment) {
	r.rows = append(r.rows, a)
	pairs, ok := r.byPair[a.StaffID]
	if !ok {
		pairs = make(map[uuid.UUID]*model.Assignment)
		r.byPair[a.StaffID] = pairs
	}
	pairs[a.ClientID] = a
}

func (r *assignmentRepository) Find(staffID, clientID uuid.UUID) (*model.Assignment, bool) {
	a, ok := r.byPair[staffID][clientID]
	return a, ok
}

func (r *assignmentRepository) ActiveForStaff(staffID uuid.UUID) []*model.Assignment {
	var out []*model.Assignment
	for _, a := range r.rows {
		if a.StaffID == staffID && a.Active {
			out = append(out, a)
		}
	}
	return out
}

func (r *assignmentRepository) ActiveForClient(clientID uuid.UUID) []*model.Assignment {
	var out []*model.Assignment
	for _, a := range r.rows {
		if a.ClientID == clientID && a.Active {
			out = append(out, a)
		}
	}
	return out
}

// EverAssignedCount is the number of distinct clients ever paired with the
// staff member, active or not. It never decreases.
func (r *assignmentRepository) EverAssignedCount(staffID uuid.UUID) int {
	return len(r.byPair[staffID])
}

// DeactivateForClient ends every active pairing the client has. It works off
// a snapshot so callers iterating the relation are not surprised mid-loop.
func (r *assignmentRepository) DeactivateForClient(clientID uuid.UUID) {
	snapshot := r.ActiveForClient(clientID)
	for _, a := range snapshot {
		a.Active = false
	}
}

func (r *assignmentRepository) DeactivateForStaff(staffID uuid.UUID) {
	snapshot := r.ActiveForStaff(staffID)
	for _, a := range snapshot {
		a.Active = false
	}
}
