package memory

import (
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/repository"
)

type staffRepository struct {
	staff []*model.Staff
	byID  map[uuid.UUID]*model.Staff
}

func NewStaffRepository() repository.StaffRepository {
	return &staffRepository{
		byID: make(map[uuid.UUID]*model.Staff),
	}
}

func (r *staffRepository) Add(staff *model.Staff) {
	r.staff = append(r.staff, staff)
	r.byID[staff.ID] = staff
}

func (r *staffRepository) Get(id uuid.UUID) (*model.Staff, bool) {
	s, ok := r.byID[id]
	return s, ok
}

func (r *staffRepository) Active() []*model.Staff {
	var out []*model.Staff
	for _, s := range r.staff {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Deactivate soft-removes the staff member from the roster. The record is
// kept so assignment history stays attributable.
func (r *staffRepository) Deactivate(id uuid.UUID) bool {
	s, ok := r.byID[id]
	if !ok || !s.Active {
		return false
	}
	s.Active = false
	return true
}
