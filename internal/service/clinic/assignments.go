package clinic

import (
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/model"
	apperrors "github.com/clinichq/frontdesk-api/pkg/errors"
)

// AssignStaff pairs a staff member with a patient. When the pair is already
// active it returns false with no error; callers report that as a message,
// not a failure. A pair that existed before (unassigned or discharged) is
// reactivated, so the ever-assigned count stays at one per distinct patient.
func (s *Service) AssignStaff(staffID, clientID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, ok := s.staff.Get(staffID)
	if !ok || !staff.Active {
		return false, apperrors.NotFound("staff", nil)
	}
	client, ok := s.clients.Get(clientID)
	if !ok || !client.Active {
		return false, apperrors.NotFound("patient", nil)
	}

	if a, ok := s.assignments.Find(staffID, clientID); ok {
		if a.Active {
			return false, nil
		}
		a.Active = true
		s.logger.Info().Str("staff", staff.FullName()).Str("patient", client.FullName()).Msg("staff reassigned")
		return true, nil
	}

	s.assignments.Create(model.NewAssignment(staffID, clientID, s.clock.Now()))
	s.logger.Info().Str("staff", staff.FullName()).Str("patient", client.FullName()).Msg("staff assigned")
	return true, nil
}

// AssignStaffChecked is the strict variant of AssignStaff: an already-active
// pair is an error instead of a false return.
func (s *Service) AssignStaffChecked(staffID, clientID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, ok := s.staff.Get(staffID)
	if !ok || !staff.Active {
		return apperrors.NotFound("staff", nil)
	}
	client, ok := s.clients.Get(clientID)
	if !ok || !client.Active {
		return apperrors.NotFound("patient", nil)
	}

	if a, ok := s.assignments.Find(staffID, clientID); ok {
		if a.Active {
			return apperrors.Conflict("staff is already assigned to this patient", nil)
		}
		a.Active = true
		return nil
	}
	s.assignments.Create(model.NewAssignment(staffID, clientID, s.clock.Now()))
	return nil
}

// UnassignStaff ends a current pairing. The ever-assigned history is
// untouched; it is historical.
func (s *Service) UnassignStaff(staffID, clientID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, ok := s.staff.Get(staffID)
	if !ok || !staff.Active {
		return apperrors.NotFound("staff", nil)
	}
	a, ok := s.assignments.Find(staffID, clientID)
	if !ok || !a.Active {
		return apperrors.Conflict("staff is not assigned to this patient", nil)
	}
	a.Active = false
	s.logger.Info().Str("staff", staff.FullName()).Msg("staff unassigned")
	return nil
}

// IsAvailableFor reports whether the pair may still be assigned: false only
// when the pairing is already active.
func (s *Service) IsAvailableFor(staffID, clientID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assignments.Find(staffID, clientID)
	return !ok || !a.Active
}

// CurrentPatients lists the patients currently paired with the staff member.
func (s *Service) CurrentPatients(staffID uuid.UUID) ([]*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff.Get(staffID); !ok {
		return nil, apperrors.NotFound("staff", nil)
	}
	return s.patientsFor(staffID), nil
}

// CurrentStaff lists the staff currently paired with the patient.
func (s *Service) CurrentStaff(clientID uuid.UUID) ([]*model.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients.Get(clientID); !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	var out []*model.Staff
	for _, a := range s.assignments.ActiveForClient(clientID) {
		if staff, ok := s.staff.Get(a.StaffID); ok {
			out = append(out, staff)
		}
	}
	return out, nil
}

// Discharge sends a patient home. The approving staff member must be on the
// active roster, whatever their occupation. The patient leaves the active
// roster but stays archived so a later visit reactivates them.
func (s *Service) Discharge(clientID, approvedBy uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients.Get(clientID)
	if !ok || !client.Active {
		return apperrors.NotFound("patient", nil)
	}
	approver, ok := s.staff.Get(approvedBy)
	if !ok || !approver.Active {
		return apperrors.Conflict("discharge has not been approved by staff", nil)
	}

	waiting := s.rooms.WaitingRoomNumber()
	if client.RoomNumber != waiting {
		if room, ok := s.rooms.Get(client.RoomNumber); ok {
			room.Occupied = false
		}
	}
	s.assignments.DeactivateForClient(clientID)
	s.clients.RemoveActive(clientID)
	client.Active = false
	client.RoomNumber = waiting
	s.logger.Info().
		Str("patient", client.FullName()).
		Str("approved_by", approver.FullName()).
		Msg("patient discharged")
	return nil
}

// patientsFor resolves the staff member's active assignments to clients, in
// assignment order. Callers hold the lock.
func (s *Service) patientsFor(staffID uuid.UUID) []*model.Client {
	var out []*model.Client
	for _, a := range s.assignments.ActiveForStaff(staffID) {
		if client, ok := s.clients.Get(a.ClientID); ok {
			out = append(out, client)
		}
	}
	return out
}
