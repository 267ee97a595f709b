package model

import "github.com/google/uuid"

// Staff occupations that count as clinical staff.
const (
	OccupationPhysician = "physician"
	OccupationNurse     = "nurse"
)

// Staff is a member of the clinic roster. The first name is decorated with an
// occupation title at creation time and never re-derived afterwards. Removal
// from the roster is soft: the record stays, Active flips to false.
type Staff struct {
	ID         uuid.UUID `json:"id"`
	Occupation string    `json:"occupation"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Clinical   bool      `json:"clinical"`
	Active     bool      `json:"active"`
}

// NewStaff builds a staff member, prefixing "Dr. " for physicians and
// "Nurse " for nurses. Any other occupation keeps the name unchanged and is
// not clinical staff.
func NewStaff(occupation, firstName, lastName string) *Staff {
	s := &Staff{
		ID:         uuid.New(),
		Occupation: occupation,
		FirstName:  firstName,
		LastName:   lastName,
		Active:     true,
	}
	switch occupation {
	case OccupationPhysician:
		s.FirstName = "Dr. " + firstName
		s.Clinical = true
	case OccupationNurse:
		s.FirstName = "Nurse " + firstName
		s.Clinical = true
	}
	return s
}

// FullName is the display name used in room and roster listings.
func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
