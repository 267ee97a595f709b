package model

// RegisterPatientRequest registers a new patient, or reactivates an archived
// one when the name matches. The visit details become the patient's current
// record.
type RegisterPatientRequest struct {
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       string  `json:"last_name" binding:"required"`
	BirthDate      string  `json:"birth_date" binding:"required,datetime=01/02/2006"`
	ChiefComplaint string  `json:"chief_complaint" binding:"required"`
	BodyTemp       float64 `json:"body_temp" binding:"required"`
}

// UpdateVisitRecordRequest updates fields of the patient's active visit.
type UpdateVisitRecordRequest struct {
	ChiefComplaint *string  `json:"chief_complaint"`
	BodyTemp       *float64 `json:"body_temp"`
	RegisteredAt   *string  `json:"registered_at" binding:"omitempty,visittime"`
}

type AssignRoomRequest struct {
	RoomNumber int `json:"room_number" binding:"required"`
}

type AssignStaffRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
}

type AssignPatientRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}

type DischargeRequest struct {
	ApprovedBy string `json:"approved_by" binding:"required,uuid"`
}

type CreateStaffRequest struct {
	Occupation string `json:"occupation" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
}

type CreateRoomRequest struct {
	ID   [4]int `json:"id" binding:"required"`
	Type string `json:"type" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// Seed definitions handed to LoadInitialState by the flat-file loader.
type RoomDefinition struct {
	ID   RoomID
	Type string
	Name string
}

type StaffDefinition struct {
	Occupation string
	FirstName  string
	LastName   string
}

type ClientDefinition struct {
	RoomNumber int
	FirstName  string
	LastName   string
	BirthDate  string
}
