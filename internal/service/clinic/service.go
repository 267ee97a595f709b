package clinic

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/repository"
	"github.com/clinichq/frontdesk-api/pkg/clock"
	apperrors "github.com/clinichq/frontdesk-api/pkg/errors"
)

// Service is the clinic aggregate: it owns the room list, the staff roster,
// the client roster and archive, and the assignment relation, and is the only
// place that mutates them. Operations are synchronous and multi-step, so a
// single mutex serializes every public entry point; callers such as the HTTP
// layer may invoke them concurrently.
type Service struct {
	mu          sync.Mutex
	name        string
	rooms       repository.RoomRepository
	staff       repository.StaffRepository
	clients     repository.ClientRepository
	assignments repository.AssignmentRepository
	clock       clock.Clock
	logger      zerolog.Logger
}

func NewService(
	name string,
	rooms repository.RoomRepository,
	staff repository.StaffRepository,
	clients repository.ClientRepository,
	assignments repository.AssignmentRepository,
	clk clock.Clock,
	logger zerolog.Logger,
) *Service {
	return &Service{
		name:        name,
		rooms:       rooms,
		staff:       staff,
		clients:     clients,
		assignments: assignments,
		clock:       clk,
		logger:      logger,
	}
}

func (s *Service) Name() string {
	return s.name
}

// AddRoom appends a room and returns its sequential number. A room whose
// type tag contains "waiting" becomes discoverable as the waiting room from
// this point on.
func (s *Service) AddRoom(def model.RoomDefinition) (int, *model.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addRoom(def)
}

func (s *Service) addRoom(def model.RoomDefinition) (int, *model.Room) {
	room := model.NewRoom(def.ID, def.Type, def.Name)
	number := s.rooms.Add(room)
	s.logger.Info().Int("room_number", number).Str("name", room.Name).Msg("room added")
	return number, room
}

// WaitingRoomNumber returns the number of the room whose type contains
// "waiting", or 0 if the clinic has none. Callers must tolerate the 0.
func (s *Service) WaitingRoomNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms.WaitingRoomNumber()
}

func (s *Service) Rooms() []*model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms.All()
}

func (s *Service) Room(number int) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms.Get(number)
	if !ok {
		return nil, apperrors.NotFound("room", nil)
	}
	return room, nil
}

// AddStaff creates a staff member with the occupation-derived title and puts
// them on the active roster.
func (s *Service) AddStaff(occupation, firstName, lastName string) *model.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addStaff(occupation, firstName, lastName)
}

func (s *Service) addStaff(occupation, firstName, lastName string) *model.Staff {
	staff := model.NewStaff(occupation, firstName, lastName)
	s.staff.Add(staff)
	s.logger.Info().Str("staff", staff.FullName()).Str("occupation", occupation).Msg("staff added")
	return staff
}

// RemoveStaff soft-removes a staff member: they leave the active roster and
// their current pairings are discarded. Their assignment history stays.
func (s *Service) RemoveStaff(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff, ok := s.staff.Get(id)
	if !ok {
		return apperrors.NotFound("staff", nil)
	}
	if !staff.Active {
		return apperrors.Conflict("staff has already been removed", nil)
	}
	s.staff.Deactivate(id)
	s.assignments.DeactivateForStaff(id)
	s.logger.Info().Str("staff", staff.FullName()).Msg("staff removed")
	return nil
}

func (s *Service) ActiveStaff() []*model.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staff.Active()
}

func (s *Service) StaffMember(id uuid.UUID) (*model.Staff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staff, ok := s.staff.Get(id)
	if !ok {
		return nil, apperrors.NotFound("staff", nil)
	}
	return staff, nil
}

// EverAssignedCount is the number of distinct patients ever paired with the
// staff member. It survives unassignment, discharge and staff removal.
func (s *Service) EverAssignedCount(id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff.Get(id); !ok {
		return 0, apperrors.NotFound("staff", nil)
	}
	return s.assignments.EverAssignedCount(id), nil
}

// RegisterPatient places a patient in the waiting room with a fresh visit
// record. A discharged patient whose name matches an archive entry is
// reactivated with their history intact instead of being re-created; the
// second return reports that welcome-back case.
func (s *Service) RegisterPatient(req model.RegisterPatientRequest) (*model.Client, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.NewVisitRecord(s.clock.Now().Format(model.TimeLayout), req.ChiefComplaint, req.BodyTemp)
	waiting := s.rooms.WaitingRoomNumber()

	if existing, ok := s.clients.FindArchivedByName(req.FirstName, req.LastName); ok {
		if existing.Active {
			return nil, false, apperrors.Conflict("patient is already registered", nil)
		}
		existing.Active = true
		existing.RoomNumber = waiting
		existing.AttachRecord(record)
		s.clients.Reactivate(existing)
		s.logger.Info().Str("patient", existing.FullName()).Msg("returning patient reactivated")
		return existing, true, nil
	}

	client := model.NewClient(waiting, req.FirstName, req.LastName, req.BirthDate)
	client.AttachRecord(record)
	s.clients.Add(client)
	s.logger.Info().Str("patient", client.FullName()).Int("room", waiting).Msg("patient registered")
	return client, false, nil
}

func (s *Service) ActivePatients() []*model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.Active()
}

func (s *Service) ArchivedPatients() []*model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.Archive()
}

func (s *Service) Patient(id uuid.UUID) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients.Get(id)
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return client, nil
}

// FindPatient looks up an active patient by case-sensitive substring match on
// first and last name.
func (s *Service) FindPatient(firstName, lastName string) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients.FindActiveByName(firstName, lastName)
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return client, nil
}

// RecordHistory returns the ordered visit-record history of a patient,
// archived ones included.
func (s *Service) RecordHistory(id uuid.UUID) ([]*model.VisitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, ok := s.clients.Get(id)
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	out := make([]*model.VisitRecord, len(client.History))
	copy(out, client.History)
	return out, nil
}

// UpdateVisitRecord applies the non-nil fields to the patient's current
// visit record.
func (s *Service) UpdateVisitRecord(id uuid.UUID, req model.UpdateVisitRecordRequest) (*model.VisitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients.Get(id)
	if !ok || !client.Active {
		return nil, apperrors.NotFound("patient", nil)
	}
	if client.Record == nil {
		return nil, apperrors.Conflict("patient has no current visit record", nil)
	}
	if req.ChiefComplaint != nil {
		client.Record.ChiefComplaint = *req.ChiefComplaint
	}
	if req.BodyTemp != nil {
		client.Record.BodyTemp = *req.BodyTemp
	}
	if req.RegisteredAt != nil {
		client.Record.RegisteredAt = *req.RegisteredAt
	}
	return client.Record, nil
}

// LoadInitialState seeds the clinic through the same entry points a live
// session uses: rooms first (numbering follows file order), then staff, then
// patients placed directly in their listed rooms.
func (s *Service) LoadInitialState(rooms []model.RoomDefinition, staff []model.StaffDefinition, clients []model.ClientDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, def := range rooms {
		s.addRoom(def)
	}
	for _, def := range staff {
		s.addStaff(def.Occupation, def.FirstName, def.LastName)
	}
	waiting := s.rooms.WaitingRoomNumber()
	for _, def := range clients {
		client := model.NewClient(def.RoomNumber, def.FirstName, def.LastName, def.BirthDate)
		s.clients.Add(client)
		if def.RoomNumber != waiting {
			if room, ok := s.rooms.Get(def.RoomNumber); ok {
				room.Occupied = true
			}
		}
	}
	s.logger.Info().
		Int("rooms", len(rooms)).
		Int("staff", len(staff)).
		Int("patients", len(clients)).
		Msg("initial state loaded")
}
