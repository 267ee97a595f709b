package clinic

import (
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/clinichq/frontdesk-api/pkg/errors"
)

// AssignToRoom moves a patient into the room with the given number.
//
// The move is rejected when the room is unknown, or when it is occupied and
// its display name does not contain "Waiting" (waiting rooms hold any number
// of patients). The patient's previous room is vacated unless it is the
// waiting room.
func (s *Service) AssignToRoom(clientID uuid.UUID, roomNumber int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients.Get(clientID)
	if !ok || !client.Active {
		return apperrors.NotFound("patient", nil)
	}
	room, ok := s.rooms.Get(roomNumber)
	if !ok {
		return apperrors.NotFound("room", nil)
	}
	if room.Occupied && !strings.Contains(room.Name, "Waiting") {
		return apperrors.Conflict("room is occupied", nil)
	}

	if client.RoomNumber != s.rooms.WaitingRoomNumber() {
		if previous, ok := s.rooms.Get(client.RoomNumber); ok {
			previous.Occupied = false
		}
	}

	client.RoomNumber = roomNumber
	room.Occupied = true
	s.logger.Info().Str("patient", client.FullName()).Int("room", roomNumber).Msg("patient moved")
	return nil
}
