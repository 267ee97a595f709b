package clinic

import (
	"fmt"
	"strings"

	apperrors "github.com/clinichq/frontdesk-api/pkg/errors"
)

const rosterBanner = "--------------------------------------------------------------------------\n"

// DisplayRoomInfo renders one room: each active patient currently in it (or
// "Empty"), followed by the display name of every staff member currently
// paired with any patient in the room.
func (s *Service) DisplayRoomInfo(roomNumber int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms.Get(roomNumber); !ok {
		return "", apperrors.NotFound("room", nil)
	}
	return s.roomInfo(roomNumber), nil
}

// DisplayAllRoomsInfo renders every room in number order, each block headed
// by "Room N".
func (s *Service) DisplayAllRoomsInfo() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for number := 1; number <= s.rooms.Count(); number++ {
		fmt.Fprintf(&b, "Room %d\n", number)
		b.WriteString(s.roomInfo(number))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Service) roomInfo(roomNumber int) string {
	waiting := s.rooms.WaitingRoomNumber()
	inRoom := make(map[string]bool)

	var b strings.Builder
	occupants := 0
	for _, client := range s.clients.Active() {
		if client.RoomNumber != roomNumber {
			continue
		}
		occupants++
		inRoom[client.ID.String()] = true
		b.WriteString(client.DisplayInfo(roomNumber == waiting))
		b.WriteString("\n")
	}
	if occupants == 0 {
		b.WriteString("Empty\n")
	}

	for _, staff := range s.staff.Active() {
		for _, a := range s.assignments.ActiveForStaff(staff.ID) {
			if inRoom[a.ClientID.String()] {
				b.WriteString(staff.FullName())
				b.WriteString("\n")
				break
			}
		}
	}
	return b.String()
}

// StaffRosterDisplay renders every active staff member with their current
// patients and their ever-assigned total.
func (s *Service) StaffRosterDisplay() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString(rosterBanner)
	active := s.staff.Active()
	if len(active) == 0 {
		b.WriteString("There are no Staff members assigned to any patients at the moment.\n")
	}
	for _, staff := range active {
		fmt.Fprintf(&b, "Staff: %s %s\nClients assigned: ", staff.FirstName, staff.LastName)
		for _, client := range s.patientsFor(staff.ID) {
			fmt.Fprintf(&b, "\n %s, %s", client.LastName, client.FirstName)
		}
		fmt.Fprintf(&b, "\nTotal number of assigned patients ever: %d\n", s.assignments.EverAssignedCount(staff.ID))
	}
	b.WriteString(rosterBanner)
	return b.String()
}
