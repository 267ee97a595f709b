package model

import "fmt"

// RoomID is the fixed-length layout identity of a room, used for drawing the
// room map. It is distinct from the sequential room number patients see.
type RoomID [4]int

func (id RoomID) String() string {
	return fmt.Sprintf("[%d %d %d %d]", id[0], id[1], id[2], id[3])
}

// Room holds the layout id, type tag, display name and occupancy flag of a
// single room. Rooms are created once and never deleted; only the occupancy
// flag changes afterwards.
type Room struct {
	ID       RoomID `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Occupied bool   `json:"occupied"`
}

func NewRoom(id RoomID, roomType, name string) *Room {
	return &Room{
		ID:   id,
		Type: roomType,
		Name: name,
	}
}
