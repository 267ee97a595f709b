package memory

import (
	"strings"

	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/repository"
)

type roomRepository struct {
	rooms []*model.Room
}

func NewRoomRepository() repository.RoomRepository {
	return &roomRepository{}
}

// Add appends the room and returns its number. Number i+1 is slice index i,
// which is what keeps numbers gap-free and insertion-ordered.
func (r *roomRepository) Add(room *model.Room) int {
	r.rooms = append(r.rooms, room)
	return len(r.rooms)
}

func (r *roomRepository) Get(number int) (*model.Room, bool) {
	if number < 1 || number > len(r.rooms) {
		return nil, false
	}
	return r.rooms[number-1], true
}

func (r *roomRepository) NumberOf(id model.RoomID) (int, bool) {
	for i, room := range r.rooms {
		if room.ID == id {
			return i + 1, true
		}
	}
	return 0, false
}

func (r *roomRepository) All() []*model.Room {
	out := make([]*model.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

func (r *roomRepository) Count() int {
	return len(r.rooms)
}

// WaitingRoomNumber scans for the room whose type tag contains "waiting".
// At most one such room is expected; 0 means there is none.
func (r *roomRepository) WaitingRoomNumber() int {
	for i, room := range r.rooms {
		if strings.Contains(room.Type, "waiting") {
			return i + 1
		}
	}
	return 0
}
