package memory

import (
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/repository"
)

type clientRepository struct {
	active  []*model.Client
	archive []*model.Client
	byID    map[uuid.UUID]*model.Client
}

func NewClientRepository() repository.ClientRepository {
	return &clientRepository{
		byID: make(map[uuid.UUID]*model.Client),
	}
}

// Add registers a brand-new client: active roster plus permanent archive.
func (r *clientRepository) Add(client *model.Client) {
	r.active = append(r.active, client)
	r.archive = append(r.archive, client)
	r.byID[client.ID] = client
}

func (r *clientRepository) Get(id uuid.UUID) (*model.Client, bool) {
	c, ok := r.byID[id]
	return c, ok
}

func (r *clientRepository) Active() []*model.Client {
	out := make([]*model.Client, len(r.active))
	copy(out, r.active)
	return out
}

func (r *clientRepository) Archive() []*model.Client {
	out := make([]*model.Client, len(r.archive))
	copy(out, r.archive)
	return out
}

func (r *clientRepository) RemoveActive(id uuid.UUID) {
	for i, c := range r.active {
		if c.ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}

// Reactivate puts an archived client back on the active roster. The caller
// is responsible for flipping the Active flag and room number.
func (r *clientRepository) Reactivate(client *model.Client) {
	r.active = append(r.active, client)
}

func (r *clientRepository) FindArchivedByName(firstName, lastName string) (*model.Client, bool) {
	for _, c := range r.archive {
		if c.MatchesName(firstName, lastName) {
			return c, true
		}
	}
	return nil, false
}

func (r *clientRepository) FindActiveByName(firstName, lastName string) (*model.Client, bool) {
	for _, c := range r.active {
		if c.MatchesName(firstName, lastName) {
			return c, true
		}
	}
	return nil, false
}
