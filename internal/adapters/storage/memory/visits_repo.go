package memory

import (
	"context"
	"errors"

	"petclinic/internal/domain/owners"
)

type visitRepo struct {
	s *Store
}

func NewVisitRepo(s *Store) owners.VisitRepository {
	return &visitRepo{s: s}
}

func (r *visitRepo) FindByPetID(ctx context.Context, petID int) ([]owners.Visit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Visit, 0)
	for _, v := range r.s.visits {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	owners.SortVisits(out)
	return out, nil
}

func (r *visitRepo) Save(ctx context.Context, v owners.Visit) (owners.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[v.PetID]; !ok {
		return owners.Visit{}, errors.New("visit pet does not exist")
	}

	if v.IsNew() {
		r.s.nextVisitID++
		v.ID = r.s.nextVisitID
	} else if _, exists := r.s.visits[v.ID]; !exists {
		return owners.Visit{}, owners.ErrNotFound
	}

	r.s.visits[v.ID] = v
	return v, nil
}
