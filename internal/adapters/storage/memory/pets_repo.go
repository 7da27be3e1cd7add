package memory

import (
	"context"
	"errors"
	"sort"

	"petclinic/internal/domain/owners"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) owners.PetRepository {
	return &petRepo{s: s}
}

func (r *petRepo) FindPetTypes(ctx context.Context) ([]owners.PetType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.PetType, 0, len(r.s.types))
	for _, t := range r.s.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *petRepo) FindByID(ctx context.Context, id int) (owners.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return owners.Pet{}, owners.ErrNotFound
	}
	p.Type = r.s.types[p.Type.ID]
	p.Visits = nil
	return p, nil
}

func (r *petRepo) Save(ctx context.Context, p owners.Pet) (owners.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[p.OwnerID]; !ok {
		return owners.Pet{}, errors.New("pet owner does not exist")
	}
	if _, ok := r.s.types[p.Type.ID]; !ok {
		return owners.Pet{}, errors.New("pet type does not exist")
	}

	if p.IsNew() {
		r.s.nextPetID++
		p.ID = r.s.nextPetID
	} else if _, exists := r.s.pets[p.ID]; !exists {
		return owners.Pet{}, owners.ErrNotFound
	}

	stored := p
	stored.Visits = nil
	r.s.pets[p.ID] = stored

	p.Type = r.s.types[p.Type.ID]
	return p, nil
}
