package memory

import (
	"context"
	"sort"
	"strings"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/paging"
)

type ownerRepo struct {
	s *Store
}

func NewOwnerRepo(s *Store) owners.OwnerRepository {
	return &ownerRepo{s: s}
}

func (r *ownerRepo) FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[owners.Owner], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	prefix := strings.ToLower(strings.TrimSpace(lastName))

	matches := make([]owners.Owner, 0)
	for _, o := range r.s.owners {
		if !strings.HasPrefix(strings.ToLower(o.LastName), prefix) {
			continue
		}
		matches = append(matches, o)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})

	res := paging.Slice(matches, page)
	for i := range res.Items {
		res.Items[i].Pets = r.s.petsOf(res.Items[i].ID)
	}
	return res, nil
}

func (r *ownerRepo) FindByID(ctx context.Context, id int) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	o.Pets = r.s.petsOf(id)
	return o, nil
}

func (r *ownerRepo) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if o.IsNew() {
		r.s.nextOwnerID++
		o.ID = r.s.nextOwnerID
	} else if _, exists := r.s.owners[o.ID]; !exists {
		return owners.Owner{}, owners.ErrNotFound
	}

	// Las mascotas se persisten por su propio repo.
	stored := o
	stored.Pets = nil
	r.s.owners[o.ID] = stored

	o.Pets = r.s.petsOf(o.ID)
	return o, nil
}
