package memory

import (
	"context"
	"sort"

	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/paging"
)

type vetRepo struct {
	s *Store
}

func NewVetRepo(s *Store) vets.Repository {
	return &vetRepo{s: s}
}

func (r *vetRepo) FindAll(ctx context.Context) ([]vets.Vet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.s.vets))
	for _, v := range r.s.vets {
		specs := append([]vets.Specialty(nil), v.Specialties...)
		vets.SortSpecialties(specs)
		v.Specialties = specs
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *vetRepo) FindPage(ctx context.Context, page paging.Request) (paging.Page[vets.Vet], error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return paging.Page[vets.Vet]{}, err
	}
	return paging.Slice(all, page), nil
}
