package vets

import (
	"context"
	"fmt"

	"petclinic/internal/platform/paging"
)

type Service struct {
	repo     Repository
	pageSize int
}

func NewService(repo Repository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = paging.DefaultSize
	}
	return &Service{repo: repo, pageSize: pageSize}
}

func (s *Service) List(ctx context.Context) ([]Vet, error) {
	out, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vets: %w", err)
	}
	return out, nil
}

func (s *Service) Page(ctx context.Context, page int) (paging.Page[Vet], error) {
	out, err := s.repo.FindPage(ctx, paging.NewRequest(page, s.pageSize))
	if err != nil {
		return paging.Page[Vet]{}, fmt.Errorf("page vets: %w", err)
	}
	return out, nil
}
