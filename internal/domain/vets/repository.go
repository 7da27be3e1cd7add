package vets

import (
	"context"

	"petclinic/internal/platform/paging"
)

type Repository interface {
	// FindAll devuelve todos los vets ordenados por ID.
	FindAll(ctx context.Context) ([]Vet, error)
	FindPage(ctx context.Context, page paging.Request) (paging.Page[Vet], error)
}
