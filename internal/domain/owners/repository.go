package owners

import (
	"context"
	"errors"

	"petclinic/internal/platform/paging"
)

// ErrNotFound lo devuelven los repositorios cuando el ID no existe.
var ErrNotFound = errors.New("not found")

type OwnerRepository interface {
	// FindByLastName hace prefix match (case-insensitive) y ordena por ID.
	// Las mascotas de cada owner vienen cargadas, sin visitas.
	FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[Owner], error)
	// FindByID carga las mascotas (con su tipo) sin visitas.
	FindByID(ctx context.Context, id int) (Owner, error)
	// Save inserta si o.IsNew(), si no actualiza los datos de contacto.
	Save(ctx context.Context, o Owner) (Owner, error)
}

type PetRepository interface {
	FindPetTypes(ctx context.Context) ([]PetType, error)
	FindByID(ctx context.Context, id int) (Pet, error)
	Save(ctx context.Context, p Pet) (Pet, error)
}

type VisitRepository interface {
	FindByPetID(ctx context.Context, petID int) ([]Visit, error)
	Save(ctx context.Context, v Visit) (Visit, error)
}
