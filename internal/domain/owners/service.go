package owners

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/validation"
)

type Service struct {
	owners OwnerRepository
	pets   PetRepository
	visits VisitRepository

	now      func() time.Time
	pageSize int
}

type Option func(*Service)

func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(owners OwnerRepository, pets PetRepository, visits VisitRepository, opts ...Option) *Service {
	s := &Service{
		owners:   owners,
		pets:     pets,
		visits:   visits,
		now:      time.Now,
		pageSize: paging.DefaultSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// -------------------------
// Owners
// -------------------------

// FindOwners busca por prefijo de apellido; lastName vacío trae todos.
// Una página sin resultados devuelve validation.Errors sobre "lastName".
func (s *Service) FindOwners(ctx context.Context, lastName string, page int) (paging.Page[Owner], error) {
	res, err := s.owners.FindByLastName(ctx, strings.TrimSpace(lastName), paging.NewRequest(page, s.pageSize))
	if err != nil {
		return paging.Page[Owner]{}, fmt.Errorf("find owners by last name: %w", err)
	}
	if res.Empty() {
		var errs validation.Errors
		errs.Reject("lastName", validation.CodeNotFound, "has not been found")
		return res, errs
	}
	return res, nil
}

func (s *Service) Owner(ctx context.Context, id int) (Owner, error) {
	return s.owners.FindByID(ctx, id)
}

// OwnerDetails carga además las visitas de cada mascota.
func (s *Service) OwnerDetails(ctx context.Context, id int) (Owner, error) {
	o, err := s.owners.FindByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	for i := range o.Pets {
		visits, err := s.visits.FindByPetID(ctx, o.Pets[i].ID)
		if err != nil {
			return Owner{}, fmt.Errorf("load visits of pet %d: %w", o.Pets[i].ID, err)
		}
		o.Pets[i].Visits = visits
	}
	return o, nil
}

// CreateOwner valida y persiste. Con validation.Errors devuelve el owner tal como se ligó.
func (s *Service) CreateOwner(ctx context.Context, o Owner) (Owner, error) {
	o = o.normalized()
	o.ID = 0
	o.Pets = nil

	if errs := validation.Struct(o); len(errs) > 0 {
		return o, errs
	}
	return s.owners.Save(ctx, o)
}

func (s *Service) UpdateOwner(ctx context.Context, id int, o Owner) (Owner, error) {
	o = o.normalized()
	o.ID = id

	if errs := validation.Struct(o); len(errs) > 0 {
		return o, errs
	}
	return s.owners.Save(ctx, o)
}

// -------------------------
// Pets
// -------------------------

// PetInput son los campos crudos del formulario de mascota.
type PetInput struct {
	Name      string `form:"name"`
	BirthDate string `form:"birthDate"`
	Type      string `form:"type"`
}

func (s *Service) PetTypes(ctx context.Context) ([]PetType, error) {
	return s.pets.FindPetTypes(ctx)
}

// CreatePet agrega una mascota al owner. Con validation.Errors devuelve la mascota ligada
// para volver a mostrar el formulario.
func (s *Service) CreatePet(ctx context.Context, owner Owner, in PetInput) (Pet, error) {
	pet, errs, err := s.bindPet(ctx, Pet{OwnerID: owner.ID}, in)
	if err != nil {
		return Pet{}, err
	}

	if pet.Name != "" {
		if _, dup := owner.Pet(pet.Name, true); dup {
			errs.Reject("name", validation.CodeDuplicate, "already exists")
		}
	}
	s.validatePet(pet, &errs)
	if len(errs) > 0 {
		return pet, errs
	}

	return s.pets.Save(ctx, pet)
}

// UpdatePet modifica una mascota del owner; ErrNotFound si no le pertenece.
func (s *Service) UpdatePet(ctx context.Context, owner Owner, petID int, in PetInput) (Pet, error) {
	current, ok := owner.PetByID(petID)
	if !ok {
		return Pet{}, ErrNotFound
	}

	pet, errs, err := s.bindPet(ctx, current, in)
	if err != nil {
		return Pet{}, err
	}

	if existing, dup := owner.Pet(pet.Name, false); dup && existing.ID != pet.ID {
		errs.Reject("name", validation.CodeDuplicate, "already exists")
	}
	s.validatePet(pet, &errs)
	if len(errs) > 0 {
		return pet, errs
	}

	return s.pets.Save(ctx, pet)
}

// bindPet aplica el formulario sobre pet. Un "type" vacío conserva el tipo actual.
func (s *Service) bindPet(ctx context.Context, pet Pet, in PetInput) (Pet, validation.Errors, error) {
	var errs validation.Errors

	pet.Name = strings.TrimSpace(in.Name)

	pet.BirthDate = nil
	if raw := strings.TrimSpace(in.BirthDate); raw != "" {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			errs.Reject("birthDate", validation.CodeTypeMismatch, "invalid date")
		} else {
			pet.BirthDate = &t
		}
	}

	if name := strings.TrimSpace(in.Type); name != "" {
		types, err := s.pets.FindPetTypes(ctx)
		if err != nil {
			return Pet{}, nil, fmt.Errorf("load pet types: %w", err)
		}
		found := false
		for _, t := range types {
			if strings.EqualFold(t.Name, name) {
				pet.Type = t
				found = true
				break
			}
		}
		if !found {
			errs.Reject("type", validation.CodeTypeMismatch, "unknown pet type")
		}
	}

	return pet, errs, nil
}

func (s *Service) validatePet(pet Pet, errs *validation.Errors) {
	if pet.Name == "" && !errs.Has("name") {
		errs.Reject("name", validation.CodeRequired, "is required")
	}
	if pet.IsNew() && pet.Type.IsZero() && !errs.Has("type") {
		errs.Reject("type", validation.CodeRequired, "is required")
	}
	switch {
	case errs.Has("birthDate"):
	case pet.BirthDate == nil:
		errs.Reject("birthDate", validation.CodeRequired, "is required")
	case pet.BirthDate.After(truncateDay(s.now())):
		errs.Reject("birthDate", validation.CodeTypeMismatch, "must not be in the future")
	}
}

// -------------------------
// Visits
// -------------------------

// VisitInput son los campos crudos del formulario de visita.
type VisitInput struct {
	Date        string `form:"date"`
	Description string `form:"description"`
}

// LoadPetWithVisit carga la mascota con su historial y le agrega una visita nueva
// (fecha de hoy). La mascota devuelta trae historial + 1.
func (s *Service) LoadPetWithVisit(ctx context.Context, petID int) (Pet, Visit, error) {
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return Pet{}, Visit{}, err
	}

	visits, err := s.visits.FindByPetID(ctx, petID)
	if err != nil {
		return Pet{}, Visit{}, fmt.Errorf("load visits of pet %d: %w", petID, err)
	}
	pet.Visits = visits

	v := pet.AddVisit(Visit{Date: truncateDay(s.now())})
	return pet, v, nil
}

// AddVisit valida y persiste una visita. Con validation.Errors devuelve la mascota y la
// visita ligadas para volver a mostrar el formulario.
func (s *Service) AddVisit(ctx context.Context, petID int, in VisitInput) (Pet, Visit, error) {
	pet, v, err := s.LoadPetWithVisit(ctx, petID)
	if err != nil {
		return Pet{}, Visit{}, err
	}

	var errs validation.Errors

	v.Description = strings.TrimSpace(in.Description)
	if raw := strings.TrimSpace(in.Date); raw != "" {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			errs.Reject("date", validation.CodeTypeMismatch, "invalid date")
		} else {
			v.Date = t
		}
	}
	errs = append(errs, validation.Struct(v)...)

	pet.Visits[len(pet.Visits)-1] = v
	if len(errs) > 0 {
		return pet, v, errs
	}

	saved, err := s.visits.Save(ctx, v)
	if err != nil {
		return Pet{}, Visit{}, err
	}
	pet.Visits[len(pet.Visits)-1] = saved
	return pet, saved, nil
}
