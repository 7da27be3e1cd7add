package memory

import (
	"sync"

	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
)

// Store es el estado compartido por los repos in-memory. Las relaciones se
// guardan por ID y se arman al leer, igual que haría un join.
type Store struct {
	mu sync.RWMutex

	owners map[int]owners.Owner
	pets   map[int]owners.Pet
	visits map[int]owners.Visit
	types  map[int]owners.PetType

	vets        map[int]vets.Vet
	specialties map[int]vets.Specialty

	nextOwnerID int
	nextPetID   int
	nextVisitID int
}

func NewStore() *Store {
	return &Store{
		owners:      make(map[int]owners.Owner),
		pets:        make(map[int]owners.Pet),
		visits:      make(map[int]owners.Visit),
		types:       make(map[int]owners.PetType),
		vets:        make(map[int]vets.Vet),
		specialties: make(map[int]vets.Specialty),
	}
}

// NewSeededStore arranca con los datos de ejemplo de la clínica.
func NewSeededStore() *Store {
	s := NewStore()
	s.Seed()
	return s
}

// AddPetType registra un tipo de mascota (lookup, sin autoincrement).
func (s *Store) AddPetType(t owners.PetType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types[t.ID] = t
}

func (s *Store) AddVet(v vets.Vet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sp := range v.Specialties {
		s.specialties[sp.ID] = sp
	}
	s.vets[v.ID] = v
}

// petsOf arma las mascotas de un owner (con tipo, sin visitas). Requiere lock tomado.
func (s *Store) petsOf(ownerID int) []owners.Pet {
	out := make([]owners.Pet, 0)
	for _, p := range s.pets {
		if p.OwnerID != ownerID {
			continue
		}
		p.Type = s.types[p.Type.ID]
		p.Visits = nil
		out = append(out, p)
	}
	owners.SortPets(out)
	return out
}
