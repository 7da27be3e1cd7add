package memory

import (
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
)

// Seed carga los datos de ejemplo (mismos que postgres/seed/00001_data.sql).
// Los contadores de ID quedan después del último ID sembrado.
func (s *Store) Seed() {
	radiology := vets.Specialty{ID: 1, Name: "radiology"}
	surgery := vets.Specialty{ID: 2, Name: "surgery"}
	dentistry := vets.Specialty{ID: 3, Name: "dentistry"}

	for _, v := range []vets.Vet{
		{ID: 1, FirstName: "James", LastName: "Carter"},
		{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []vets.Specialty{radiology}},
		{ID: 3, FirstName: "Linda", LastName: "Douglas", Specialties: []vets.Specialty{surgery, dentistry}},
		{ID: 4, FirstName: "Rafael", LastName: "Ortega", Specialties: []vets.Specialty{surgery}},
		{ID: 5, FirstName: "Henry", LastName: "Stevens", Specialties: []vets.Specialty{radiology}},
		{ID: 6, FirstName: "Sharon", LastName: "Jenkins"},
	} {
		s.AddVet(v)
	}

	for i, name := range []string{"cat", "dog", "lizard", "snake", "bird", "hamster"} {
		s.AddPetType(owners.PetType{ID: i + 1, Name: name})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range []owners.Owner{
		{ID: 1, FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
		{ID: 2, FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
		{ID: 3, FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
		{ID: 4, FirstName: "Harold", LastName: "Davis", Address: "563 Friendly St.", City: "Windsor", Telephone: "6085553198"},
		{ID: 5, FirstName: "Peter", LastName: "McTavish", Address: "2387 S. Fair Way", City: "Madison", Telephone: "6085552765"},
		{ID: 6, FirstName: "Jean", LastName: "Coleman", Address: "105 N. Lake St.", City: "Monona", Telephone: "6085552654"},
		{ID: 7, FirstName: "Jeff", LastName: "Black", Address: "1450 Oak Blvd.", City: "Monona", Telephone: "6085555387"},
		{ID: 8, FirstName: "Maria", LastName: "Escobito", Address: "345 Maple St.", City: "Madison", Telephone: "6085557683"},
		{ID: 9, FirstName: "David", LastName: "Schroeder", Address: "2749 Blackhawk Trail", City: "Madison", Telephone: "6085559435"},
		{ID: 10, FirstName: "Carlos", LastName: "Estaban", Address: "2335 Independence La.", City: "Waunakee", Telephone: "6085555487"},
	} {
		s.owners[o.ID] = o
	}
	s.nextOwnerID = 10

	for _, p := range []struct {
		id, typeID, ownerID int
		name, born          string
	}{
		{1, 1, 1, "Leo", "2010-09-07"},
		{2, 6, 2, "Basil", "2012-08-06"},
		{3, 2, 3, "Rosy", "2011-04-17"},
		{4, 2, 3, "Jewel", "2010-03-07"},
		{5, 3, 4, "Iggy", "2010-11-30"},
		{6, 4, 5, "George", "2010-01-20"},
		{7, 1, 6, "Samantha", "2012-09-04"},
		{8, 1, 6, "Max", "2012-09-04"},
		{9, 5, 7, "Lucky", "2011-08-06"},
		{10, 2, 8, "Mulligan", "2007-02-24"},
		{11, 5, 9, "Freddy", "2010-03-09"},
		{12, 2, 10, "Lucky", "2010-06-24"},
		{13, 1, 10, "Sly", "2012-06-08"},
	} {
		born := mustDate(p.born)
		s.pets[p.id] = owners.Pet{
			ID:        p.id,
			OwnerID:   p.ownerID,
			Name:      p.name,
			BirthDate: &born,
			Type:      owners.PetType{ID: p.typeID},
		}
	}
	s.nextPetID = 13

	for _, v := range []owners.Visit{
		{ID: 1, PetID: 7, Date: mustDate("2013-01-01"), Description: "rabies shot"},
		{ID: 2, PetID: 8, Date: mustDate("2013-01-02"), Description: "rabies shot"},
		{ID: 3, PetID: 8, Date: mustDate("2013-01-03"), Description: "neutered"},
		{ID: 4, PetID: 7, Date: mustDate("2013-01-04"), Description: "spayed"},
	} {
		s.visits[v.ID] = v
	}
	s.nextVisitID = 4
}

func mustDate(s string) time.Time {
	t, err := time.Parse(owners.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
