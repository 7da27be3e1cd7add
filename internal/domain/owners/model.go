package owners

import (
	"sort"
	"strings"
	"time"
)

// Owner es un cliente de la clínica. ID 0 = todavía no persistido.
type Owner struct {
	ID int `form:"-" json:"id"`

	FirstName string `form:"firstName" validate:"required" json:"firstName"`
	LastName  string `form:"lastName" validate:"required" json:"lastName"`
	Address   string `form:"address" validate:"required" json:"address"`
	City      string `form:"city" validate:"required" json:"city"`
	Telephone string `form:"telephone" validate:"required,number,max=10" json:"telephone"`

	Pets []Pet `form:"-" json:"pets"`
}

func (o Owner) IsNew() bool { return o.ID == 0 }

func (o Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// PetNames se usa en el listado de owners.
func (o Owner) PetNames() string {
	names := make([]string, 0, len(o.Pets))
	for _, p := range o.Pets {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// Pet busca por nombre sin distinguir mayúsculas.
// ignoreNew descarta mascotas aún no persistidas.
func (o Owner) Pet(name string, ignoreNew bool) (Pet, bool) {
	for _, p := range o.Pets {
		if ignoreNew && p.IsNew() {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Pet{}, false
}

func (o Owner) PetByID(id int) (Pet, bool) {
	for _, p := range o.Pets {
		if !p.IsNew() && p.ID == id {
			return p, true
		}
	}
	return Pet{}, false
}

// AddPet agrega o reemplaza (mismo ID) una mascota y mantiene el orden por nombre.
func (o *Owner) AddPet(p Pet) {
	p.OwnerID = o.ID
	for i := range o.Pets {
		if !p.IsNew() && o.Pets[i].ID == p.ID {
			o.Pets[i] = p
			SortPets(o.Pets)
			return
		}
	}
	o.Pets = append(o.Pets, p)
	SortPets(o.Pets)
}

func (o Owner) normalized() Owner {
	o.FirstName = strings.TrimSpace(o.FirstName)
	o.LastName = strings.TrimSpace(o.LastName)
	o.Address = strings.TrimSpace(o.Address)
	o.City = strings.TrimSpace(o.City)
	o.Telephone = strings.TrimSpace(o.Telephone)
	return o
}

// PetType es la categoría de una mascota (dog, cat, ...).
type PetType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (t PetType) IsZero() bool { return t.ID == 0 }

type Pet struct {
	ID      int `json:"id"`
	OwnerID int `json:"ownerId"`

	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Type      PetType    `json:"type"`

	Visits []Visit `json:"visits"`
}

func (p Pet) IsNew() bool { return p.ID == 0 }

// AddVisit asocia la visita a esta mascota.
func (p *Pet) AddVisit(v Visit) Visit {
	v.PetID = p.ID
	p.Visits = append(p.Visits, v)
	return v
}

// History son las visitas ya persistidas.
func (p Pet) History() []Visit {
	out := make([]Visit, 0, len(p.Visits))
	for _, v := range p.Visits {
		if !v.IsNew() {
			out = append(out, v)
		}
	}
	return out
}

type Visit struct {
	ID    int `json:"id"`
	PetID int `json:"petId"`

	Date        time.Time `json:"date"`
	Description string    `form:"description" validate:"required" json:"description"`
}

func (v Visit) IsNew() bool { return v.ID == 0 }

// SortPets ordena por nombre (case-insensitive) y luego por ID.
func SortPets(pets []Pet) {
	sort.SliceStable(pets, func(i, j int) bool {
		a, b := strings.ToLower(pets[i].Name), strings.ToLower(pets[j].Name)
		if a != b {
			return a < b
		}
		return pets[i].ID < pets[j].ID
	})
}

// SortVisits ordena por fecha y luego por ID.
func SortVisits(visits []Visit) {
	sort.SliceStable(visits, func(i, j int) bool {
		if !visits[i].Date.Equal(visits[j].Date) {
			return visits[i].Date.Before(visits[j].Date)
		}
		return visits[i].ID < visits[j].ID
	})
}

// DateLayout es el formato de fechas en formularios y vistas.
const DateLayout = "2006-01-02"

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
