package vets

import (
	"sort"
	"strings"
)

type Specialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Vet es un veterinario de la clínica con sus especialidades.
type Vet struct {
	ID          int         `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Specialties []Specialty `json:"specialties"`
}

func (v Vet) FullName() string {
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}

// SpecialtyNames devuelve "none" si no tiene especialidades.
func (v Vet) SpecialtyNames() string {
	if len(v.Specialties) == 0 {
		return "none"
	}
	names := make([]string, 0, len(v.Specialties))
	for _, s := range v.Specialties {
		names = append(names, s.Name)
	}
	return strings.Join(names, " ")
}

// SortSpecialties ordena por nombre.
func SortSpecialties(specs []Specialty) {
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
}
