package owners

import (
	"errors"
	"net/http"
	"strconv"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/validation"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// registerPetRoutes cuelga de /owners/{ownerID}.
func registerPetRoutes(r chi.Router, svc *Service, rd web.Renderer, log logger.Logger) {
	r.Get("/pets/new", initPetCreationFormHandler(svc, rd, log))
	r.Post("/pets/new", processPetCreationFormHandler(svc, rd, log))
	r.Get("/pets/{petID}/edit", initPetUpdateFormHandler(svc, rd, log))
	r.Post("/pets/{petID}/edit", processPetUpdateFormHandler(svc, rd, log))
}

// petFormContext es lo que toda vista del formulario de mascota necesita: owner y tipos.
type petFormContext struct {
	owner Owner
	types []PetType
}

// loadPetFormContext responde 404/500 por sí mismo y devuelve ok=false en ese caso.
func loadPetFormContext(w http.ResponseWriter, r *http.Request, svc *Service, rd web.Renderer, log logger.Logger) (petFormContext, bool) {
	ownerID, ok := web.IntParam(r, "ownerID")
	if !ok {
		web.NotFound(w, r, rd)
		return petFormContext{}, false
	}

	owner, err := svc.Owner(r.Context(), ownerID)
	if errors.Is(err, ErrNotFound) {
		web.NotFound(w, r, rd)
		return petFormContext{}, false
	}
	if err != nil {
		serverError(w, r, rd, log, "load owner", err)
		return petFormContext{}, false
	}

	types, err := svc.PetTypes(r.Context())
	if err != nil {
		serverError(w, r, rd, log, "load pet types", err)
		return petFormContext{}, false
	}

	return petFormContext{owner: owner, types: types}, true
}

func (c petFormContext) view(pet Pet, errs validation.Errors) web.View {
	return web.View{
		Name: ViewPetForm,
		Model: web.Model{
			"owner": c.owner,
			"pet":   pet,
			"types": c.types,
		},
		Errors: errs,
	}
}

func initPetCreationFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fc, ok := loadPetFormContext(w, r, svc, rd, log)
		if !ok {
			return
		}
		web.Render(w, r, rd, fc.view(Pet{OwnerID: fc.owner.ID}, nil))
	}
}

func processPetCreationFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fc, ok := loadPetFormContext(w, r, svc, rd, log)
		if !ok {
			return
		}

		var in PetInput
		if err := web.DecodeForm(r, &in); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		pet, err := svc.CreatePet(r.Context(), fc.owner, in)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, fc.view(pet, verrs))
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "create pet", err)
			return
		}

		web.Redirect(w, r, "/owners/"+strconv.Itoa(fc.owner.ID))
	}
}

func initPetUpdateFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fc, ok := loadPetFormContext(w, r, svc, rd, log)
		if !ok {
			return
		}

		petID, ok := web.IntParam(r, "petID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}
		pet, ok := fc.owner.PetByID(petID)
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		web.Render(w, r, rd, fc.view(pet, nil))
	}
}

func processPetUpdateFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fc, ok := loadPetFormContext(w, r, svc, rd, log)
		if !ok {
			return
		}

		petID, ok := web.IntParam(r, "petID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		var in PetInput
		if err := web.DecodeForm(r, &in); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		pet, err := svc.UpdatePet(r.Context(), fc.owner, petID, in)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, fc.view(pet, verrs))
			return
		}
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "update pet", err)
			return
		}

		web.Redirect(w, r, "/owners/"+strconv.Itoa(fc.owner.ID))
	}
}
