package owners

import (
	"errors"
	"net/http"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/validation"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// registerVisitRoutes cuelga de /owners/{ownerID}. El ownerID no se valida:
// solo se usa tal cual para el redirect.
func registerVisitRoutes(r chi.Router, svc *Service, rd web.Renderer, log logger.Logger) {
	r.Get("/pets/{petID}/visits/new", initNewVisitFormHandler(svc, rd, log))
	r.Post("/pets/{petID}/visits/new", processNewVisitFormHandler(svc, rd, log))
}

func visitView(pet Pet, v Visit, errs validation.Errors) web.View {
	return web.View{
		Name: ViewVisitForm,
		Model: web.Model{
			"pet":   pet,
			"visit": v,
		},
		Errors: errs,
	}
}

func initNewVisitFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := web.IntParam(r, "petID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		pet, v, err := svc.LoadPetWithVisit(r.Context(), petID)
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "load pet with visit", err)
			return
		}

		web.Render(w, r, rd, visitView(pet, v, nil))
	}
}

func processNewVisitFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, ok := web.IntParam(r, "petID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		var in VisitInput
		if err := web.DecodeForm(r, &in); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		pet, v, err := svc.AddVisit(r.Context(), petID, in)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, visitView(pet, v, verrs))
			return
		}
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "add visit", err)
			return
		}

		web.Redirect(w, r, "/owners/"+chi.URLParam(r, "ownerID"))
	}
}
