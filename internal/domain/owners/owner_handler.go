package owners

import (
	"errors"
	"net/http"
	"strconv"

	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/validation"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// Vistas del módulo.
const (
	ViewOwnerForm    = "owners/createOrUpdateOwnerForm"
	ViewFindOwners   = "owners/findOwners"
	ViewOwnersList   = "owners/ownersList"
	ViewOwnerDetails = "owners/ownerDetails"
	ViewPetForm      = "pets/createOrUpdatePetForm"
	ViewVisitForm    = "pets/createOrUpdateVisitForm"
)

func RegisterRoutes(r chi.Router, svc *Service, rd web.Renderer, log logger.Logger) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", processFindFormHandler(svc, rd, log))
		or.Get("/find", initFindFormHandler(rd))
		or.Get("/new", initCreationFormHandler(rd))
		or.Post("/new", processCreationFormHandler(svc, rd, log))

		or.Route("/{ownerID}", func(o chi.Router) {
			o.Get("/", showOwnerHandler(svc, rd, log))
			o.Get("/edit", initUpdateOwnerFormHandler(svc, rd, log))
			o.Post("/edit", processUpdateOwnerFormHandler(svc, rd, log))

			registerPetRoutes(o, svc, rd, log)
			registerVisitRoutes(o, svc, rd, log)
		})
	})
}

func initCreationFormHandler(rd web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, r, rd, web.View{
			Name:  ViewOwnerForm,
			Model: web.Model{"owner": Owner{}},
		})
	}
}

func processCreationFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form Owner
		if err := web.DecodeForm(r, &form); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		saved, err := svc.CreateOwner(r.Context(), form)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, web.View{
				Name:   ViewOwnerForm,
				Model:  web.Model{"owner": saved},
				Errors: verrs,
			})
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "create owner", err)
			return
		}

		log.Info("owner created", map[string]any{
			"owner_id":   saved.ID,
			"request_id": middleware.RequestIDFrom(r.Context()),
		})
		web.Redirect(w, r, "/owners/"+strconv.Itoa(saved.ID))
	}
}

func initFindFormHandler(rd web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, r, rd, web.View{
			Name:  ViewFindOwners,
			Model: web.Model{"owner": Owner{}},
		})
	}
}

// processFindFormHandler: 0 resultados => formulario con error, 1 => redirect al detalle,
// varios => listado paginado.
func processFindFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form Owner
		if err := web.DecodeForm(r, &form); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		page := paging.ParseNumber(r.URL.Query().Get("page"))
		res, err := svc.FindOwners(r.Context(), form.LastName, page)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, web.View{
				Name:   ViewFindOwners,
				Model:  web.Model{"owner": form},
				Errors: verrs,
			})
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "find owners", err)
			return
		}

		if res.TotalItems == 1 {
			web.Redirect(w, r, "/owners/"+strconv.Itoa(res.Items[0].ID))
			return
		}

		web.Render(w, r, rd, web.View{
			Name: ViewOwnersList,
			Model: web.Model{
				"owner":       form,
				"currentPage": res.Number,
				"totalPages":  res.TotalPages(),
				"totalItems":  res.TotalItems,
				"listOwners":  res.Items,
			},
		})
	}
}

func initUpdateOwnerFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := web.IntParam(r, "ownerID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		o, err := svc.Owner(r.Context(), ownerID)
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "load owner", err)
			return
		}

		web.Render(w, r, rd, web.View{
			Name:  ViewOwnerForm,
			Model: web.Model{"owner": o},
		})
	}
}

func processUpdateOwnerFormHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := web.IntParam(r, "ownerID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		var form Owner
		if err := web.DecodeForm(r, &form); err != nil {
			web.Error(w, r, rd, http.StatusBadRequest, "invalid form")
			return
		}

		saved, err := svc.UpdateOwner(r.Context(), ownerID, form)
		if verrs, ok := validation.As(err); ok {
			web.Render(w, r, rd, web.View{
				Name:   ViewOwnerForm,
				Model:  web.Model{"owner": saved},
				Errors: verrs,
			})
			return
		}
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "update owner", err)
			return
		}

		web.Redirect(w, r, "/owners/"+strconv.Itoa(ownerID))
	}
}

func showOwnerHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := web.IntParam(r, "ownerID")
		if !ok {
			web.NotFound(w, r, rd)
			return
		}

		o, err := svc.OwnerDetails(r.Context(), ownerID)
		if errors.Is(err, ErrNotFound) {
			web.NotFound(w, r, rd)
			return
		}
		if err != nil {
			serverError(w, r, rd, log, "load owner details", err)
			return
		}

		web.Render(w, r, rd, web.View{
			Name:  ViewOwnerDetails,
			Model: web.Model{"owner": o},
		})
	}
}

func serverError(w http.ResponseWriter, r *http.Request, rd web.Renderer, log logger.Logger, op string, err error) {
	log.Error(op+" failed", map[string]any{
		"err":        err,
		"path":       r.URL.Path,
		"request_id": middleware.RequestIDFrom(r.Context()),
	})
	web.InternalError(w, r, rd)
}
