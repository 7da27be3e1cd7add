package vets

import (
	"net/http"

	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const ViewVetList = "vets/vetList"

func RegisterRoutes(r chi.Router, svc *Service, rd web.Renderer, log logger.Logger) {
	r.Get("/vets.html", showVetListHandler(svc, rd, log))
	r.Get("/vets", showResourcesVetListHandler(svc, log))
}

// vetsResponse mantiene el envoltorio {"vetList": [...]} del listado JSON.
type vetsResponse struct {
	VetList []Vet `json:"vetList"`
}

func showVetListHandler(svc *Service, rd web.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Page(r.Context(), paging.ParseNumber(r.URL.Query().Get("page")))
		if err != nil {
			log.Error("page vets failed", map[string]any{
				"err":        err,
				"request_id": middleware.RequestIDFrom(r.Context()),
			})
			web.InternalError(w, r, rd)
			return
		}

		web.Render(w, r, rd, web.View{
			Name: ViewVetList,
			Model: web.Model{
				"currentPage": page.Number,
				"totalPages":  page.TotalPages(),
				"totalItems":  page.TotalItems,
				"listVets":    page.Items,
			},
		})
	}
}

// showResourcesVetListHandler godoc
// @Summary      List veterinarians
// @Description  All veterinarians with their specialties.
// @Tags         vets
// @Produce      json
// @Success      200  {object}  vetsResponse
// @Failure      500  {string}  string  "internal error"
// @Router       /vets [get]
func showResourcesVetListHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.List(r.Context())
		if err != nil {
			log.Error("list vets failed", map[string]any{
				"err":        err,
				"request_id": middleware.RequestIDFrom(r.Context()),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if all == nil {
			all = []Vet{}
		}

		web.WriteJSON(w, http.StatusOK, vetsResponse{VetList: all})
	}
}
