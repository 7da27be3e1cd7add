package router

import (
	"database/sql"
	"net/http"

	mem "petclinic/internal/adapters/storage/memory"
	pg "petclinic/internal/adapters/storage/postgres"
	_ "petclinic/internal/docs"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/vets"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/web"
	"petclinic/internal/ui"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory con datos de ejemplo.
	DB *sql.DB

	Logger   logger.Logger        // nil => Nop
	Renderer web.Renderer         // nil => templates embebidos
	Registry *prometheus.Registry // nil => registry propio con collectors de Go/proceso

	PageSize int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	rd := opts.Renderer
	if rd == nil {
		rd = ui.MustNew()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = paging.DefaultSize
	}
	m := metrics.NewHTTP(opts.Registry)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover(log, rd))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, r, rd, web.View{Name: web.ViewWelcome})
	})
	// /oups dispara la página de error a propósito.
	r.Get("/oups", func(http.ResponseWriter, *http.Request) {
		panic("Expected: handler used to showcase what happens when an error is thrown")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		web.NotFound(w, r, rd)
	})

	var (
		ownerRepo owners.OwnerRepository
		petRepo   owners.PetRepository
		visitRepo owners.VisitRepository
		vetRepo   vets.Repository
	)

	if opts.DB != nil {
		ownerRepo = pg.NewOwnersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		visitRepo = pg.NewVisitsRepo(opts.DB)
		vetRepo = pg.NewVetsRepo(opts.DB)
	} else {
		store := mem.NewSeededStore()
		ownerRepo = mem.NewOwnerRepo(store)
		petRepo = mem.NewPetRepo(store)
		visitRepo = mem.NewVisitRepo(store)
		vetRepo = mem.NewVetRepo(store)
	}

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo, petRepo, visitRepo, owners.WithPageSize(pageSize))
	vetsSvc := vets.NewService(vetRepo, pageSize)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, rd, log)
	vets.RegisterRoutes(r, vetsSvc, rd, log)

	return r
}

// healthHandler godoc
// @Summary      Health check
// @Description  Liveness probe.
// @Tags         site
// @Produce      plain
// @Success      200  {string}  string  "ok"
// @Router       /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
