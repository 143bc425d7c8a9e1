package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"sheep-breeding-web/docs"
	"sheep-breeding-web/internal/adapters/geneapi"
	mem "sheep-breeding-web/internal/adapters/storage/memory"
	pg "sheep-breeding-web/internal/adapters/storage/postgres"
	"sheep-breeding-web/internal/domain/breeding"
	"sheep-breeding-web/internal/domain/sheep"
	"sheep-breeding-web/internal/domain/uistate"
	"sheep-breeding-web/internal/middleware"
	"sheep-breeding-web/internal/platform/logger"
	"sheep-breeding-web/internal/platform/metrics"
	"sheep-breeding-web/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Backend es todo lo que el frontend le pide al servicio de inferencia.
// geneapi.Client lo implementa; los tests pueden pasar un fake.
type Backend interface {
	sheep.Backend
	breeding.Backend
}

type Options struct {
	// Backend explícito (tests). Si es nil se crea un geneapi.Client con BackendURL.
	Backend        Backend
	BackendURL     string
	BackendTimeout time.Duration
	BreakerEnabled bool

	// Opcional: si viene, el estado de UI va a Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger
	Metrics *metrics.Collector
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NewCollector("flock")
	}

	backend := opts.Backend
	if backend == nil {
		c, err := geneapi.NewClient(geneapi.Config{
			BaseURL:        opts.BackendURL,
			Timeout:        opts.BackendTimeout,
			BreakerEnabled: opts.BreakerEnabled,
			Logger:         log,
			Metrics:        m,
		})
		if err != nil {
			return nil, fmt.Errorf("backend client: %w", err)
		}
		backend = c
	}

	views, err := web.NewTemplateSet()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	var uiRepo uistate.Repository
	if opts.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.EnsureSchema(ctx, opts.DB); err != nil {
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		uiRepo = pg.NewUIStateRepo(opts.DB)
	} else {
		uiRepo = mem.NewUIStateRepo()
	}

	// Services por módulo
	sheepSvc := sheep.NewService(backend)
	breedingSvc := breeding.NewService(backend)
	uiSvc := uistate.NewService(uiRepo)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log, m))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Handle("/static/*", web.StaticHandler("/static/"))

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Páginas HTML
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.Session)

		pr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/sheep", http.StatusSeeOther)
		})
		sheep.RegisterRoutes(pr, sheepSvc, uiSvc, views, log)
		breeding.RegisterRoutes(pr, breedingSvc, views, log)
	})

	// API JSON
	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
		ar.Use(middleware.Session)

		sheep.RegisterAPIRoutes(ar, sheepSvc)
		breeding.RegisterAPIRoutes(ar, breedingSvc)
		uistate.RegisterRoutes(ar, uiSvc)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		views.RenderNotFound(w, r, "page not found")
	})

	return r, nil
}
