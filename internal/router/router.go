package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "shelter-records/docs"
	"shelter-records/internal/adapters/storage/sqlstore"
	"shelter-records/internal/domain/admin"
	"shelter-records/internal/domain/adoptions"
	"shelter-records/internal/domain/animals"
	"shelter-records/internal/domain/donations"
	"shelter-records/internal/domain/donors"
	"shelter-records/internal/domain/medical"
	"shelter-records/internal/domain/users"
	"shelter-records/internal/domain/volunteers"
	"shelter-records/internal/middleware"
	"shelter-records/internal/platform/logger"
	"shelter-records/internal/platform/metrics"
	"shelter-records/internal/platform/respond"
	"shelter-records/internal/ports/auth"
)

type Options struct {
	// DB es obligatorio; cmd decide Postgres o SQLite.
	DB *sqlstore.DB

	Logger logger.Logger // nil = Nop

	// Metrics y Gatherer van juntos; si Gatherer es nil no se expone /metrics.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	// AdminVerifier puede ser nil: login de admin siempre 401.
	AdminVerifier auth.OperatorVerifier

	// BcryptCost <= 0 usa el default de bcrypt.
	BcryptCost int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	r.NotFound(respond.NotFound)
	r.MethodNotAllowed(respond.MethodNotAllowed)

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.RequestLog(opts.Metrics))
	r.Use(middleware.Recover)
	r.Use(middleware.CORS)

	r.Get("/health", healthHandler(opts.DB))

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	db := opts.DB

	// Repos
	animalRepo := sqlstore.NewAnimalsRepo(db)
	medicalRepo := sqlstore.NewMedicalRepo(db)
	adoptionRepo := sqlstore.NewAdoptionsRepo(db)
	donorRepo := sqlstore.NewDonorsRepo(db)
	donationRepo := sqlstore.NewDonationsRepo(db)
	volunteerRepo := sqlstore.NewVolunteersRepo(db)
	userRepo := sqlstore.NewUsersRepo(db)

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo, db)
	medicalSvc := medical.NewService(medicalRepo, animalRepo, db)
	adoptionsSvc := adoptions.NewService(adoptionRepo, animalRepo, db)
	donorsSvc := donors.NewService(donorRepo, db, opts.Metrics)
	donationsSvc := donations.NewService(donationRepo, donorRepo, db, opts.Metrics)
	volunteersSvc := volunteers.NewService(volunteerRepo, db)
	usersSvc := users.NewService(userRepo, db, opts.BcryptCost, opts.Metrics)
	adminSvc := admin.NewService(opts.AdminVerifier)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		animals.RegisterRoutes(api, animalsSvc)
		medical.RegisterRoutes(api, medicalSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		donors.RegisterRoutes(api, donorsSvc)
		donations.RegisterRoutes(api, donationsSvc)
		volunteers.RegisterRoutes(api, volunteersSvc)
		users.RegisterRoutes(api, usersSvc)
		admin.RegisterRoutes(api, adminSvc)
	})

	return r
}

// healthHandler responde "ok" si la base contesta el ping.
func healthHandler(db *sqlstore.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(r.Context(), nil).Error("health check failed", map[string]any{"error": err})
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
