package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oakline/storefront/internal/service"
	"github.com/oakline/storefront/pkg/health"
	"github.com/oakline/storefront/pkg/middleware"
)

// RouterConfig carries the non-service dependencies of the router.
type RouterConfig struct {
	CORS   middleware.CORSConfig
	Health *health.Handler
	Logger *slog.Logger
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	catalog *service.CatalogService,
	reviews *service.ReviewService,
	cart *service.CartService,
	users *service.UserService,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	// Health and metrics endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(catalog, cfg.Logger)
	reviewHandler := NewReviewHandler(reviews, cfg.Logger)
	cartHandler := NewCartHandler(cart, cfg.Logger)
	userHandler := NewUserHandler(users, cfg.Logger)
	adminHandler := NewAdminHandler(reviews, catalog, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Get("/featured", productHandler.ListFeaturedProducts)
			r.Get("/{id}", productHandler.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/", cartHandler.AddItem)
			r.Delete("/", cartHandler.ClearCart)
			r.Patch("/{id}", cartHandler.UpdateQuantity)
			r.Delete("/{id}", cartHandler.RemoveItem)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.ListReviews)
			r.Post("/", reviewHandler.CreateReview)
		})

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth(users.VerifyAdmin))

			r.Get("/reviews", adminHandler.ListReviews)
			r.Patch("/reviews/{id}", adminHandler.UpdateReview)
			r.Delete("/reviews/{id}", adminHandler.DeleteReview)
			r.Patch("/products/{id}", adminHandler.UpdateProduct)
		})
	})

	return r
}
