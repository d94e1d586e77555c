package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/auth"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/middleware"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/order"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/product"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/user"
)

// RouterConfig bundles the dependencies every route group needs.
type RouterConfig struct {
	Orders           *order.Service
	Users            user.Repository
	Products         product.Repository
	Tokens           *auth.TokenIssuer
	UploadDir        string
	Logger           *logrus.Logger
	CORSAllowOrigins []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSAllowOrigins))

	protect := middleware.Protect(cfg.Tokens, cfg.Users)

	authHandler := NewAuthHandler(cfg.Users, cfg.Tokens)
	productHandler := NewProductHandler(cfg.Products)
	orderHandler := NewOrderHandler(cfg.Orders)
	uploadHandler := NewUploadHandler(cfg.UploadDir)

	r.Get("/api/health", healthHandler)

	r.Post("/api/auth/login", authHandler.Login)
	r.With(protect).Get("/api/users/profile", authHandler.Profile)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/{id}", productHandler.GetByID)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(protect)
		r.Post("/", orderHandler.AddOrder)
		r.Get("/myorders", orderHandler.GetMyOrders)
		r.Get("/{id}", orderHandler.GetOrderByID)
	})

	r.With(protect).Post("/api/upload", uploadHandler.Upload)

	// Serve stored images under the URLs the upload handler hands out.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
