package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"goloja/internal/api/product"
	"goloja/internal/api/response"
	"goloja/internal/api/user"
	"goloja/internal/pkg/logger"
	"goloja/internal/pkg/middleware"

	// Registra a especificação OpenAPI servida em /swagger/doc.json
	_ "goloja/docs"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(productHandler *product.Handler, userHandler *user.Handler, tokens middleware.TokenValidator, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics)

	auth := middleware.NewAuthMiddleware(tokens, log)

	// --- 2. Rotas utilitárias ---
	r.Get("/", WelcomeHandler(log))
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/v1", func(r chi.Router) {
		// --- 3. Autenticação ---
		r.Post("/user/token", userHandler.LoginHandler)
		r.Get("/user/token", userHandler.TokenProbeHandler)

		// --- 4. Produtos: leitura pública, escrita autenticada ---
		r.Route("/produtos", func(r chi.Router) {
			r.Get("/search", productHandler.SearchProductsHandler)
			r.Get("/{id}", productHandler.GetProductByIDHandler)

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", productHandler.CreateProductHandler)
				r.Put("/{id}", productHandler.UpdateProductHandler)
				r.Delete("/{id}", productHandler.DeleteProductHandler)
			})
		})

		// --- 5. Usuários: leitura pública, escrita autenticada ---
		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/{id}", userHandler.GetUserHandler)

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", userHandler.CreateUserHandler)
				r.Put("/{id}", userHandler.UpdateUserHandler)
				r.Delete("/{id}", userHandler.DeleteUserHandler)
			})
		})
	})

	return r
}

// WelcomeHandler responde a raiz da API.
func WelcomeHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, log, http.StatusOK, map[string]string{"message": "Bem-vindo"})
	}
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
