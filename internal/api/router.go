package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pbrandao-dev/bookshelf-api/internal/api/handlers"
	"github.com/pbrandao-dev/bookshelf-api/internal/auth"
	"github.com/pbrandao-dev/bookshelf-api/internal/services"
)

// NewRouter creates and configures a new Chi router. Registration and
// login stay open; every book route and the profile endpoint sit behind
// the bearer-token middleware.
func NewRouter(
	tokens *auth.JWTManager,
	bookService services.BookServiceProvider,
	userService services.UserServiceProvider,
	corsOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(userService, tokens)
	bookHandler := handlers.NewBookHandler(bookService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(tokens.Middleware).Get("/me", authHandler.Me)
		})

		r.Route("/books", func(r chi.Router) {
			r.Use(tokens.Middleware)

			r.Get("/", bookHandler.List)
			r.Post("/", bookHandler.Create)
			r.Get("/genres", bookHandler.Genres)
			r.Get("/search/advanced", bookHandler.AdvancedSearch)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", bookHandler.Get)
				r.Put("/", bookHandler.Update)
				r.Delete("/", bookHandler.Delete)
			})
		})
	})

	return r
}
