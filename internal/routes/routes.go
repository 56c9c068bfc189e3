package routes

import (
	"github.com/gorilla/mux"

	"restfulmind/internal/config"
	"restfulmind/internal/handlers"
	"restfulmind/internal/middleware"
	"restfulmind/internal/repository"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	userRepo repository.UserRepo,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	articleHandler *handlers.ArticleHandler,
	subscriberHandler *handlers.SubscriberHandler,
	contentHandler *handlers.StaticContentHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories/{slug}", categoryHandler.GetBySlug).Methods("GET")

	api.HandleFunc("/articles", articleHandler.ListPublished).Methods("GET")
	api.HandleFunc("/articles/weekly-updates", articleHandler.WeeklyUpdates).Methods("GET")

	api.HandleFunc("/subscribers", subscriberHandler.Subscribe).Methods("POST")

	api.HandleFunc("/content/{type}", contentHandler.GetPage).Methods("GET")

	api.HandleFunc("/health", healthHandler.Health).Methods("GET")
	api.HandleFunc("/", healthHandler.Root).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(cfg, userRepo))

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))

	admin.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/articles/all", articleHandler.ListAll).Methods("GET")
	admin.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	admin.HandleFunc("/articles/{id}", articleHandler.Update).Methods("PUT")
	admin.HandleFunc("/articles/{id}", articleHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/subscribers/stats", subscriberHandler.Stats).Methods("GET")
	admin.HandleFunc("/subscribers", subscriberHandler.List).Methods("GET")
	admin.HandleFunc("/subscribers/{id}", subscriberHandler.Unsubscribe).Methods("DELETE")

	admin.HandleFunc("/content/{type}", contentHandler.UpsertPage).Methods("PUT")

	admin.HandleFunc("/stats/dashboard", statsHandler.Dashboard).Methods("GET")

	// Регистрируется после защищённой группы, иначе {slug} перехватит
	// /articles/all.
	api.HandleFunc("/articles/{slug}", articleHandler.GetBySlug).Methods("GET")
}
