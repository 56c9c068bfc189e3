package app

import (
	"restfulmind/internal/config"
	"restfulmind/internal/db"
	"restfulmind/internal/handlers"
	"restfulmind/internal/repository"
	"restfulmind/internal/routes"
	"restfulmind/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	if err := db.RunMigrations(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)
	articleRepo := repository.NewArticleRepo(conn)
	subscriberRepo := repository.NewSubscriberRepo(conn)
	contentRepo := repository.NewStaticContentRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	contentService := services.NewStaticContentService(contentRepo)
	statsService := services.NewStatsService(articleRepo, subscriberRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	articleHandler := handlers.NewArticleHandler(articleService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	contentHandler := handlers.NewStaticContentHandler(contentService)
	statsHandler := handlers.NewStatsHandler(statsService)
	healthHandler := handlers.NewHealthHandler()

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, userRepo,
		authHandler, categoryHandler, articleHandler,
		subscriberHandler, contentHandler, statsHandler, healthHandler)

	return router, nil
}
