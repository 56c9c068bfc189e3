package main

import (
	"context"

	"restfulmind/internal/config"
	"restfulmind/internal/db"
	"restfulmind/internal/logger"
	"restfulmind/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("Ошибка загрузки конфига", zap.Error(err))
	}

	if err := db.RunMigrations(cfg); err != nil {
		logger.Log.Fatal("Ошибка миграций", zap.Error(err))
	}

	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.Fatal("Ошибка подключения к БД", zap.Error(err))
	}
	defer pool.Close()

	if err := seed.Run(context.Background(), pool); err != nil {
		logger.Log.Fatal("Ошибка наполнения базы", zap.Error(err))
	}

	logger.Log.Info("База наполнена стартовыми данными",
		zap.String("admin", "admin@restfulmind.com"))
}
