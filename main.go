package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"vaani_web/internal/api"
	"vaani_web/internal/corpus"
	"vaani_web/internal/logging"
	"vaani_web/internal/metrics"
	"vaani_web/internal/models"
	"vaani_web/internal/repository"
	"vaani_web/internal/service"
	"vaani_web/internal/session"
	"vaani_web/internal/storage"
	"vaani_web/internal/uploader"
	"vaani_web/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	logger := logging.NewJSONLogger()

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	// Staging directory for recordings awaiting upload.
	if err := os.MkdirAll(cfg.Recording.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create recording dir: %v", err)
	}

	prompts, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		// The service stays up; /index surfaces the unavailable corpus.
		logger.Error(ctx, "failed to load corpus", "path", cfg.Corpus.Path, "error", err)
		prompts = nil
	} else {
		logger.Info(ctx, "corpus loaded", "path", cfg.Corpus.Path, "prompts", prompts.Size())
	}

	up, err := uploader.NewS3Uploader(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage uploader: %v", err)
	}

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, up, cfg.Recording.Dir,
		service.PasswordPolicy{Enforce: cfg.PasswordPolicy.Enforce}, logger, m)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Name)

	r := gin.Default()
	api.SetupRoutes(r, services, sessions, prompts)

	logger.Info(ctx, "starting server", "address", cfg.Server.Address)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
