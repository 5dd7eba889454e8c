package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promorang/sampling-service/internal/app/background"
	"github.com/promorang/sampling-service/internal/app/setup"
	"github.com/promorang/sampling-service/internal/config"
	"github.com/promorang/sampling-service/internal/delivery/httpapi"
	"github.com/promorang/sampling-service/internal/infrastructure/migrate"
	"github.com/promorang/sampling-service/internal/infrastructure/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.SamplingDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.SamplingDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	deps, err := setup.Build(cfg, db)
	if err != nil {
		log.Fatalf("failed to build dependencies: %v", err)
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "data": gin.H{"status": "ok"}})
	})

	handler := httpapi.NewSamplingHandler(deps.SamplingUC)
	handler.RegisterRoutes(r)

	// Sweep activations whose sampling window ended without traffic.
	tasks := background.NewBackgroundTasks(deps.SamplingUC)
	tasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("sampling service started on %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
