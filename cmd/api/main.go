package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/avantivendas/visitas-api/internal/auth"
	"github.com/avantivendas/visitas-api/internal/config"
	dbpkg "github.com/avantivendas/visitas-api/internal/db"
	"github.com/avantivendas/visitas-api/internal/middleware"
	"github.com/avantivendas/visitas-api/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("redis unavailable, running without cache: %v", err)
			rdb = nil
		}
	}

	if cfg.AuthMode == config.AuthModeDB {
		if err := auth.NewGormStore(db).SeedIfEmpty(context.Background()); err != nil {
			log.Fatalf("failed to seed usuarios: %v", err)
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
