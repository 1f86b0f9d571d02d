package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/config"
	dbpkg "github.com/yrfilms/studio-backend/internal/db"
	"github.com/yrfilms/studio-backend/internal/middleware"
	"github.com/yrfilms/studio-backend/internal/routes"
	"github.com/yrfilms/studio-backend/internal/storage"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	if err := dbpkg.EnsureAdmin(db, cfg); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	uploader := storage.NewS3Uploader(cfg)
	responseCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, 5*time.Minute)

	r := gin.Default()
	r.MaxMultipartMemory = storage.MaxUploadSize

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	routes.RegisterRoutes(r, db, cfg, uploader, responseCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
