package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/padauklog/internal/config"
	"github.com/padauklog/internal/db"
	"github.com/padauklog/internal/handler"
	"github.com/padauklog/internal/router"
	"github.com/padauklog/internal/storage"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := db.EnsureUser(gdb, cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	} else {
		log.Println("redis not configured, view counting runs without dedup")
	}

	var store *storage.Client
	if cfg.S3Enabled() {
		store, err = storage.NewClient(cfg)
		if err != nil {
			log.Fatalf("failed to set up object storage: %v", err)
		}
	} else {
		log.Printf("object storage not configured, uploads go to %s", cfg.UploadDir)
	}

	api := handler.NewAPI(gdb, rdb, store, cfg)
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
