package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Matt444/GameStore--backend/internal/config"
	"github.com/Matt444/GameStore--backend/internal/database"
	"github.com/Matt444/GameStore--backend/internal/handler"
	"github.com/Matt444/GameStore--backend/internal/middleware"
	"github.com/Matt444/GameStore--backend/internal/queue"
	"github.com/Matt444/GameStore--backend/internal/repository"
	"github.com/Matt444/GameStore--backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	inventory := repository.NewInventoryRepo(db)
	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, repository.NewUserRepo(db)),
		Categories: handler.NewCategoryHandler(repository.NewCategoryRepo(db)),
		Platforms:  handler.NewPlatformHandler(repository.NewPlatformRepo(db)),
		Games:      handler.NewGameHandler(repository.NewGameRepo(db)),
		Keys:       handler.NewKeyHandler(repository.NewKeyRepo(db)),
		Users:      handler.NewUserHandler(cfg, repository.NewUserRepo(db)),
		Orders:     handler.NewOrderHandler(repository.NewOrderRepo(db, inventory)),
	}

	e := echo.New()
	e.HideBanner = true

	// Redis backs both the rate limiter and the response cache; when it
	// is unreachable both middlewares degrade to pass-throughs.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterPublic(e, h, cache)
	router.RegisterAdmin(e, h, cfg.JWTSecret)
	router.RegisterUser(e, h, cfg.JWTSecret)

	// Background consumer logging committed orders; reconnects on its own.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
