package main

import (
	"log"

	"github.com/joho/godotenv"

	"userhub_backend/internal/app/router"
	"userhub_backend/internal/feature/users/adapters"
	userhandler "userhub_backend/internal/feature/users/transport/handler"
	"userhub_backend/internal/feature/users/usecase"
	"userhub_backend/internal/platform/config"
	infradb "userhub_backend/internal/platform/db"
)

func main() {
	// .env is optional; deployments usually set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using process environment")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseURL)

	// Repository
	userRepo := adapters.NewUserRepository(db)

	// Usecase
	userUC := usecase.NewUserUsecase(userRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	// Router, with the CORS allow-list taken from config
	r := router.NewRouter(userH, cfg.AllowedOrigins)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
