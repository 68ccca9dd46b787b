package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/config"
	adminModel "portfolio-backend/internal/domains/admin/model"
	adminRepo "portfolio-backend/internal/domains/admin/repository"
	adminService "portfolio-backend/internal/domains/admin/service"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/pkg/container"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

// seed-admin tạo (hoặc đặt lại mật khẩu cho) admin operator từ
// ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	req := adminModel.SeedRequest{
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		Name:     os.Getenv("ADMIN_NAME"),
	}
	if err := req.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid admin input")
	}

	if err := run(cfg, req); err != nil {
		log.Fatal().Err(err).Msg("Seed admin failed")
	}
}

func run(cfg *config.Config, req adminModel.SeedRequest) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	if err := container.RunMigrations(ctx, db); err != nil {
		return err
	}

	svc := adminService.NewService(
		adminRepo.NewPostgresRepository(db.Pool),
		jwt.NewManager(cfg.JWT.Secret, cfg.AccessTokenTTL()),
	)
	u, err := svc.EnsureAdmin(ctx, req)
	if err != nil {
		return err
	}

	logger.Info("Admin user ready", map[string]interface{}{
		"id":    u.ID.String(),
		"email": u.Email,
	})
	return nil
}
