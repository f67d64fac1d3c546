package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-service/config"
	appuser "github.com/oksasatya/go-ddd-user-service/internal/application"
	"github.com/oksasatya/go-ddd-user-service/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-service/internal/infrastructure/storage"
	"github.com/oksasatya/go-ddd-user-service/pkg/helpers"
)

func main() {
	name := flag.String("name", "demoUser", "name of the seeded user")
	email := flag.String("email", "demo@example.com", "email of the seeded user")
	age := flag.Uint("age", 30, "age of the seeded user (0-255)")
	flag.Parse()

	if *age > 255 {
		log.Fatalf("age %d out of range", *age)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open storage")
	}
	defer func() { _ = repos.Close() }()

	svc := appuser.NewService(repos.Users)
	u, err := svc.CreateUser(ctx, entity.CreateUser{Name: *name, Email: *email, Age: uint8(*age)})
	switch {
	case errors.Is(err, entity.ErrUserAlreadyExists):
		helpers.LogInfo(logger, "user already seeded", logrus.Fields{"email": *email})
	case err != nil:
		logger.WithError(err).Fatal("failed to seed user")
	default:
		helpers.LogInfo(logger, "seeded user", logrus.Fields{"id": u.ID, "email": u.Email, "name": u.Name, "age": u.Age})
	}
}
