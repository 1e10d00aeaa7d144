package container

import (
	"context"
	"fmt"
	"time"

	"bookgallery-backend/internal/config"
	"bookgallery-backend/internal/domains/user"
	userHandler "bookgallery-backend/internal/domains/user/handler"
	userRepo "bookgallery-backend/internal/domains/user/repository"
	userService "bookgallery-backend/internal/domains/user/service"
	"bookgallery-backend/internal/infrastructure/database"
	"bookgallery-backend/pkg/jwt"
	"bookgallery-backend/pkg/logger"
	"bookgallery-backend/pkg/password"
)

// UserContainer wires the user service: registration, login and
// profile retrieval. It does not carry a cache; user rows hold
// credential material and are read straight from postgres.
type UserContainer struct {
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager
	Hasher     password.Hasher

	UserRepo user.Repository

	UserService user.Service

	AuthHandler *userHandler.AuthHandler
	UserHandler *userHandler.UserHandler
}

// NewUserContainer builds the dependency graph bottom-up. A failure at
// any step aborts startup.
func NewUserContainer() (*UserContainer, error) {
	c := &UserContainer{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.DatabasePoolConfig())
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	logger.Info("connected to postgres", map[string]interface{}{"database": cfg.Database.Database})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ExpiryMinutes)
	c.Hasher = password.NewBcryptHasher(cfg.Password.BcryptCost)

	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	c.UserService = userService.NewUserService(c.UserRepo, c.Hasher, c.JWTManager)

	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	return c, nil
}

// Cleanup releases infrastructure connections.
func (c *UserContainer) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
