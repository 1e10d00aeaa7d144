package container

import (
	"context"
	"fmt"
	"time"

	"bookgallery-backend/internal/config"
	"bookgallery-backend/internal/domains/author"
	authorHandler "bookgallery-backend/internal/domains/author/handler"
	authorRepo "bookgallery-backend/internal/domains/author/repository"
	authorService "bookgallery-backend/internal/domains/author/service"
	"bookgallery-backend/internal/domains/book"
	bookHandler "bookgallery-backend/internal/domains/book/handler"
	bookRepo "bookgallery-backend/internal/domains/book/repository"
	bookService "bookgallery-backend/internal/domains/book/service"
	infraCache "bookgallery-backend/internal/infrastructure/cache"
	"bookgallery-backend/internal/infrastructure/database"
	"bookgallery-backend/pkg/cache"
	"bookgallery-backend/pkg/jwt"
	"bookgallery-backend/pkg/logger"
)

// CatalogContainer wires the catalog service: infrastructure, the
// author and book domains, and the token manager guarding them.
// Everything here is a singleton built once at startup.
type CatalogContainer struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo author.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler

	redis *infraCache.RedisCache
}

// NewCatalogContainer builds the dependency graph bottom-up: config,
// then infrastructure, then repositories, services and handlers. A
// failure at any step aborts startup.
func NewCatalogContainer() (*CatalogContainer, error) {
	c := &CatalogContainer{}

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

	c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = c.redis
	logger.Info("connected to redis", map[string]interface{}{"addr": cfg.Redis.Host})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.ExpiryMinutes)

	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure connections in reverse order of
// construction.
func (c *CatalogContainer) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
