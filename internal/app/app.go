package app

import (
	"context"
	"fmt"
	"log/slog"
	"pdfstore/internal/cache/redis"
	"pdfstore/internal/config"
	"pdfstore/internal/dbs/postgres"
	cachecatalogrepo "pdfstore/internal/repositories/cache/catalog"
	pdfrepo "pdfstore/internal/repositories/db/pdf"
	userrepo "pdfstore/internal/repositories/db/user"
	filerepo "pdfstore/internal/repositories/storage/file"
	accountservice "pdfstore/internal/services/account"
	catalogservice "pdfstore/internal/services/catalog"
)

type App struct {
	CatalogService CatalogService
	AccountService AccountService
}

func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheCfg config.Cache, fileStorageCfg config.FileStorage) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	userRepo := userrepo.NewRepository(db)

	accountService := accountservice.New(log, userRepo, userRepo)

	pdfRepo := pdfrepo.NewRepository(db)

	catalogCacheRepo := cachecatalogrepo.New(cache, cacheCfg.CatalogTTL)

	fileStorage := filerepo.NewRepository(fileStorageCfg.Path)

	catalogService := catalogservice.New(log, pdfRepo, catalogCacheRepo, fileStorage)

	return &App{
		CatalogService: catalogService,
		AccountService: accountService,
	}, nil
}
