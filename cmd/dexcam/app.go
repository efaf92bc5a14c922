package main

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/dexcam/internal/adapter"
	"github.com/mmcdole/dexcam/internal/adapter/camera"
	"github.com/mmcdole/dexcam/internal/adapter/source"
	"github.com/mmcdole/dexcam/internal/capture"
	"github.com/mmcdole/dexcam/internal/catalog"
	"github.com/mmcdole/dexcam/internal/domain"
	"github.com/mmcdole/dexcam/internal/store"
)

// app holds the wired services shared by every command
type app struct {
	cfg      *adapter.Config
	logger   *slog.Logger
	store    domain.KVStore
	catalog  *catalog.Service
	queries  *catalog.Queries
	captures *capture.Repository
	camera   domain.Camera
}

func newApp(configFile string) (*app, error) {
	cfg, err := adapter.LoadConfigFrom(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)
	logger.Info("starting dexcam", "version", Version)

	kv, err := store.Open(cfg.Storage.Driver, cfg.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  kv,
		catalog: catalog.NewService(client, kv, catalog.Options{
			PageSize:       cfg.API.PageSize,
			MaxConcurrency: cfg.API.MaxConcurrency,
		}, logger),
		queries:  catalog.NewQueries(kv),
		captures: capture.NewRepository(kv, logger),
		camera:   camera.NewFileCamera(cfg.Camera.Permission, cfg.Camera.Source, cfg.Camera.PhotosDir, logger),
	}, nil
}

// newScreen builds a capture screen reporting through notifier and navigator
func (a *app) newScreen(notifier domain.Notifier, navigator domain.Navigator) *capture.Screen {
	return capture.NewScreen(capture.Deps{
		Camera:    a.camera,
		Lookups:   a.catalog,
		Captures:  a.captures,
		Notifier:  notifier,
		Navigator: navigator,
		Platform:  capture.Platform(a.cfg.Camera.Platform),
	}, a.logger)
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close store", "error", err)
	}
	a.logger.Info("shutting down")
}
