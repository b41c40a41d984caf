package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jaswdr/faker"
	"github.com/rs/zerolog/log"

	"github.com/Artexxx/HR-Employees/internal/config"
	"github.com/Artexxx/HR-Employees/internal/reference"
	"github.com/Artexxx/HR-Employees/internal/repository/employees"
	"github.com/Artexxx/HR-Employees/internal/repository/kvstore"
	"github.com/Artexxx/HR-Employees/internal/seed"
	"github.com/Artexxx/HR-Employees/library/pg"
)

// app — общие зависимости команд serve и list.
type app struct {
	cfg       *config.Config
	ref       *reference.Tables
	employees *employees.Repository

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg}

	ref, err := reference.Load()
	if err != nil {
		return nil, fmt.Errorf("reference.Load: %w", err)
	}
	a.ref = ref

	// В демо-режиме коллекция заполняется сгенерированными записями
	// и в хранилище не пишется.
	if cfg.App.UseMockData.Get() {
		a.employees = employees.NewRepository(nil, log.Logger)

		gen := seed.NewGenerator(faker.New(), ref, time.Now)
		a.employees.Seed(gen.Employees(cfg.MockRecords()))

		log.Info().Int("records", a.employees.Count()).Msg("mock data enabled, storage is not used")
		return a, nil
	}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	// memory: store == nil, коллекция только в памяти
	a.employees = employees.NewRepository(store, log.Logger)
	a.employees.Load(ctx)

	log.Info().
		Str("driver", cfg.StorageDriver()).
		Int("records", a.employees.Count()).
		Msg("employees loaded")

	return a, nil
}

func (a *app) openStore(ctx context.Context) (kvstore.Store, error) {
	path := a.cfg.Storage.Path.Get()
	if path == "" {
		path = "data"
	}

	switch driver := a.cfg.StorageDriver(); driver {
	case "memory":
		return nil, nil

	case "file":
		store, err := kvstore.NewFileStore(path)
		if err != nil {
			return nil, fmt.Errorf("kvstore.NewFileStore: %w", err)
		}
		return store, nil

	case "sqlite":
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll: %w", err)
		}
		store, err := kvstore.NewSQLiteStore(ctx, filepath.Join(path, "hr.db"))
		if err != nil {
			return nil, fmt.Errorf("kvstore.NewSQLiteStore: %w", err)
		}
		a.closers = append(a.closers, func() { _ = store.Close() })
		return store, nil

	case "postgres":
		pgClient, err := pg.NewPG(ctx, a.cfg.Storage.Postgres, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("pg.NewPG: %w", err)
		}
		a.closers = append(a.closers, pgClient.Close)

		store, err := kvstore.NewPostgresStore(ctx, pgClient.Pool())
		if err != nil {
			return nil, fmt.Errorf("kvstore.NewPostgresStore: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
