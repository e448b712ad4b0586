// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/orderpulse/internal/api"
	"github.com/tomtom215/orderpulse/internal/config"
	"github.com/tomtom215/orderpulse/internal/dashboard"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/render"
	"github.com/tomtom215/orderpulse/internal/supervisor"
	"github.com/tomtom215/orderpulse/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("backend", cfg.Store.Backend).
		Str("orders_table", cfg.Dashboard.OrdersTable).
		Str("users_table", cfg.Dashboard.UsersTable).
		Int("top_n", cfg.Dashboard.TopN).
		Msg("Configuration loaded")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	regions, err := geo.Load(cfg.Regions.File)
	if err != nil {
		return err
	}
	logging.Info().Int("regions", regions.Len()).Str("file", cfg.Regions.File).Msg("Region table loaded")

	svc := dashboard.NewService(store, regions, dashboard.Config{
		Title:       cfg.Dashboard.Title,
		OrdersTable: cfg.Dashboard.OrdersTable,
		UsersTable:  cfg.Dashboard.UsersTable,
		TopN:        cfg.Dashboard.TopN,
		Backend:     cfg.Store.Backend,
	})

	renderer, err := render.NewHTMLRenderer(render.DefaultPlotlyURL)
	if err != nil {
		return err
	}

	handler := api.NewHandler(svc, renderer, regions, store, cfg.Store.Backend)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	// A page render runs four sequential store queries.
	writeTimeout := 4*cfg.Pinot.Timeout + cfg.Server.Timeout

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}
	tree.AddStoreService(services.NewStoreMonitorService(store, cfg.Store.Backend, cfg.Store.HealthInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
			serveErr = err
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return serveErr
}
