// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package supervisor runs the dashboard's long-lived components under a suture
v4 supervisor tree.

The tree has two layers:

	orderpulse (root)
	├── store-layer   store health monitor
	└── api-layer     HTTP server

A crash in one layer is restarted within that layer with suture's failure
backoff, without stopping the other. Supervisor events are logged through
sutureslog using the slog bridge from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.AddStoreService(services.NewStoreMonitorService(exec, "pinot", 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
