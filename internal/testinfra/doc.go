// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package testinfra provides container-backed fixtures for integration tests.
//
// It uses testcontainers-go to start an Apache Pinot QuickStart cluster so the
// broker client and dashboard queries run against a real broker:
//
//	func TestPinotQuery(t *testing.T) {
//	    ctx := context.Background()
//	    p, err := testinfra.NewPinotContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, p.Container)
//
//	    client := pinot.NewClient(p.Config())
//	    rs, err := client.Query(ctx, "SELECT COUNT(*) FROM baseballStats")
//	    // ...
//	}
//
// Everything except this file is behind the integration build tag:
//
//	go test -tags integration ./internal/testinfra/...
//
// Tests skip when Docker is not available. The first run downloads the Pinot
// image, which is large.
package testinfra
