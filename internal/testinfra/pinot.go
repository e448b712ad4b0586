// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/orderpulse/internal/config"
)

const (
	// DefaultPinotImage is the official Apache Pinot image.
	DefaultPinotImage = "apachepinot/pinot:1.2.0"

	// PinotBrokerPort is the broker port used by QuickStart.
	PinotBrokerPort = "8000"

	// PinotControllerPort is the controller port used by QuickStart.
	PinotControllerPort = "9000"
)

// PinotContainer is a running single-container Pinot QuickStart cluster.
type PinotContainer struct {
	testcontainers.Container
	Host       string
	BrokerPort int
}

// PinotOption configures the Pinot container.
type PinotOption func(*pinotConfig)

type pinotConfig struct {
	image          string
	quickstartType string
	startTimeout   time.Duration
}

// WithPinotImage sets a custom Pinot image.
func WithPinotImage(image string) PinotOption {
	return func(c *pinotConfig) {
		c.image = image
	}
}

// WithQuickStartType selects the QuickStart dataset ("batch", "hybrid", ...).
func WithQuickStartType(kind string) PinotOption {
	return func(c *pinotConfig) {
		c.quickstartType = kind
	}
}

// WithStartTimeout sets how long to wait for the broker.
func WithStartTimeout(timeout time.Duration) PinotOption {
	return func(c *pinotConfig) {
		c.startTimeout = timeout
	}
}

// NewPinotContainer starts Pinot QuickStart and waits for the broker.
func NewPinotContainer(ctx context.Context, opts ...PinotOption) (*PinotContainer, error) {
	cfg := &pinotConfig{
		image:          DefaultPinotImage,
		quickstartType: "batch",
		startTimeout:   3 * time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		Cmd:          []string{"QuickStart", "-type", cfg.quickstartType},
		ExposedPorts: []string{PinotBrokerPort + "/tcp", PinotControllerPort + "/tcp"},
		Env: map[string]string{
			"JAVA_OPTS": "-Xms512M -Xmx2G",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(PinotBrokerPort+"/tcp"),
			wait.ForHTTP("/health").WithPort(PinotBrokerPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create pinot container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, PinotBrokerPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}
	brokerPort, err := strconv.Atoi(port.Port())
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("parse mapped port %q: %w", port.Port(), err)
	}

	return &PinotContainer{
		Container:  container,
		Host:       host,
		BrokerPort: brokerPort,
	}, nil
}

// Config returns broker settings pointing at the container.
func (c *PinotContainer) Config() *config.PinotConfig {
	return &config.PinotConfig{
		Scheme:  "http",
		Host:    c.Host,
		Port:    c.BrokerPort,
		Path:    "/query/sql",
		Timeout: 30 * time.Second,
	}
}

// Logs returns the container logs for debugging.
func (c *PinotContainer) Logs(ctx context.Context) (string, error) {
	reader, err := c.Container.Logs(ctx)
	if err != nil {
		return "", fmt.Errorf("get logs: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read logs: %w", err)
	}
	return string(data), nil
}
