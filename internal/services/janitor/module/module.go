// Package module implements the janitor module
package module

import (
	"net/http"
	"time"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/janitor/domain"
	"toolwatch/internal/services/janitor/repo"
	"toolwatch/internal/services/janitor/service"
)

// Ports exposed by the janitor module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new janitor module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("janitor"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("janitor module: expected WithPorts(janitor/domain.Ports)")
	}
	if ports.Events == nil || ports.Episodes == nil || ports.Anomalies == nil {
		panic("janitor module: Ports missing Events, Episodes, or Anomalies")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.MaxDurationMinutes != 0 {
		cfg.MaxDurationMinutes = overrides.MaxDurationMinutes
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.UserPageSize != 0 {
		cfg.UserPageSize = overrides.UserPageSize
	}
	if overrides.EventPageSize != 0 {
		cfg.EventPageSize = overrides.EventPageSize
	}
	if overrides.BatchSize != 0 {
		cfg.BatchSize = overrides.BatchSize
	}
	if overrides.Retries != 0 {
		cfg.Retries = overrides.Retries
	}
	// bool overrides win (default false if caller didn't set)
	cfg.Reset = cfg.Reset || overrides.Reset
	cfg.DryRun = cfg.DryRun || overrides.DryRun

	runner := service.New(
		ports,
		repokit.TxRunner(deps.PG),
		repo.NewPG(),
		deps.Log,
		service.Config{
			MaxDuration:   time.Duration(cfg.MaxDurationMinutes) * time.Minute,
			Workers:       cfg.Workers,
			UserPageSize:  cfg.UserPageSize,
			EventPageSize: cfg.EventPageSize,
			BatchSize:     cfg.BatchSize,
			Retries:       cfg.Retries,
			Reset:         cfg.Reset,
			DryRun:        cfg.DryRun,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "janitor" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
