// Package module implements the ingest module
package module

import (
	"net/http"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	evdom "toolwatch/internal/services/events/domain"
	"toolwatch/internal/services/ingest/domain"
	"toolwatch/internal/services/ingest/service"
)

// Ports exposed by the ingest module
type Ports struct {
	Runner domain.RunnerPort
}

// ModPorts are dependencies injected into the ingest module
type ModPorts struct {
	Events evdom.WriterPort // required
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new ingest module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ingest"),
	}, opts...)...)

	ports, ok := b.Ports.(ModPorts)
	if !ok {
		panic("ingest module: expected WithPorts(ingest/module.ModPorts)")
	}
	if ports.Events == nil {
		panic("ingest module: ModPorts missing Events writer")
	}

	cfg := FromConfig(deps.Cfg)
	runner := service.New(ports.Events, deps.Log, service.Config{
		BatchSize: cfg.BatchSize,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "ingest" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
