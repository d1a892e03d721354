// Package module provides the events module
package module

import (
	"net/http"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/events/domain"
	"toolwatch/internal/services/events/repo"
	"toolwatch/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new events module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Reader: svc, Writer: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "events" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
