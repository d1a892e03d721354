// Package module provides the anomalies module
package module

import (
	"net/http"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/anomalies/domain"
	"toolwatch/internal/services/anomalies/repo"
	"toolwatch/internal/services/anomalies/service"
)

// Ports exposed by the anomalies module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new anomalies module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "anomalies" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
