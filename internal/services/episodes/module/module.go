// Package module provides the episodes module
package module

import (
	"net/http"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/modkit/repokit"
	"toolwatch/internal/services/episodes/domain"
	"toolwatch/internal/services/episodes/repo"
	"toolwatch/internal/services/episodes/service"
)

// Ports exposed by the episodes module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new episodes module
func New(deps modkit.Deps) *Module {
	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, deps.CH, deps.Log)

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// Name implements modkit.Module
func (m *Module) Name() string { return "episodes" }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares implements modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
