// Package module wires the anomalies API using modkit
package module

import (
	"net/http"

	modkit "toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	str "toolwatch/internal/platform/strings"
	ahttp "toolwatch/internal/services/api/anomalies/http"
	asvc "toolwatch/internal/services/api/anomalies/service"
	anomdom "toolwatch/internal/services/anomalies/domain"
)

// Ports declares the required injected worker port for this API module
type Ports struct {
	Query anomdom.QueryPort
}

// Module implements the anomalies API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc asvc.Service
}

// New constructs the anomalies API module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("anomalies"), modkit.WithPrefix("/anomalies")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("anomalies api module: expected WithPorts(api/anomalies/module.Ports)")
	}
	if ports.Query == nil {
		panic("anomalies api module: Ports missing Query")
	}

	svc := asvc.New(ports.Query)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAnomalyPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ahttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
