// Package module wires the liveboard service using modkit
package module

import (
	"net/http"

	"liveboard/internal/adapters/irail"
	modkit "liveboard/internal/modkit"
	"liveboard/internal/modkit/httpkit"
	"liveboard/internal/modkit/repokit"
	lbhttp "liveboard/internal/services/liveboard/http"
	lbrepo "liveboard/internal/services/liveboard/repo"
	lbsvc "liveboard/internal/services/liveboard/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	name string

	mws       []func(http.Handler) http.Handler
	ports     any
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *lbsvc.Svc
}

// New constructs a liveboard module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("liveboard")}, opts...)...)
	o := FromConfig(deps.Cfg)

	feed := irail.NewClient(irail.Options{
		BaseURL: o.BaseURL,
		Timeout: o.Timeout,
	})
	binder := lbrepo.NewPG()
	svc := lbsvc.New(repokit.TxRunner(deps.PG), binder, feed, lbsvc.Config{
		Station:  o.Station,
		Interval: o.Interval,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{
		Board:  svc,
		Runner: svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		lbhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface.
// The endpoint lives at the router root (/liveboard), so routes are grouped
// rather than nested under a prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
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
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return "" }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
