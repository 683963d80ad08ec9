// Package api provides the HTTP API for the application
package api

import (
	"liveboard/internal/platform/config"
	"liveboard/internal/platform/logger"
	phttp "liveboard/internal/platform/net/http"
	"liveboard/internal/platform/store"

	"liveboard/internal/modkit"
	"liveboard/internal/modkit/httpkit"
	"liveboard/internal/modkit/module"

	liveboardmod "liveboard/internal/services/liveboard/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		liveboardmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under the versioned router
			m.MountRoutes(api)
		}
	})
}
