// Package api provides the HTTP API for the application
package api

import (
	"toolwatch/internal/platform/config"
	"toolwatch/internal/platform/logger"
	phttp "toolwatch/internal/platform/net/http"
	"toolwatch/internal/platform/store"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/httpkit"
	"toolwatch/internal/modkit/module"
	"toolwatch/internal/modkit/swaggerkit"

	apianomalies "toolwatch/internal/services/api/anomalies/module"
	metamod "toolwatch/internal/services/api/meta/module"
	statsmod "toolwatch/internal/services/api/stats/module"

	// Worker modules (own the Query ports)
	workeranomalies "toolwatch/internal/services/anomalies/module"
	workerepisodes "toolwatch/internal/services/episodes/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the WORKER modules first and extract their Query ports
	workerAnomalies := workeranomalies.New(deps)
	query := module.MustPortsOf[workeranomalies.Ports](workerAnomalies).Query

	workerEpisodes := workerepisodes.New(deps)
	episodes := module.MustPortsOf[workerepisodes.Ports](workerEpisodes).Query

	// Inject those Query ports into the API modules that read them
	apiAnomalies := apianomalies.New(
		deps,
		modkit.WithPorts(apianomalies.Ports{
			Query: query,
		}),
	)

	apiStats := statsmod.New(
		deps,
		modkit.WithPorts(statsmod.Ports{
			Episodes: episodes,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		workerAnomalies, // include workers so their ports are registered
		workerEpisodes,
		apiStats,     // API module that reads the episodes Query port
		apiAnomalies, // API module that depends on the worker's Query port
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
