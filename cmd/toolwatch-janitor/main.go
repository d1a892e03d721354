package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/module"
	"toolwatch/internal/platform/config"
	"toolwatch/internal/platform/logger"
	"toolwatch/internal/platform/store"
	"toolwatch/migrations"

	anommod "toolwatch/internal/services/anomalies/module"
	epmod "toolwatch/internal/services/episodes/module"
	evmod "toolwatch/internal/services/events/module"
	janitordom "toolwatch/internal/services/janitor/domain"
	janitormod "toolwatch/internal/services/janitor/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", false),
			URL:        chCfg.MayString("DBURL", ""),
			ClientName: "toolwatch",
			ClientTag:  "janitor",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		maxDur  = flag.Int("max-duration-min", 0, "pairing threshold in minutes (default 720)")
		workers = flag.Int("workers", 0, "concurrency (>=1)")
		reset   = flag.Bool("reset", false, "truncate episodes and anomalies before the run")
		dryRun  = flag.Bool("dry-run", false, "reconcile but do not write")
	)
	flag.Parse()

	// schema is forward-only and idempotent, safe to apply on every run
	if err := st.Migrate(context.Background(), migrations.FS); err != nil {
		l.Fatal().Err(err).Msg("migrate failed")
	}

	// Pass CLI flags into CORE_JANITOR_* so the module can read its own config
	if *maxDur > 0 {
		mustSetEnv("CORE_JANITOR_MAX_DURATION_MIN", strconv.Itoa(*maxDur))
	}
	if *workers > 0 {
		mustSetEnv("CORE_JANITOR_WORKERS", strconv.Itoa(*workers))
	}

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	// Build dependency modules first
	ev := evmod.New(deps)
	ep := epmod.New(deps)
	an := anommod.New(deps)

	// Build the janitor with ports injected from the store-facing modules
	jm := janitormod.New(
		deps,
		janitormod.Options{
			Reset:  *reset,
			DryRun: *dryRun,
		},
		modkit.WithPorts(janitordom.Ports{
			Events:    module.MustPortsOf[evmod.Ports](ev).Reader,
			Episodes:  module.MustPortsOf[epmod.Ports](ep).Writer,
			Anomalies: module.MustPortsOf[anommod.Ports](an).Writer,
		}),
	)

	// Register ports
	module.Register(ev.Name(), ev.Ports())
	module.Register(ep.Name(), ep.Ports())
	module.Register(an.Name(), an.Ports())
	module.Register(jm.Name(), jm.Ports())

	// Kick the runner
	ports := jm.Ports().(janitormod.Ports)
	report, err := ports.Runner.Run(context.Background())
	if err != nil {
		l.Fatal().Err(err).Msg("reconcile failed")
	}

	l.Info().
		Str("run_id", report.RunID).
		Int64("episodes", report.EpisodesWritten).
		Int64("anomalies", report.AnomaliesWritten).
		Int64("users_failed", report.UsersFailed).
		Msg("reconcile finished")
}
