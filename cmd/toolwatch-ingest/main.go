package main

import (
	"context"
	"flag"
	"log"

	"toolwatch/internal/modkit"
	"toolwatch/internal/modkit/module"
	"toolwatch/internal/platform/config"
	"toolwatch/internal/platform/logger"
	"toolwatch/internal/platform/store"
	"toolwatch/migrations"

	evmod "toolwatch/internal/services/events/module"
	ingestmod "toolwatch/internal/services/ingest/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	var file = flag.String("file", "", "CSV export to load (required)")
	flag.Parse()
	if *file == "" {
		log.Fatal("-file is required")
	}

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
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

	if err := st.Migrate(context.Background(), migrations.FS); err != nil {
		l.Fatal().Err(err).Msg("migrate failed")
	}

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	ev := evmod.New(deps)
	im := ingestmod.New(
		deps,
		modkit.WithPorts(ingestmod.ModPorts{
			Events: module.MustPortsOf[evmod.Ports](ev).Writer,
		}),
	)

	module.Register(ev.Name(), ev.Ports())
	module.Register(im.Name(), im.Ports())

	ports := im.Ports().(ingestmod.Ports)
	report, err := ports.Runner.RunFile(context.Background(), *file)
	if err != nil {
		l.Fatal().Err(err).Msg("csv load failed")
	}

	l.Info().
		Str("batch_id", report.BatchID).
		Int64("rows", report.RowsRead).
		Int64("inserted", report.RowsInserted).
		Msg("load finished")
}
