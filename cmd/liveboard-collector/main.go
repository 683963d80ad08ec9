package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"liveboard/internal/modkit"
	"liveboard/internal/modkit/module"
	"liveboard/internal/modkit/repokit"
	"liveboard/internal/platform/config"
	"liveboard/internal/platform/logger"
	"liveboard/internal/platform/store"
	"liveboard/internal/platform/store/schema"

	liveboardmod "liveboard/internal/services/liveboard/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	dbURL := pgCfg.MustString("DBURL")
	if pgCfg.MayBool("MIGRATE", false) {
		if err := schema.Migrate(dbURL); err != nil {
			l.Panic().Err(err).Msg("schema migrate failed")
		}
	}

	st, err := store.Open(context.Background(), store.Config{
		AppName: "liveboard-collector",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbURL,
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repokit.MustGuard(ctx, st)

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	mod := liveboardmod.New(deps)
	module.Register(mod.Name(), mod.Ports())

	ports := module.MustPortsOf[liveboardmod.Ports](mod)
	if err := ports.Runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		l.Fatal().Err(err).Msg("liveboard collector failed")
	}
	l.Info().Msg("liveboard collector stopped")
}
