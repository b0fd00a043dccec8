// Package pg connects the session daemon to the PostgreSQL database backing
// its saved-session store, for deployments that persist sessions centrally
// instead of on the host machine. It wraps pgxpool with a retrying Connect
// and a Healthcheck probe; the session package creates its own schema, so no
// migration tooling is involved.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // no store backend, terminate
//	}
//	defer pool.Close()
//
//	store, err := session.NewPGStore(ctx, pool)
package pg
