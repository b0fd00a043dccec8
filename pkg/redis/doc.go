// Package redis connects the session daemon to the Redis instance backing its
// saved-session store. It wraps the go-redis client with a retrying Connect
// and a Healthcheck probe; configuration comes from the environment via the
// Config struct.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // no store backend, terminate
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client)
package redis
