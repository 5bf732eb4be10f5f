package main

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/cliutil"
	"github.com/RagnarGrootKoerkamp/astar-pairwise-aligner/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		redisAddr string
		redisDB   int
		cacheTTLs int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the alignment API server (POST /align)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliutil.LoggerFromContext(cmd.Context())

			var cache server.Cache
			if redisAddr != "" {
				client := redis.NewClient(&redis.Options{Addr: redisAddr, DB: redisDB})
				cache = server.NewRedisCache(client, time.Duration(cacheTTLs)*time.Second)
				logger.Infof("alignment result cache backed by redis at %s", redisAddr)
			}

			srv := server.New(logger, cache)
			logger.Infof("listening on %s", addr)
			return http.ListenAndServe(addr, srv)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", ":8080", "address to listen on")
	flags.StringVar(&redisAddr, "redis-addr", "", "redis address for result caching (empty disables caching)")
	flags.IntVar(&redisDB, "redis-db", 0, "redis database number")
	flags.IntVar(&cacheTTLs, "cache-ttl", 3600, "cache entry lifetime in seconds")

	return cmd
}
