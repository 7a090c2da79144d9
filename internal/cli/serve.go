package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/sportsbot/statcache/internal/cache"
	"github.com/sportsbot/statcache/internal/config"
	"github.com/sportsbot/statcache/internal/telemetry"
)

const (
	defaultStatsListen = ":9108"
	metricsNamespace   = "statcache"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve cache statistics over HTTP",
	Long: "Serve builds a cache from the effective configuration and exposes " +
		"its /metrics and /stats endpoints, for smoke-testing a policy and " +
		"the dashboards that scrape it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serveOverrides())
		if err != nil {
			return err
		}

		srv, c, err := buildStatsServer(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		fmt.Fprintf(os.Stdout, "Serving cache statistics on %s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(os.Stderr, err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

// serveOverrides folds the serve flags into the config override map.
func serveOverrides() map[string]string {
	overrides := map[string]string{}
	if flagListen != "" {
		overrides["statsListen"] = flagListen
	}
	return overrides
}

// buildStatsServer constructs the cache from cfg and an HTTP server
// exposing its telemetry. The caller owns closing the returned cache.
func buildStatsServer(cfg config.Config) (*http.Server, *cache.Cache, error) {
	c, err := cache.New(cfg.Policy(), cfg.CacheOptions()...)
	if err != nil {
		return nil, nil, err
	}

	handler, err := telemetry.Handler(c, metricsNamespace)
	if err != nil {
		c.Close()
		return nil, nil, err
	}

	addr := cfg.StatsListen
	if addr == "" {
		addr = defaultStatsListen
	}
	return &http.Server{Addr: addr, Handler: handler}, c, nil
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "address to serve on (overrides statsListen)")
}
