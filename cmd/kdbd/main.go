// Command kdbd is the daemon backend: it listens on a local Unix socket
// and exchanges key operations with clients across the framed request
// protocol, dispatching to an in-process backend.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/kdbkit/kdbkit/backend/memstore"
	"github.com/kdbkit/kdbkit/daemon"
	"github.com/kdbkit/kdbkit/daemonconfig"
)

func main() {
	app := &cli.App{
		Name:  "kdbd",
		Usage: "hierarchical configuration-key daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML daemon configuration file",
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "override the configured listen socket path",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "address to serve Prometheus metrics on (empty disables it)",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := daemonconfig.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := daemonconfig.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if listen := c.String("listen"); listen != "" {
		cfg.ListenSocket = listen
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()

	registry := prometheus.NewRegistry()
	metrics := daemon.NewMetrics(registry)

	if addr := c.String("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	_ = os.Remove(cfg.ListenSocket)
	ln, err := net.Listen("unix", cfg.ListenSocket)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenSocket, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	backend := memstore.New()
	srv := daemon.NewServer(backend, logger, metrics)
	logger.Info().Str("socket", cfg.ListenSocket).Msg("kdbd listening")
	return srv.Serve(ctx, ln)
}
