package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ShafqaatMalik/financial-data-project/internal/config"
	"github.com/ShafqaatMalik/financial-data-project/internal/logger"
	"github.com/ShafqaatMalik/financial-data-project/internal/server"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata/provider"
)

// serveAction wires the config, market data client, and HTTP server, then
// serves until interrupted.
func serveAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if addr := cmd.String("addr"); addr != "" {
		cfg.Addr = addr
	}

	appLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	client, err := marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(cfg.Provider),
		PolygonApiKey: cfg.PolygonApiKey,
	}, appLogger)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Addr, client, appLogger, cfg.CacheTTL)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "dashboard",
		Usage: "Serve the financial data dashboard API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "HTTP listen address, overrides the config file",
			},
		},
		Action: serveAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
