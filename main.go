package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/where-are-the-children/cliparse"
	"github.com/danielhkuo/where-are-the-children/ledger"
	"github.com/danielhkuo/where-are-the-children/middleware"
	"github.com/danielhkuo/where-are-the-children/router"
	"github.com/danielhkuo/where-are-the-children/stats"
	"github.com/danielhkuo/where-are-the-children/store"
)

func main() {
	var err error

	// Local development settings; real environment variables win
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the counter store
	ctx := context.Background()
	s, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("store connection failed", "type", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer s.Close()
	slog.Info("Counter store ready", "type", cfg.StoreType)

	l := ledger.New(s, ledger.WithTimeout(cfg.StoreTimeout))

	// A count that disagrees with the token set means a partial write
	// happened outside this service; report it, don't repair it.
	if audit, err := l.Audit(ctx); err != nil {
		slog.Warn("startup audit skipped", "error", err)
	} else if !audit.Consistent() {
		slog.Warn("signature count differs from signer set",
			"count", audit.Count,
			"signers", audit.Signers,
		)
	} else {
		slog.Info("Signature count", "count", audit.Count)
	}

	reg, err := stats.Embedded()
	if err != nil {
		slog.Error("stat registry invalid", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(l, reg, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "site", cfg.SiteURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
