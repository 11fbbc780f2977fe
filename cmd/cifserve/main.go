// 14 Oct 2026

// Cifserve runs an HTTP server which converts PDB files to mmCIF.
// Settings come from the environment or a .env file, see pkg/config.
//
//	curl --data-binary @1abc.pdb.gz 'localhost:8080/v1/atom_site?entities=1'
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrew-torda/cifwrite/pkg/cifserve"
	"github.com/andrew-torda/cifwrite/pkg/common"
	"github.com/andrew-torda/cifwrite/pkg/config"
	"github.com/andrew-torda/cifwrite/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitUsageError)
	}
	logging.Setup(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	server := cifserve.NewServer(cfg.Server, cfg.Workers)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(common.ExitFailure)
	}
	<-done
	slog.Info("server stopped")
}
