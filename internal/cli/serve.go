package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/easilogin/easidesk/internal/config"
	"github.com/easilogin/easidesk/internal/errors"
	"github.com/easilogin/easidesk/internal/logger"
	"github.com/easilogin/easidesk/internal/serve"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 5 * time.Second

// serveCommand runs the local stub FastLogin service. It serves the same
// endpoints the dashboard polls, with seeded accounts and live request
// counters, so the shell can be developed without a real service.
func serveCommand(configPath, addrFlag string, portFlag int) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if addrFlag != "" {
		cfg.Serve.Addr = addrFlag
	}
	if portFlag != 0 {
		if portFlag < 1 || portFlag > 65535 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid port: %d", portFlag),
				"Use a port between 1 and 65535")
		}
		cfg.Serve.Port = portFlag
	}

	store := serve.NewStore(serve.SeedAccounts(), time.Now)
	server := serve.NewServer(store, cfg.Serve, logger.Default())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	fmt.Printf("Serving stub FastLogin API on http://%s:%d\n", cfg.Serve.Addr, cfg.Serve.Port)
	fmt.Println("Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.WrapWithCode(err, errors.ErrServe,
				fmt.Sprintf("Could not listen on %s:%d", cfg.Serve.Addr, cfg.Serve.Port),
				"Check the address is free, or pick another port with --port")
		}
		return nil
	case sig := <-sigCh:
		fmt.Printf("\nReceived %s, shutting down...\n", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrServe,
			"Graceful shutdown failed",
			"In-flight requests may have been dropped")
	}
	return nil
}
