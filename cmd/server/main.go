package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hookflow/internal/config"
	"hookflow/internal/dispatch"
	"hookflow/internal/logging"
	"hookflow/internal/registry"
	"hookflow/internal/scheduler"
	"hookflow/internal/server"
	"hookflow/internal/tls"
	"hookflow/internal/workflows"
)

const version = "1.0.0"

func main() {
	root := &cobra.Command{
		Use:   "hookflow",
		Short: "Webhook and cron workflow server",
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "workflows",
		Short: "Print the registered workflow set",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			for _, wf := range buildRegistry(cfg, logger).All() {
				fmt.Printf("%-12s auth=%-7s schedule=%q  %s\n",
					wf.Config.ID, wf.Config.Auth.Kind, wf.Config.Schedule, wf.Config.Description)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildRegistry loads the built-in workflow definitions. Hosts embedding the
// framework construct their own registry here instead.
func buildRegistry(cfg *config.Config, logger *logging.Logger) *registry.Registry {
	reg := registry.New(logger)

	defs := []func() error{
		func() error { return reg.Register(workflows.Echo()) },
		func() error { return reg.Register(workflows.Greet()) },
		func() error { return reg.Register(workflows.Heartbeat(logger)) },
	}
	if cfg.Forward.URL != "" {
		defs = append(defs, func() error {
			return reg.Register(workflows.Forward("forward", cfg.Forward.APIKey, cfg.Forward.URL))
		})
	}
	for _, register := range defs {
		if err := register(); err != nil {
			logger.Warn("skipping workflow: %v", err)
		}
	}
	return reg
}

func serve() error {
	logger := logging.NewLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		return err
	}
	logger.Info("Starting hookflow %s", version)

	reg := buildRegistry(cfg, logger)
	logger.Info("Loaded %d workflows", reg.Count())

	d := dispatch.New(reg, logger)

	// Bind and start the scheduler before serving traffic so the first
	// matching firing is not missed.
	if cfg.Scheduler.Enabled {
		timer, err := scheduler.NewCronTimer(cfg.Scheduler.Timezone)
		if err != nil {
			logger.Error("Failed to initialize scheduler: %v", err)
			return err
		}
		binder := scheduler.NewBinder(timer, d, logger)
		bound := binder.BindAll(reg)
		binder.Start()
		defer binder.Stop()
		logger.Info("Scheduler started with %d bindings", bound)
	}

	srv := server.New(cfg, reg, d)
	httpServer := srv.HTTP()

	// Graceful shutdown handling
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Server starting on %s (tls=%v)", httpServer.Addr, cfg.TLS.Enable)
		if cfg.TLS.Enable {
			if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" {
				logger.Error("TLS enabled but cert/key file not provided")
				serverErrors <- httpServer.ListenAndServe()
				return
			}
			// generate if missing and hostnames provided
			if _, err := os.Stat(cfg.TLS.CertFile); os.IsNotExist(err) {
				if len(cfg.TLS.Hostnames) > 0 {
					if err := tls.GenerateSelfSignedCert(cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.Hostnames); err != nil {
						logger.Error("failed to generate self-signed cert: %v", err)
					}
				}
			}
			serverErrors <- httpServer.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			serverErrors <- httpServer.ListenAndServe()
		}
	}()

	// Wait for shutdown signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			logger.Error("Server error: %v", err)
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		logger.Info("Shutdown signal received: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error: %v", err)
			if err := httpServer.Close(); err != nil {
				logger.Error("Server close error: %v", err)
			}
		}

		logger.Info("Server stopped gracefully")
	}
	return nil
}
