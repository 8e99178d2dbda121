package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"deptdash/internal/apiserver"
	"deptdash/internal/config"
	"deptdash/internal/logging"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides DEPTAPI_ADDR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	// The server always logs to stdout.
	cfg.Logger.File = ""
	logger, err := logging.New(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	srv, err := apiserver.New(apiserver.Config{
		JWTSecret:     cfg.Server.JWTSecret,
		TokenTTL:      cfg.Server.TokenTTL(),
		AdminEmail:    cfg.Server.AdminEmail,
		AdminPassword: cfg.Server.AdminPassword,
		UserEmail:     cfg.Server.UserEmail,
		UserPassword:  cfg.Server.UserPassword,
		BcryptCost:    cfg.Server.BcryptCost,
	}, logger)
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.Listen(cfg.Server.Addr); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := srv.Shutdown(5 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
