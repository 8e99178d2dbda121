package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"deptdash/internal/apiclient"
	"deptdash/internal/apiserver"
	"deptdash/internal/config"
	"deptdash/internal/department"
	"deptdash/internal/logging"
	"deptdash/internal/session"
	"deptdash/internal/store"
	"deptdash/internal/trace"
	"deptdash/internal/ui"
)

const defaultLogFile = "deptdash.log"

func main() {
	apiURL := flag.String("api", "", "department API base URL (overrides DEPTDASH_API_URL)")
	envFile := flag.String("env", "", "path to a .env file")
	demo := flag.Bool("demo", false, "run against an in-process API signed in as the seeded admin")
	flag.Parse()

	if err := run(*apiURL, *envFile, *demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(apiURL, envFile string, demo bool) error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiURL != "" {
		cfg.Client.APIURL = apiURL
	}
	if cfg.Logger.File == "" {
		cfg.Logger.File = defaultLogFile
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := trace.NewProvider(ctx, cfg.Trace)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	if demo {
		stop, url, err := startDemoServer(cfg, logger)
		if err != nil {
			return err
		}
		defer stop()
		cfg.Client.APIURL = url
		cfg.Client.Email = cfg.Server.AdminEmail
		cfg.Client.Password = cfg.Server.AdminPassword
	}

	api := apiclient.New(cfg.Client.APIURL,
		apiclient.WithTimeout(cfg.Client.HTTPTimeout()),
		apiclient.WithTracer(tp.Tracer(apiclient.TracerName)),
		apiclient.WithLogger(logger),
	)

	user, err := session.NewClient(api).Resolve(ctx, session.Credentials{
		Email:    cfg.Client.Email,
		Password: cfg.Client.Password,
		Token:    cfg.Client.Token,
	})
	if err != nil {
		return fmt.Errorf("sign in: %s", apiclient.ErrorMessage(err))
	}
	logger.Info("session resolved",
		zap.String("api", cfg.Client.APIURL),
		zap.String("user", user.Email),
		zap.Bool("admin", user.IsAdmin),
		zap.Bool("tracing", tp.Exporting()),
	)

	st := store.New(ctx, department.NewHTTPClient(api), logger)
	st.Apply(store.LoggedIn{User: user})

	p := tea.NewProgram(ui.NewAppModel(st).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// startDemoServer serves the reference API on a loopback port.
func startDemoServer(cfg *config.Config, logger *zap.Logger) (func(), string, error) {
	srv, err := apiserver.New(apiserver.Config{
		JWTSecret:     cfg.Server.JWTSecret,
		TokenTTL:      cfg.Server.TokenTTL(),
		AdminEmail:    cfg.Server.AdminEmail,
		AdminPassword: cfg.Server.AdminPassword,
		UserEmail:     cfg.Server.UserEmail,
		UserPassword:  cfg.Server.UserPassword,
		BcryptCost:    cfg.Server.BcryptCost,
	}, logger.Named("demo-api"))
	if err != nil {
		return nil, "", fmt.Errorf("demo server: %w", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", fmt.Errorf("demo server listen: %w", err)
	}
	go func() {
		if err := srv.App().Listener(ln); err != nil {
			logger.Warn("demo server stopped", zap.Error(err))
		}
	}()
	stop := func() {
		if err := srv.Shutdown(2 * time.Second); err != nil {
			logger.Warn("demo server shutdown", zap.Error(err))
		}
	}
	return stop, "http://" + ln.Addr().String(), nil
}
