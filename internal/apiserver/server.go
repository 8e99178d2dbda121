// Package apiserver is an in-memory department API used for local
// development and as the backend in client tests. Authorization is enforced
// here: only admin tokens may delete.
package apiserver

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config controls the seeded accounts and token signing.
type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
	UserEmail     string
	UserPassword  string
	BcryptCost    int
}

// Server bundles the fiber app with its stores.
type Server struct {
	app    *fiber.App
	repo   *Repository
	users  *UserStore
	tokens *TokenManager
	logger *zap.Logger
}

// New builds the app and seeds the configured accounts.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		repo:   NewRepository(),
		users:  NewUserStore(cfg.BcryptCost),
		tokens: NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		logger: logger,
	}
	if cfg.AdminEmail != "" {
		if _, err := s.users.Add("Admin", cfg.AdminEmail, cfg.AdminPassword, true); err != nil {
			return nil, err
		}
	}
	if cfg.UserEmail != "" {
		if _, err := s.users.Add("User", cfg.UserEmail, cfg.UserPassword, false); err != nil {
			return nil, err
		}
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "deptapi",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	s.app.Use(requestLogger(logger))

	h := &handlers{
		repo:      s.repo,
		users:     s.users,
		tokens:    s.tokens,
		validator: validator.New(),
		logger:    logger,
	}
	registerRoutes(s.app, h, s.tokens)
	return s, nil
}

func registerRoutes(app *fiber.App, h *handlers, tokens *TokenManager) {
	api := app.Group("/api")
	api.Post("/users/login", h.login)

	departments := api.Group("/departments", tokens.authenticate)
	departments.Get("/", h.listDepartments)
	departments.Post("/", h.createDepartment)
	departments.Put("/:id", h.updateDepartment)
	departments.Delete("/:id", requireAdmin, h.deleteDepartment)
}

// requestLogger renders handler errors in place so the logged status is the
// one sent, then logs one line per request at debug level.
func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				return herr
			}
		}
		logger.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)))
		return nil
	}
}

// App returns the fiber app, e.g. for adaptor.FiberApp in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Repository returns the department store.
func (s *Server) Repository() *Repository {
	return s.repo
}

// Users returns the account store.
func (s *Server) Users() *UserStore {
	return s.users
}

// Tokens returns the token manager.
func (s *Server) Tokens() *TokenManager {
	return s.tokens
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting up to timeout for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}
