package server

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"notekeeper/internal/auth"
	"notekeeper/internal/config"
	"notekeeper/internal/database"
	"notekeeper/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// requestLogFormat prints the method, path and body of every request that
// reaches the API.
const requestLogFormat = "Method: ${method}\nPath:   ${path}\nBody:   ${body}\nID:     ${locals:requestid}\n---\n"

type FiberServer struct {
	*fiber.App

	cfg   config.Config
	notes repositories.NoteRepository
	// db is nil when notes live in memory.
	db   database.Service
	auth *auth.Authenticator
}

type Option func(*options)

type options struct {
	requestLog io.Writer
}

// WithRequestLog sends the request log to w instead of stdout.
func WithRequestLog(w io.Writer) Option {
	return func(o *options) { o.requestLog = w }
}

func New(cfg config.Config, notes repositories.NoteRepository, db database.Service, opts ...Option) *FiberServer {
	o := options{requestLog: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader:          "notekeeper",
			AppName:               "notekeeper",
			ErrorHandler:          errorHandler,
			DisableStartupMessage: true,
		}),
		cfg:   cfg,
		notes: notes,
		db:    db,
	}
	if cfg.Auth.Enabled() {
		server.auth = auth.New(cfg.Auth)
	}

	server.App.Use(recover.New())
	server.App.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if cfg.CORSAllowOrigins != "" {
		server.App.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSAllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
			AllowMethods: "GET,POST,DELETE,OPTIONS",
			MaxAge:       3600,
		}))
	}
	if cfg.EnablePprof {
		server.App.Use(pprof.New())
	}
	if isDir(cfg.StaticDir) {
		icon := filepath.Join(cfg.StaticDir, "favicon.ico")
		if isFile(icon) {
			server.App.Use(favicon.New(favicon.Config{File: icon}))
		}
		server.App.Static("/", cfg.StaticDir)
	}
	server.App.Use(logger.New(logger.Config{
		Format: requestLogFormat,
		Output: o.requestLog,
		// Static files are served before this point; keep pprof out of the log too.
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/debug/pprof")
		},
	}))
	return server
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
