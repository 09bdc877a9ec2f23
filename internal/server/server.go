// Package server assembles the HTTP surface: framework middleware, any
// caller-supplied middleware, and the dispatch and introspection routes.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hookflow/internal/api"
	"hookflow/internal/config"
	"hookflow/internal/dispatch"
	"hookflow/internal/registry"
)

// Server owns the echo instance and the configured http.Server.
type Server struct {
	echo *echo.Echo
	http *http.Server
}

// Option customizes the assembled server.
type Option func(*options)

type options struct {
	middleware []echo.MiddlewareFunc
}

// WithMiddleware appends request-processing middleware applied ahead of all
// routes, in declaration order, wrapping the dispatcher.
func WithMiddleware(mw ...echo.MiddlewareFunc) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mw...)
	}
}

// New builds the HTTP surface over a loaded registry and dispatcher.
func New(cfg *config.Config, reg *registry.Registry, d *dispatch.Dispatcher, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	for _, mw := range o.middleware {
		e.Use(mw)
	}

	h := api.NewHandler(reg)
	e.GET("/health", h.HandleHealth)
	e.GET("/workflows", h.HandleListWorkflows)
	e.POST("/:id", d.Handle)

	return &Server{
		echo: e,
		http: &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      e,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Echo exposes the assembled echo instance, mainly for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// HTTP exposes the configured http.Server for the caller to run.
func (s *Server) HTTP() *http.Server {
	return s.http
}
