// Package inspect serves a read-only HTTP view of a maze for external
// renderers and debugging tools.
package inspect

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller registers a group of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}

// Router owns the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	mode        string
	controllers []Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Mode        string // Gin mode (release, debug, test)
	Controllers []Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		mode:        config.Mode,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine with every controller's routes under
// baseURL/v1.
func (r *Router) Handler() http.Handler {
	if r.mode != "" {
		gin.SetMode(r.mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if r.mode != gin.ReleaseMode {
		router.Use(gin.Logger())
	}

	api := router.Group(r.baseURL)
	{
		public := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(public)
		}
	}
	return router
}

// Run starts the HTTP server and blocks until it fails.
func (r *Router) Run() error {
	return http.ListenAndServe(r.addr, r.Handler())
}
