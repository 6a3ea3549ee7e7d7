package mockserver

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/yonasBSD/solidtime/internal/config"
	"github.com/yonasBSD/solidtime/internal/contract"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/metrics"
	"github.com/yonasBSD/solidtime/internal/middleware"
	"github.com/yonasBSD/solidtime/internal/schema"
	"github.com/yonasBSD/solidtime/internal/utils"
)

// APIPrefix is where the contract endpoints are mounted, matching the
// /api suffix of a solidtime base URL.
const APIPrefix = "/api"

// SessionCookie marks a browser session for the web entry redirect.
const SessionCookie = "solidtime_session"

// Server is a stub solidtime API. It validates every inbound call against
// the endpoint registry and answers from registered stubs.
type Server struct {
	cfg      *config.Config
	log      *logrus.Logger
	engine   *gin.Engine
	registry *contract.Registry
	metrics  *metrics.ServerMetrics
	gatherer prometheus.Gatherer

	mu    sync.RWMutex
	stubs map[string]Responder
}

// New creates a Server with every endpoint of registry mounted.
func New(cfg *config.Config, log *logrus.Logger, registry *contract.Registry) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		registry: registry,
		metrics:  metrics.NewServerMetrics(reg),
		gatherer: reg,
		stubs:    make(map[string]Responder),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"endpoints": s.registry.Len(),
		})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	// Web entry point: authenticated visitors land on the dashboard.
	s.engine.GET("/", func(c *gin.Context) {
		_, hasToken := middleware.BearerToken(c.Request)
		if cookie, err := c.Cookie(SessionCookie); hasToken || (err == nil && cookie != "") {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	api := s.engine.Group(APIPrefix)
	api.Use(middleware.BearerAuthMiddleware(s.cfg.APIToken))
	for _, e := range s.registry.Endpoints() {
		api.Handle(e.Method, e.Path, s.handle(e))
	}

	s.engine.NoRoute(func(c *gin.Context) {
		utils.RespondMessage(c, http.StatusNotFound, "Not Found")
	})
}

// Stub registers the responder for alias, replacing any previous one.
func (s *Server) Stub(alias string, r Responder) error {
	if _, ok := s.registry.Lookup(alias); !ok {
		return fmt.Errorf("%w: %s", appErrors.ErrUnknownEndpoint, alias)
	}
	s.mu.Lock()
	s.stubs[alias] = r
	s.mu.Unlock()
	return nil
}

// StubFixtures registers a static responder per fixture. Unknown aliases
// are rejected before anything is registered.
func (s *Server) StubFixtures(fixtures map[string]Reply) error {
	aliases := make([]string, 0, len(fixtures))
	for alias := range fixtures {
		if _, ok := s.registry.Lookup(alias); !ok {
			return fmt.Errorf("%w: %s", appErrors.ErrUnknownEndpoint, alias)
		}
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		reply := fixtures[alias]
		if err := s.Stub(alias, Static(reply.Status, reply.Body)); err != nil {
			return err
		}
	}
	s.log.WithField("aliases", aliases).Info("fixtures loaded")
	return nil
}

// StubExamples answers every endpoint with the smallest payload its response
// schema accepts. Explicit stubs registered afterwards take precedence.
func (s *Server) StubExamples() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.registry.Endpoints() {
		body := schema.Example(e.Response().Shape())
		s.stubs[e.Alias] = Static(0, body)
	}
}

// Reset removes every stub.
func (s *Server) Reset() {
	s.mu.Lock()
	s.stubs = make(map[string]Responder)
	s.mu.Unlock()
}

func (s *Server) responder(alias string) (Responder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.stubs[alias]
	return r, ok
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.Infof("starting stub server on %s", addr)
	return s.engine.Run(addr)
}
