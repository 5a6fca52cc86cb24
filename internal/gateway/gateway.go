package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geosolutions-it/gsr/internal/config"
	"github.com/geosolutions-it/gsr/internal/encoding"
	"github.com/geosolutions-it/gsr/internal/middleware"
	"github.com/geosolutions-it/gsr/internal/negotiation"
	"github.com/geosolutions-it/gsr/internal/observability"
)

// ginModeOnce ensures gin.SetMode is only called once.
var ginModeOnce sync.Once

// Gateway is the hosting dispatcher: it owns the HTTP server, the
// middleware chain, and the active negotiation resolver.
type Gateway struct {
	cfg        *config.Config
	logger     observability.Logger
	tracer     *observability.Tracer
	engine     *gin.Engine
	encoders   encoding.EncoderFactory
	resolver   atomic.Pointer[negotiation.Resolver]
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// Option is a functional option for configuring the Gateway.
type Option func(*Gateway)

// WithTracer enables the tracing middleware with the given tracer.
func WithTracer(tracer *observability.Tracer) Option {
	return func(g *Gateway) {
		g.tracer = tracer
	}
}

// New creates a gateway from the configuration.
func New(cfg *config.Config, logger observability.Logger, opts ...Option) (*Gateway, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = observability.NopLogger()
	}

	ginModeOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
	})

	g := &Gateway{
		cfg:      cfg,
		logger:   logger,
		encoders: encoding.NewEncoderFactory(logger),
	}

	for _, opt := range opts {
		opt(g)
	}

	resolver, err := newResolver(&cfg.Negotiation, logger)
	if err != nil {
		return nil, err
	}
	g.resolver.Store(resolver)

	engine := gin.New()
	g.registerRoutes(engine)
	g.engine = engine

	return g, nil
}

// newResolver builds a negotiation resolver from configuration.
func newResolver(cfg *config.NegotiationConfig, logger observability.Logger) (*negotiation.Resolver, error) {
	fallback, err := negotiation.ParseMediaType(cfg.FallbackType)
	if err != nil {
		return nil, fmt.Errorf("negotiation fallback type: %w", err)
	}

	imageType, err := negotiation.ParseMediaType(cfg.DefaultImageType)
	if err != nil {
		return nil, fmt.Errorf("negotiation default image type: %w", err)
	}

	return negotiation.NewResolver(
		negotiation.WithResolverLogger(logger),
		negotiation.WithFallbackType(fallback),
		negotiation.WithStrategies(
			negotiation.NewFormatParameterStrategy(
				negotiation.WithDefaultImageType(imageType),
			),
			negotiation.NewAcceptHeaderStrategy(),
		),
	), nil
}

// ResolveMediaTypes resolves candidates with the currently active
// resolver, satisfying middleware.MediaTypeResolver across reloads.
func (g *Gateway) ResolveMediaTypes(r *http.Request) (negotiation.Outcome, error) {
	return g.resolver.Load().ResolveMediaTypes(r)
}

// Reload swaps the negotiation configuration without restarting the
// server.
func (g *Gateway) Reload(cfg *config.Config) error {
	if cfg == nil {
		return ErrNilConfig
	}

	resolver, err := newResolver(&cfg.Negotiation, g.logger)
	if err != nil {
		return err
	}

	g.resolver.Store(resolver)
	g.logger.Info("negotiation configuration reloaded",
		observability.String("fallback_type", cfg.Negotiation.FallbackType),
		observability.String("default_image_type", cfg.Negotiation.DefaultImageType),
	)

	return nil
}

// registerRoutes sets up the dispatcher routes.
func (g *Gateway) registerRoutes(engine *gin.Engine) {
	engine.GET("/healthz", g.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/services", g.handleServiceCatalog)
	engine.GET("/services/:name", g.handleServiceInfo)
	engine.NoRoute(g.handleNotFound)
}

// Handler returns the gin engine wrapped in the full middleware chain.
func (g *Gateway) Handler() http.Handler {
	var handler http.Handler = g.engine

	handler = middleware.Negotiation(g, g.logger)(handler)
	handler = middleware.Metrics()(handler)
	handler = middleware.Logging(g.logger)(handler)
	if g.tracer != nil {
		handler = observability.TracingMiddleware(g.tracer)(handler)
	}
	handler = middleware.RequestID()(handler)
	handler = middleware.Recovery(g.logger)(handler)

	return handler
}

// Start starts the HTTP server and blocks until it stops.
func (g *Gateway) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		return ErrAlreadyRunning
	}

	addr := fmt.Sprintf("%s:%d", g.cfg.Server.Address, g.cfg.Server.Port)
	g.httpServer = &http.Server{
		Addr:           addr,
		Handler:        g.Handler(),
		ReadTimeout:    g.cfg.Server.ReadTimeout,
		WriteTimeout:   g.cfg.Server.WriteTimeout,
		IdleTimeout:    g.cfg.Server.IdleTimeout,
		MaxHeaderBytes: g.cfg.Server.MaxHeaderBytes,
	}
	g.running = true
	g.mu.Unlock()

	g.logger.Info("starting HTTP server",
		observability.String("address", addr))

	err := g.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		g.mu.Lock()
		g.running = false
		g.mu.Unlock()
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop stops the HTTP server gracefully.
func (g *Gateway) Stop(ctx context.Context) error {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return nil
	}
	g.mu.Unlock()

	g.logger.Info("stopping HTTP server")

	if err := g.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	g.mu.Lock()
	g.running = false
	g.mu.Unlock()

	g.logger.Info("HTTP server stopped")
	return nil
}

// IsRunning returns whether the server is running.
func (g *Gateway) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}
