// Package server exposes the polynomial fitter and the calibration workflow as
// a JSON HTTP API.
//
// Routes:
//
//	POST /v1/fit        fit coefficients to samples
//	POST /v1/predict    evaluate coefficients at xs
//	POST /v1/residuals  residual report of coefficients over samples
//	POST /v1/compare    rank candidate degrees on a validation set
//	POST /v1/calibrate  run a calibration over bench readings
//	GET  /healthz       liveness probe
//
// Precondition failures answer 400 with {"error": "..."}; anything else answers 500.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/arloliu/calfit/internal/options"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Config holds the server settings.
type Config struct {
	Logger       *zap.Logger
	MaxBodyBytes int64
}

// Option configures the server.
type Option = options.Option[*Config]

// WithLogger sets the request logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.Logger = logger
	})
}

// WithMaxBodyBytes bounds request bodies; non-positive values keep the default.
func WithMaxBodyBytes(n int64) Option {
	return options.NoError(func(c *Config) {
		if n > 0 {
			c.MaxBodyBytes = n
		}
	})
}

// Server routes API requests. It holds no per-request state and is safe for
// concurrent use.
type Server struct {
	router *mux.Router
	logger *zap.Logger
	limit  int64
}

var _ http.Handler = (*Server)(nil)

// New creates a server with its routes registered.
func New(opts ...Option) (*Server, error) {
	cfg, err := options.Build(Config{Logger: zap.NewNop(), MaxBodyBytes: DefaultMaxBodyBytes}, opts...)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router: mux.NewRouter(),
		logger: cfg.Logger,
		limit:  cfg.MaxBodyBytes,
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/v1").Subrouter()
	api.HandleFunc("/fit", s.handleFit).Methods(http.MethodPost)
	api.HandleFunc("/predict", s.handlePredict).Methods(http.MethodPost)
	api.HandleFunc("/residuals", s.handleResiduals).Methods(http.MethodPost)
	api.HandleFunc("/compare", s.handleCompare).Methods(http.MethodPost)
	api.HandleFunc("/calibrate", s.handleCalibrate).Methods(http.MethodPost)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
