package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"wellness/config"
	"wellness/internal/delivery"
	httpmiddleware "wellness/internal/delivery/http/middleware"
	"wellness/internal/delivery/http/router"
	"wellness/internal/delivery/http/validator"
	"wellness/internal/delivery/middleware"
	"wellness/internal/domain/lifecycle"
	"wellness/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics     `optional:"true"`
	Registry     *prometheus.Registry `optional:"true"`
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho builds the fully wired echo instance. Tests drive it through ServeHTTP.
func NewEcho(params HTTPParams) *echo.Echo {
	cfg := params.Config

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught.
	echoServer.Use(echomiddleware.Recover())

	// Request ID before any logging so every line carries it.
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)
	echoServer.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		WithRequestID: true,
		Filters:       []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	if params.Metrics != nil {
		echoServer.Use(httpmiddleware.NewMetricsMiddleware(params.Metrics).Handle)
	}

	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))

	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger, cfg)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	if cfg.Metrics != nil && cfg.Metrics.Enabled && params.Registry != nil {
		echoServer.GET(cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{})))
	}

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort), slog.Bool("h2c", s.cfg.HTTP.H2C))

	var err error
	if s.cfg.HTTP.H2C {
		err = s.server.StartH2CServer(hostPort, &http2.Server{
			IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
		})
	} else {
		err = s.server.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
