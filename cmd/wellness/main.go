package main

import (
	"context"
	"log/slog"
	"os"

	"wellness/config"
	"wellness/internal/delivery"
	"wellness/internal/delivery/http"
	"wellness/internal/delivery/http/middleware"
	"wellness/internal/delivery/http/router/handler"
	"wellness/internal/delivery/worker"
	"wellness/internal/domain/service"
	"wellness/internal/infra/auth"
	"wellness/internal/infra/auth/google"
	logs "wellness/internal/infra/log"
	"wellness/internal/infra/metrics"
	"wellness/internal/infra/persistence"
	"wellness/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewIdentityService,
			impl.NewMoodService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMoodHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newJanitor,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newJanitor returns a no-op delivery when the janitor is disabled.
func newJanitor(params worker.JanitorParams) delivery.Delivery {
	if params.Cfg.Janitor == nil || !params.Cfg.Janitor.Enabled {
		params.Logger.Info("Blacklist janitor disabled")

		return disabledDelivery{}
	}

	return worker.NewJanitor(params)
}

type disabledDelivery struct{}

func (disabledDelivery) Serve(context.Context) error { return nil }

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
