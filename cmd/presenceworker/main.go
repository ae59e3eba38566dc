package main

import (
	"context"
	"log/slog"
	"os"

	"tether/config"
	"tether/internal/delivery"
	"tether/internal/delivery/worker"
	"tether/internal/delivery/worker/handler"
	"tether/internal/domain/service"
	logs "tether/internal/infra/log"
	"tether/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushService,
		),
	)
}

// newPushService sends through FCM when Firebase is configured and only logs otherwise
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Info("Firebase not configured, using no-op push service")

		return notification.NewNoopPushService(logger), nil
	}

	app, err := notification.NewFirebaseApp(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase app")
	}

	return notification.NewFirebaseService(ctx, app, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
