package main

import (
	"context"
	"log/slog"
	"os"

	"tether/config"
	"tether/internal/cache"
	"tether/internal/delivery"
	"tether/internal/delivery/http"
	"tether/internal/delivery/http/router/handler"
	"tether/internal/domain/repository"
	"tether/internal/eventbus"
	logs "tether/internal/infra/log"
	"tether/internal/infra/notification"
	"tether/internal/infra/persistence/sqlite"
	"tether/internal/infra/pubsub"
	"tether/internal/infra/remote"
	"tether/internal/infra/scheduler"
	"tether/internal/usecase"
	"tether/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			resumeSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		scheduler.NewSystemClock,
		eventbus.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewLocationRepository,
			sqlite.NewTripRepository,
			sqlite.NewSettingsRepository,
			sqlite.NewHeartbeatQueueRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseApp,
			remote.NewRemoteStore,
		),
		pubsub.Module,
	)
}

// newFirebaseApp creates the Firebase app when configured; a nil app keeps Firestore disabled
func newFirebaseApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		return nil, nil // Firebase is optional
	}

	app, err := notification.NewFirebaseApp(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase app")
	}

	return app, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSubscriptionManager,
			impl.NewHeartbeatService,
			impl.NewTrackerService,
			impl.NewSyncCoordinator,
			impl.NewRetentionService,
			impl.NewEngine,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewSyncHandler,
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
		),
	)
}

type resumeSessionParams struct {
	fx.In
	fx.Lifecycle

	Engine       usecase.EngineUsecase
	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// resumeSession restores the last signed-in user on start and tears the session down on stop
func resumeSession(params resumeSessionParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			userID, err := params.SettingsRepo.Get(ctx, repository.SettingLastUserID)
			if errors.Is(err, repository.ErrSettingNotFound) || userID == "" {
				params.Logger.Info("No previous session to resume")

				return nil
			}
			if err != nil {
				return errors.Wrap(err, "failed to read last session user")
			}

			if err := params.Engine.Initialize(ctx, userID); err != nil {
				params.Logger.Warn("Failed to resume session",
					slog.String("user_id", userID),
					slog.Any("error", err),
				)

				return nil
			}
			params.Logger.Info("Resumed session", slog.String("user_id", userID))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Engine.Cleanup(ctx)

			return nil
		},
	})
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
