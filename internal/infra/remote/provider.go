package remote

import (
	"context"
	"log/slog"

	"tether/config"
	"tether/internal/domain/constants"
	"tether/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the RemoteStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewRemoteStore creates the configured RemoteStore wrapped in a circuit breaker
func NewRemoteStore(params Params) (service.RemoteStore, error) {
	cfg := params.Config.Remote
	logger := params.Logger

	var store service.RemoteStore

	switch cfg.Provider {
	case constants.RemoteProviderFirestore:
		if params.App == nil {
			return nil, errors.New("firebase must be configured for the firestore provider")
		}

		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}
		logger.Info("Using Firestore remote store", slog.String("collection", cfg.UsersCollection))

		store = NewFirestoreStore(client, logger)

	case constants.RemoteProviderMemory, "":
		logger.Info("Using in-memory remote store")

		store = NewMemoryStore()

	default:
		return nil, errors.Errorf("unknown remote provider: %s", cfg.Provider)
	}

	guarded := NewBreakerStore(store, cfg, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RemoteStore")

			return guarded.Close()
		},
	})

	return guarded, nil
}
