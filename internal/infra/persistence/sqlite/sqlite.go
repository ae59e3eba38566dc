// Package sqlite contains the on-device implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tether/config"
	"tether/internal/domain/lifecycle"
	"tether/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const memoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the local store and registers its lifecycle hooks
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Storage.Path, params.Logger, params.Config.Env.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			params.Logger.Info("Local store ready", slog.String("path", params.Config.Storage.Path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(buildDSN(path)), &gorm.Config{
		// Each repository call is a single statement; multi-step work goes through txManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite allows one writer; an in-memory database also lives in a single connection.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.All()...); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to migrate local schema")
	}

	return db, nil
}

func buildDSN(path string) string {
	if path == "" {
		path = memoryPath
	}
	pragmas := "_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"
	if path != memoryPath {
		pragmas += "&_pragma=journal_mode(WAL)"
	}

	return fmt.Sprintf("file:%s?%s", strings.TrimPrefix(path, "file:"), pragmas)
}
