package postgres

import (
	"context"
	"log/slog"

	"places/internal/domain/lifecycle"
	"places/internal/errors"
	"places/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// postgresOnlyStatements hold the parts of the schema GORM tags cannot express.
// Every statement is idempotent.
var postgresOnlyStatements = []string{
	`ALTER TABLE places DROP CONSTRAINT IF EXISTS chk_places_pincode_format`,
	`ALTER TABLE places ADD CONSTRAINT chk_places_pincode_format CHECK (pincode ~ '^[0-9]{1,9}$')`,
	`CREATE OR REPLACE FUNCTION places_touch_updated_at() RETURNS TRIGGER AS $$
BEGIN
	IF NEW.updated_at IS NULL OR NEW.updated_at = OLD.updated_at THEN
		NEW.updated_at = NOW();
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS trg_places_updated_at ON places`,
	`CREATE TRIGGER trg_places_updated_at BEFORE UPDATE ON places FOR EACH ROW EXECUTE FUNCTION places_touch_updated_at()`,
}

// Migrate creates or updates the places table, its checks and indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&model.PlaceModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate places table")
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	for _, statement := range postgresOnlyStatements {
		if err := db.Exec(statement).Error; err != nil {
			return errors.Wrap(err, "failed to apply places schema statement")
		}
	}

	return nil
}

// MigrateParams defines the dependencies of RegisterMigration.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterMigration runs Migrate when the application starts.
func RegisterMigration(params MigrateParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Migrate(ctx, params.DB); err != nil {
				return err
			}
			params.Logger.Info("Place store schema is up to date")

			return nil
		},
	})
}
