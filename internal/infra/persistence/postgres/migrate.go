package postgres

import (
	"context"
	"log/slog"
	"strings"

	"teka/config"
	"teka/internal/domain/lifecycle"
	"teka/internal/errors"
	"teka/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every persistence model in dependency order.
func Models() []any {
	return []any{
		&model.ProfileModel{},
		&model.CredentialModel{},
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.FavoriteModel{},
		&model.ConversationModel{},
		&model.MessageModel{},
	}
}

// MigrateParams defines the dependencies of RegisterMigration
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// RegisterMigration runs the schema migration and category seeding on start when enabled.
func RegisterMigration(params MigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := Migrate(ctx, params.DB, params.Config.Migration.SeedCategories); err != nil {
				return err
			}

			params.Logger.Info("Database migrated",
				slog.Int("seedCategories", len(params.Config.Migration.SeedCategories)),
			)

			return nil
		},
	})
}

// Migrate creates the uuid_generate_v7 prerequisite, the tables and the seed categories.
// Seeding is idempotent on the category name.
func Migrate(ctx context.Context, db *gorm.DB, categories []string) error {
	db = db.WithContext(ctx)

	if err := db.Exec(uuidV7Function).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid_generate_v7")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto migrate")
	}

	seeds := make([]model.CategoryModel, 0, len(categories))
	for _, name := range categories {
		if name = strings.TrimSpace(name); name != "" {
			seeds = append(seeds, model.CategoryModel{Name: name})
		}
	}
	if len(seeds) == 0 {
		return nil
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&seeds).Error; err != nil {
		return errors.Wrap(err, "failed to seed categories")
	}

	return nil
}

// uuidV7Function is a pure SQL uuid v7 generator for PostgreSQL versions without a native one.
const uuidV7Function = `
CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS $$
DECLARE
	unix_ts_ms bytea;
	uuid_bytes bytea;
BEGIN
	unix_ts_ms = substring(int8send(floor(extract(epoch FROM clock_timestamp()) * 1000)::bigint) FROM 3);
	uuid_bytes = unix_ts_ms || substring(uuid_send(gen_random_uuid()) FROM 7);
	uuid_bytes = set_byte(uuid_bytes, 6, (b'0111' || get_byte(uuid_bytes, 6)::bit(4))::bit(8)::int);
	uuid_bytes = set_byte(uuid_bytes, 8, (b'10' || get_byte(uuid_bytes, 8)::bit(6))::bit(8)::int);
	RETURN encode(uuid_bytes, 'hex')::uuid;
END
$$ LANGUAGE plpgsql VOLATILE;
`
