package main

import (
	"context"
	"log/slog"

	"teka/config"
	"teka/internal/delivery"
	"teka/internal/delivery/api"
	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/router/handler"
	"teka/internal/infra/auth"
	logs "teka/internal/infra/log"
	"teka/internal/infra/persistence/postgres"
	"teka/internal/infra/pubsub"
	"teka/internal/infra/qrcode"
	"teka/internal/infra/storage"
	"teka/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In

	Ctx        context.Context
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.RegisterMigration,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewCredentialRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewFavoriteRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			storage.NewPhotoStorage,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewFavoriteService,
			impl.NewConversationService,
			impl.NewProfileService,
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
			handler.NewHealthHandler,
			handler.NewAccountHandler,
			handler.NewCatalogHandler,
			handler.NewFavoriteHandler,
			handler.NewConversationHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer runs every delivery in the background. A delivery that stops
// with an error shuts the whole app down with a non-zero exit code.
func startServer(params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(params.Ctx); err != nil {
				params.Logger.Error("Delivery stopped", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
