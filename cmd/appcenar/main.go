package main

import (
	"context"
	"log/slog"
	"os"

	"appcenar/config"
	"appcenar/internal/delivery"
	"appcenar/internal/delivery/http"
	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/router/handler"
	"appcenar/internal/domain/service"
	"appcenar/internal/infra/auth"
	logs "appcenar/internal/infra/log"
	"appcenar/internal/infra/mail"
	"appcenar/internal/infra/persistence/postgres"
	"appcenar/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewAddressRepository,
			postgres.NewBusinessTypeRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewFavoriteRepository,
			postgres.NewSessionRepository,
			postgres.NewSettingsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			mail.New,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAddressService,
			impl.NewFavoriteService,
			impl.NewProfileService,
			impl.NewMerchantService,
			impl.NewCourierService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewAddressHandler,
			handler.NewFavoriteHandler,
			handler.NewProfileHandler,
			handler.NewMerchantHandler,
			handler.NewCourierHandler,
			handler.NewAdminHandler,
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
