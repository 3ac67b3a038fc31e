package main

import (
	"context"
	"log/slog"
	"os"

	"faranah/config"
	"faranah/internal/delivery"
	"faranah/internal/delivery/http"
	"faranah/internal/delivery/http/middleware"
	"faranah/internal/delivery/http/router/handler"
	appmiddleware "faranah/internal/delivery/middleware"
	"faranah/internal/infra/auth"
	logs "faranah/internal/infra/log"
	"faranah/internal/infra/mail"
	"faranah/internal/infra/notification"
	"faranah/internal/infra/persistence/postgres"
	"faranah/internal/infra/pubsub"
	"faranah/internal/infra/qrcode"
	"faranah/internal/infra/storage"
	"faranah/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewTokenRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewAddressRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenService,
			auth.NewResetTokenService,
			storage.New,
			mail.New,
			qrcode.NewQRCodeService,
			notification.NewPushService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewUserService,
			impl.NewProductAdminService,
			impl.NewCategoryAdminService,
			impl.NewOrderAdminService,
			impl.NewUserAdminService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			appmiddleware.NewRequestIDMiddleware,
			appmiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewAuthHandler,
			handler.NewAdminProductHandler,
			handler.NewAdminCategoryHandler,
			handler.NewAdminOrderHandler,
			handler.NewAdminUserHandler,
			handler.NewStatsHandler,
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
