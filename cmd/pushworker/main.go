package main

import (
	"context"
	"log/slog"
	"os"

	"reminder/config"
	"reminder/internal/delivery"
	"reminder/internal/delivery/middleware"
	"reminder/internal/delivery/worker"
	"reminder/internal/delivery/worker/handler"
	"reminder/internal/domain/repository"
	"reminder/internal/infra/auth"
	"reminder/internal/infra/firebase"
	logs "reminder/internal/infra/log"
	"reminder/internal/infra/notification"
	"reminder/internal/infra/persistence/firestore"
	"reminder/internal/infra/persistence/postgres"
	"reminder/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
		firebase.NewFirestoreClient,
		firebase.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewNotificationRepository,
			firestore.NewDeviceRepository,
			newDeliveryLogRepository,
		),
	)
}

// newDeliveryLogRepository records delivery outcomes in Postgres when it is configured
func newDeliveryLogRepository(params postgres.Params) (repository.DeliveryLogRepository, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, delivery logs are discarded")

		return postgres.NewDiscardDeliveryLogRepository(), nil
	}

	db, err := postgres.New(params)
	if err != nil {
		return nil, err
	}

	return postgres.NewDeliveryLogRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			auth.NewOIDCVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPushGatewayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewServiceAuthMiddleware,
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
