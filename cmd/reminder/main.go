package main

import (
	"context"
	"log/slog"
	"os"

	"reminder/config"
	"reminder/internal/delivery"
	"reminder/internal/delivery/api"
	apimiddleware "reminder/internal/delivery/api/middleware"
	"reminder/internal/delivery/api/router/handler"
	"reminder/internal/delivery/middleware"
	"reminder/internal/delivery/scheduler"
	"reminder/internal/domain/schedule"
	"reminder/internal/infra/auth"
	"reminder/internal/infra/firebase"
	"reminder/internal/infra/lock"
	logs "reminder/internal/infra/log"
	"reminder/internal/infra/persistence/firestore"
	"reminder/internal/infra/pubsub"
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
		firebase.NewApp,
		firebase.NewFirestoreClient,
		firebase.NewAuthClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewReminderRepository,
			firestore.NewNotificationRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newEvaluator,
			pubsub.NewEventPublisher,
			lock.NewRunLocker,
			auth.NewOIDCVerifier,
			auth.NewFirebaseIDTokenVerifier,
		),
	)
}

// newEvaluator evaluates cron expressions in the configured scheduler timezone
func newEvaluator(cfg *config.Config) (*schedule.Evaluator, error) {
	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return nil, err
	}

	return schedule.NewEvaluator(loc), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatchService,
			impl.NewFanOutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewServiceAuthMiddleware,
			apimiddleware.NewCallerAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTaskHandler,
			handler.NewEventHandler,
			handler.NewCallableHandler,
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
			fx.Annotate(
				scheduler.NewScheduler,
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
