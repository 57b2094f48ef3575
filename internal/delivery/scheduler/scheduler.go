// Package scheduler runs the fan-out job in-process on a cron ticker.
package scheduler

import (
	"context"
	"log/slog"

	"reminder/config"
	"reminder/internal/delivery"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/lifecycle"
	"reminder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type cronScheduler struct {
	cfg      *config.SchedulerConfig
	logger   *slog.Logger
	fanOutUC usecase.FanOutUsecase
	cron     *cron.Cron
}

// SchedulerParams holds dependencies for the embedded ticker
type SchedulerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	FanOutUC usecase.FanOutUsecase
}

// NewScheduler creates the embedded ticker. It stays idle unless scheduler.embedded is set.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	loc, err := params.Cfg.Scheduler.Location()
	if err != nil {
		return nil, err
	}

	cronLogger := &slogCronLogger{logger: params.Logger}
	srv := &cronScheduler{
		cfg:      params.Cfg.Scheduler,
		logger:   params.Logger,
		fanOutUC: params.FanOutUC,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}

	if _, err := srv.cron.AddFunc(srv.cfg.TickSpec, srv.tick); err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler tick spec %q", srv.cfg.TickSpec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the ticker and returns immediately
func (s *cronScheduler) Serve(ctx context.Context) error {
	if !s.cfg.Embedded {
		s.logger.Info("Embedded scheduler disabled, waiting for external ticks")

		return nil
	}

	s.logger.Info("Starting embedded scheduler",
		slog.String("tick_spec", s.cfg.TickSpec),
		slog.String("timezone", s.cfg.Timezone),
	)
	s.cron.Start()

	return nil
}

func (s *cronScheduler) tick() {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID))

	ctx := deliverycontext.WithRequestID(context.Background(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	report, err := s.fanOutUC.Run(ctx)
	if err != nil {
		logger.Error("Scheduled fan-out failed", slog.Any("error", err))

		return
	}

	if report.LockSkipped {
		logger.Info("Scheduled fan-out skipped, another run holds the lock")
	}
}

func (s *cronScheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping embedded scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "waiting for running fan-out")
	}
}

// slogCronLogger adapts slog to cron.Logger
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
