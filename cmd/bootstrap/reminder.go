package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"recipe-scheduler/internal/domain/schedule"
	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/config"
	"recipe-scheduler/internal/usecase/reminder"
	"recipe-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var ReminderModule = fx.Module("reminder",
	fx.Provide(
		NewPlanner,
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewPlanner(cfg config.Config) (*schedule.Planner, error) {
	loc, err := cfg.Reminder.Location()
	if err != nil {
		return nil, err
	}
	return schedule.NewPlanner(cfg.Reminder.Hour, loc), nil
}

func NewSweeper(cfg config.Config, uow shared.UnitOfWork, sender reminder.PushSender, clk clock.Clock, logger *slog.Logger) (*reminder.Sweeper, error) {
	loc, err := cfg.Reminder.Location()
	if err != nil {
		return nil, err
	}
	return reminder.NewSweeper(uow, sender, clk, logger, reminder.Config{
		Spec:        cfg.Reminder.SweepCron,
		BatchSize:   cfg.Reminder.SweepBatch,
		MaxAttempts: cfg.Reminder.MaxAttempts,
		StuckAfter:  cfg.Reminder.StuckAfter,
		MaxLateness: cfg.Reminder.MaxLateness,
		Location:    loc,
	}), nil
}

func startSweeper(lc fx.Lifecycle, cfg config.Config, sweeper *reminder.Sweeper, logger *slog.Logger) {
	if !cfg.Reminder.SweepEnabled {
		logger.Info("reminder sweeper disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: sweeper.Start,
		OnStop: func(ctx context.Context) error {
			// a sweep in flight gets a bounded grace period
			stopCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return sweeper.Stop(stopCtx)
		},
	})
}
