package bootstrap

import (
	"context"
	"log/slog"

	"recipe-scheduler/internal/infra/push"
	"recipe-scheduler/internal/pkg/config"
	"recipe-scheduler/internal/usecase/reminder"

	"go.uber.org/fx"
)

var PushModule = fx.Module("push",
	fx.Provide(
		NewPushSender,
	),
)

// NewPushSender falls back to logging reminders when no Firebase credentials are configured.
func NewPushSender(cfg config.Config, logger *slog.Logger) (reminder.PushSender, error) {
	var sender reminder.PushSender
	if cfg.Push.CredentialsFile == "" {
		logger.Warn("PUSH_CREDENTIALS_FILE is not set, reminders will only be logged")
		sender = push.NewLogSender(logger)
	} else {
		client, err := push.NewFCMClient(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			return nil, err
		}
		sender = push.NewFCMSender(client, logger)
	}

	return push.NewRateLimitedSender(sender, cfg.Push.RatePerSecond, cfg.Push.Burst), nil
}
