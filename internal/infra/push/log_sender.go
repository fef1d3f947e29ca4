package push

import (
	"context"
	"log/slog"

	"recipe-scheduler/internal/usecase/reminder"
)

// LogSender stands in for FCM when no credentials are configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, tokens []string, n reminder.Notification) ([]string, error) {
	s.logger.Info("push notification (log only)",
		"title", n.Title,
		"body", n.Body,
		"devices", len(tokens),
		"schedule_id", n.Data["schedule_id"])
	return nil, nil
}
