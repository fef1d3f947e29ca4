package push

import (
	"context"

	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/reminder"

	"golang.org/x/time/rate"
)

// RateLimitedSender waits for a limiter token before every delegated Send.
type RateLimitedSender struct {
	next    reminder.PushSender
	limiter *rate.Limiter
}

func NewRateLimitedSender(next reminder.PushSender, perSecond float64, burst int) *RateLimitedSender {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimitedSender{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (s *RateLimitedSender) Send(ctx context.Context, tokens []string, n reminder.Notification) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errs.Wrap(err, "push rate limiter")
	}
	return s.next.Send(ctx, tokens, n)
}
