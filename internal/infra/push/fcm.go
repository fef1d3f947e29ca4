package push

import (
	"context"
	"log/slog"

	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/reminder"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM accepts at most 500 tokens per multicast request.
const maxTokensPerMulticast = 500

var ErrAllDeliveriesFailed = errs.New("push delivery failed for every device")

type MulticastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type FCMSender struct {
	client MulticastClient
	logger *slog.Logger
}

func NewFCMClient(ctx context.Context, credentialsFile string) (*messaging.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to get messaging client")
	}
	return client, nil
}

func NewFCMSender(client MulticastClient, logger *slog.Logger) *FCMSender {
	return &FCMSender{client: client, logger: logger}
}

// Send multicasts n to every token. Tokens FCM reports as unregistered or malformed
// are returned as invalid; an error is returned only when no device received it.
func (s *FCMSender) Send(ctx context.Context, tokens []string, n reminder.Notification) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var invalid []string
	var delivered int
	var lastErr error
	for start := 0; start < len(tokens); start += maxTokensPerMulticast {
		end := min(start+maxTokensPerMulticast, len(tokens))
		chunk := tokens[start:end]

		resp, err := s.client.SendEachForMulticast(ctx, buildMessage(chunk, n))
		if err != nil {
			lastErr = err
			continue
		}
		delivered += resp.SuccessCount

		for i, r := range resp.Responses {
			if r.Success {
				continue
			}
			if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
				invalid = append(invalid, chunk[i])
				continue
			}
			lastErr = r.Error
		}
	}

	s.logger.Debug("fcm multicast finished",
		"tokens", len(tokens),
		"delivered", delivered,
		"invalid", len(invalid))

	if delivered == 0 && lastErr != nil {
		return invalid, errs.Mark(errs.Wrap(lastErr, "fcm send"), ErrAllDeliveriesFailed)
	}
	return invalid, nil
}

func buildMessage(tokens []string, n reminder.Notification) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
