//go:build unit

package push_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"recipe-scheduler/internal/infra/push"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/reminder"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticast struct {
	messages []*messaging.MulticastMessage
	respond  func(msg *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

func (f *fakeMulticast) SendEachForMulticast(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.messages = append(f.messages, msg)
	if f.respond != nil {
		return f.respond(msg)
	}
	return allDelivered(msg), nil
}

func allDelivered(msg *messaging.MulticastMessage) *messaging.BatchResponse {
	resp := &messaging.BatchResponse{SuccessCount: len(msg.Tokens)}
	for range msg.Tokens {
		resp.Responses = append(resp.Responses, &messaging.SendResponse{Success: true, MessageID: "m"})
	}
	return resp
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%d", i)
	}
	return out
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var curry = reminder.Notification{
	Title: "Cooking reminder",
	Body:  "Curry is planned for tomorrow",
	Data:  map[string]string{"type": "recipe_reminder"},
}

func TestFCMSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("success: builds one multicast message", func(t *testing.T) {
		client := &fakeMulticast{}
		sender := push.NewFCMSender(client, discard())

		invalid, err := sender.Send(ctx, []string{"a", "b"}, curry)

		require.NoError(t, err)
		assert.Empty(t, invalid)
		require.Len(t, client.messages, 1)
		msg := client.messages[0]
		assert.Equal(t, []string{"a", "b"}, msg.Tokens)
		assert.Equal(t, curry.Title, msg.Notification.Title)
		assert.Equal(t, curry.Body, msg.Notification.Body)
		assert.Equal(t, curry.Data, msg.Data)
		assert.Equal(t, "high", msg.Android.Priority)
		assert.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
	})

	t.Run("success: no tokens skips the provider", func(t *testing.T) {
		client := &fakeMulticast{}
		sender := push.NewFCMSender(client, discard())

		invalid, err := sender.Send(ctx, nil, curry)

		require.NoError(t, err)
		assert.Nil(t, invalid)
		assert.Empty(t, client.messages)
	})

	t.Run("success: tokens are chunked by 500", func(t *testing.T) {
		client := &fakeMulticast{}
		sender := push.NewFCMSender(client, discard())

		_, err := sender.Send(ctx, tokens(1203), curry)

		require.NoError(t, err)
		require.Len(t, client.messages, 3)
		assert.Len(t, client.messages[0].Tokens, 500)
		assert.Len(t, client.messages[1].Tokens, 500)
		assert.Len(t, client.messages[2].Tokens, 203)
		assert.Equal(t, "token-1000", client.messages[2].Tokens[0])
	})

	t.Run("success: partial delivery is not an error", func(t *testing.T) {
		client := &fakeMulticast{respond: func(msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			return &messaging.BatchResponse{
				SuccessCount: 1,
				FailureCount: 1,
				Responses: []*messaging.SendResponse{
					{Success: true, MessageID: "m"},
					{Success: false, Error: errors.New("internal server error")},
				},
			}, nil
		}}
		sender := push.NewFCMSender(client, discard())

		invalid, err := sender.Send(ctx, []string{"a", "b"}, curry)

		require.NoError(t, err)
		assert.Empty(t, invalid)
	})

	t.Run("success: one failed chunk when another delivered", func(t *testing.T) {
		calls := 0
		client := &fakeMulticast{respond: func(msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("deadline exceeded")
			}
			return allDelivered(msg), nil
		}}
		sender := push.NewFCMSender(client, discard())

		_, err := sender.Send(ctx, tokens(600), curry)

		require.NoError(t, err)
		assert.Len(t, client.messages, 2)
	})

	t.Run("error: every device failed", func(t *testing.T) {
		client := &fakeMulticast{respond: func(msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			return &messaging.BatchResponse{
				FailureCount: 1,
				Responses:    []*messaging.SendResponse{{Success: false, Error: errors.New("quota exceeded")}},
			}, nil
		}}
		sender := push.NewFCMSender(client, discard())

		_, err := sender.Send(ctx, []string{"a"}, curry)

		require.Error(t, err)
		assert.True(t, errs.Is(err, push.ErrAllDeliveriesFailed))
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("error: transport failure", func(t *testing.T) {
		client := &fakeMulticast{respond: func(*messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			return nil, errors.New("connection refused")
		}}
		sender := push.NewFCMSender(client, discard())

		_, err := sender.Send(ctx, []string{"a"}, curry)

		assert.True(t, errs.Is(err, push.ErrAllDeliveriesFailed))
	})
}
