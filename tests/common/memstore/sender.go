//go:build unit || e2e

package memstore

import (
	"context"
	"slices"
	"sync"

	"recipe-scheduler/internal/usecase/reminder"
)

type SentNotification struct {
	Tokens       []string
	Notification reminder.Notification
}

// Sender records every push instead of delivering it.
type Sender struct {
	mu   sync.Mutex
	sent []SentNotification

	// Tokens reported back as unregistered.
	Invalid []string
	// Returned by every Send while set.
	Err error
	// Runs at the start of every Send, outside the recorder's lock.
	OnSend func()
}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(_ context.Context, tokens []string, n reminder.Notification) ([]string, error) {
	if s.OnSend != nil {
		s.OnSend()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, SentNotification{Tokens: slices.Clone(tokens), Notification: n})

	var invalid []string
	for _, t := range tokens {
		if slices.Contains(s.Invalid, t) {
			invalid = append(invalid, t)
		}
	}
	return invalid, s.Err
}

func (s *Sender) Sent() []SentNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sent)
}

func (s *Sender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.Invalid = nil
	s.Err = nil
	s.OnSend = nil
}
