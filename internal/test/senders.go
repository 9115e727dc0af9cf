package test

import (
	"context"
	"sync"

	"github.com/coursedesk/coursedesk/internal/adapter/email"
	"github.com/coursedesk/coursedesk/internal/notification"
)

// SenderStub records outgoing mail for assertions.
type SenderStub struct {
	mu       sync.Mutex
	Messages []email.Message
	Err      error
	SendFn   func(context.Context, email.Message) error
}

// Send stores the message or delegates to the override.
func (s *SenderStub) Send(ctx context.Context, msg email.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
	return nil
}

// Sent returns a snapshot of recorded messages.
func (s *SenderStub) Sent() []email.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]email.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// SubmitterStub records submitted notifications.
type SubmitterStub struct {
	mu            sync.Mutex
	Notifications []notification.Notification
	Reject        bool
}

// Submit stores the notification unless the stub is set to reject.
func (s *SubmitterStub) Submit(n notification.Notification) bool {
	if s.Reject {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notifications = append(s.Notifications, n)
	return true
}

// Submitted returns a snapshot of recorded notifications.
func (s *SubmitterStub) Submitted() []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notification.Notification, len(s.Notifications))
	copy(out, s.Notifications)
	return out
}

var (
	_ email.Sender           = (*SenderStub)(nil)
	_ notification.Submitter = (*SubmitterStub)(nil)
)
