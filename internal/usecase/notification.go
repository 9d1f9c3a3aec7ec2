package usecase

import (
	"context"
	"fmt"
	"strings"
)

// Notification is a push message handed to the job queue for delivery.
type Notification struct {
	Topic    string   `json:"topic"`
	Title    string   `json:"title,omitempty"`
	Message  string   `json:"message"`
	Tags     []string `json:"tags,omitempty"`
	Priority int      `json:"priority,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// AnalyticsScheduler hands an analytics pass to the background queue.
type AnalyticsScheduler interface {
	ScheduleAnalytics(ctx context.Context, input AnalyticsRunInput) error
}

type StandingsInvalidator interface {
	InvalidateStandings(ctx context.Context, competitionID int64)
}

// PushSender delivers a notification to the push provider.
type PushSender interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationService is the consumer side of the notify job.
type NotificationService struct {
	sender       PushSender
	defaultTopic string
}

func NewNotificationService(sender PushSender, defaultTopic string) *NotificationService {
	return &NotificationService{sender: sender, defaultTopic: strings.TrimSpace(defaultTopic)}
}

func (s *NotificationService) Deliver(ctx context.Context, n Notification) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.Deliver")
	defer span.End()

	if s.sender == nil {
		return fmt.Errorf("%w: push sender is not configured", ErrDependencyUnavailable)
	}
	n.Topic = strings.TrimSpace(n.Topic)
	if n.Topic == "" {
		n.Topic = s.defaultTopic
	}
	if n.Topic == "" {
		return fmt.Errorf("%w: notification topic is required", ErrInvalidInput)
	}
	if strings.TrimSpace(n.Message) == "" {
		return fmt.Errorf("%w: notification message is required", ErrInvalidInput)
	}
	if err := s.sender.Send(ctx, n); err != nil {
		return fmt.Errorf("%w: send notification topic=%s: %w", ErrDependencyUnavailable, n.Topic, err)
	}
	return nil
}
