// Package service defines interfaces for domain services.
package service

import "context"

// PushService sends push notifications to a subscription topic. Used to nudge
// back-office dashboards when a new order lands; optional in deployment.
type PushService interface {
	// SendToTopic pushes a notification to every subscriber of the topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
