package notification

import (
	"context"
	"log/slog"

	"faranah/config"
	"faranah/internal/domain/service"

	"go.uber.org/fx"
)

// noopPushService is used when Firebase is not configured.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendToTopic(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopPush] Push notifications disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration. Without a
// Firebase section the storefront runs with pushes disabled.
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushService),
)
