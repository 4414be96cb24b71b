package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/events"
)

// Dependencies bundles the collaborators shared by every service.
type Dependencies struct {
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Dependencies) publish(ctx context.Context, event events.Event) {
	if d.Dispatcher == nil {
		return
	}
	_ = d.Dispatcher.Publish(ctx, event)
}
