package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/org-service/internal/events"
)

// AuditService writes every domain event to a dedicated audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes() {
		a.dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *AuditService) handle(_ context.Context, event events.Event) error {
	level := zap.InfoLevel
	if event.Type == events.EventDirectorAssignmentRejected || event.Type == events.EventDirectorUnassigned {
		level = zap.WarnLevel
	}
	if ce := a.logger.Check(level, string(event.Type)); ce != nil {
		ce.Write(
			zap.String("event_id", event.ID),
			zap.String("subject", event.Subject),
			zap.Time("timestamp", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
	}
	return nil
}
