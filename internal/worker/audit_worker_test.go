package worker_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/service"
	"github.com/spec-kit/org-service/internal/worker"
)

func TestAuditWorkerLogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)
	worker.StartAuditWorker(service.NewAuditService(dispatcher, zap.New(core)))
	worker.StartAuditWorker(nil)

	ctx := context.Background()
	_ = dispatcher.Publish(ctx, events.NewEvent(events.EventEmployeeRegistered, "99999", nil))
	_ = dispatcher.Publish(ctx, events.NewEvent(events.EventDirectorAssignmentRejected, "10004", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Message != string(events.EventEmployeeRegistered) || entries[0].LoggerName != "audit" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel {
		t.Fatalf("rejections should log at warn, got %v", entries[1].Level)
	}
}
