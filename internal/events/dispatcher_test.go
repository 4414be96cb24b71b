package events_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/org-service/internal/events"
)

func TestDispatcherDeliversToSubscribersOfType(t *testing.T) {
	d := events.NewInMemoryDispatcher(nil)
	var got []string

	d.Subscribe(events.EventEmployeeRegistered, func(_ context.Context, e events.Event) error {
		got = append(got, "first:"+e.Subject)
		return errors.New("boom")
	})
	d.Subscribe(events.EventEmployeeRegistered, func(_ context.Context, e events.Event) error {
		got = append(got, "second:"+e.Subject)
		return nil
	})
	d.Subscribe(events.EventDirectorateDeleted, func(_ context.Context, e events.Event) error {
		got = append(got, "other")
		return nil
	})

	if err := d.Publish(context.Background(), events.NewEvent(events.EventEmployeeRegistered, "99999", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(got) != 2 || got[0] != "first:99999" || got[1] != "second:99999" {
		t.Fatalf("unexpected deliveries %v", got)
	}
}

func TestNewEventStampsIDAndTime(t *testing.T) {
	a := events.NewEvent(events.EventEmployeeAuthenticated, "10001", nil)
	b := events.NewEvent(events.EventEmployeeAuthenticated, "10001", nil)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
	if a.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
}

func TestDispatcherRecoversFromPanickingHandler(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := events.NewInMemoryDispatcher(zap.New(core))
	delivered := false

	d.Subscribe(events.EventDirectorateDeleted, func(context.Context, events.Event) error {
		panic("broken handler")
	})
	d.Subscribe(events.EventDirectorateDeleted, func(context.Context, events.Event) error {
		delivered = true
		return nil
	})

	if err := d.Publish(context.Background(), events.NewEvent(events.EventDirectorateDeleted, "3", nil)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !delivered {
		t.Fatal("second handler was skipped")
	}
	if logs.FilterMessage("event handler failed").Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
}
