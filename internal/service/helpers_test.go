package service_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/org-service/internal/auth"
	"github.com/spec-kit/org-service/internal/events"
	"github.com/spec-kit/org-service/internal/repository"
	"github.com/spec-kit/org-service/internal/repository/memory"
	"github.com/spec-kit/org-service/internal/service"
)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) handle(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) ofType(t events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	store        *repository.Store
	tokens       *auth.TokenManager
	hasher       *auth.BcryptHasher
	recorded     *recorder
	auth         *service.AuthService
	employees    *service.EmployeeService
	departments  *service.DepartmentService
	directorates *service.DirectorateService
	seeder       *service.Seeder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := auth.NewTokenManager(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("s"), 32)), time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	rec := &recorder{}
	dispatcher := events.NewInMemoryDispatcher(zap.NewNop())
	for _, et := range events.AllEventTypes() {
		dispatcher.Subscribe(et, rec.handle)
	}
	deps := service.Dependencies{Dispatcher: dispatcher, Logger: zap.NewNop()}

	store := memory.NewStore().Repositories()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	return &fixture{
		store:        store,
		tokens:       tokens,
		hasher:       hasher,
		recorded:     rec,
		auth:         service.NewAuthService(store.Employees, tokens, hasher, deps),
		employees:    service.NewEmployeeService(store, hasher, deps),
		departments:  service.NewDepartmentService(store, deps),
		directorates: service.NewDirectorateService(store, deps),
		seeder:       service.NewSeeder(store, hasher, deps),
	}
}

func int64Ptr(v int64) *int64 { return &v }
