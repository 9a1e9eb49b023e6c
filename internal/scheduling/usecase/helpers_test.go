package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-dashboard/internal/scheduling"
	"booking-dashboard/internal/scheduling/repository"
	"booking-dashboard/pkg/timewindow"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// Mock gateway with per-test function fields
type mockRepository struct {
	listFunc   func(opts repository.ListEventsOptions) ([]scheduling.Event, error)
	getFunc    func(id string) (scheduling.Event, error)
	createFunc func(opts repository.CreateEventOptions) (scheduling.Event, error)
	updateFunc func(opts repository.UpdateEventOptions) (scheduling.Event, error)
	deleteFunc func(id string) (bool, error)
}

func (m *mockRepository) ListEvents(ctx context.Context, opts repository.ListEventsOptions) ([]scheduling.Event, error) {
	if m.listFunc == nil {
		return nil, nil
	}
	return m.listFunc(opts)
}

func (m *mockRepository) GetEvent(ctx context.Context, id string) (scheduling.Event, error) {
	if m.getFunc == nil {
		return scheduling.Event{}, nil
	}
	return m.getFunc(id)
}

func (m *mockRepository) CreateEvent(ctx context.Context, opts repository.CreateEventOptions) (scheduling.Event, error) {
	if m.createFunc == nil {
		return scheduling.Event{}, nil
	}
	return m.createFunc(opts)
}

func (m *mockRepository) UpdateEvent(ctx context.Context, opts repository.UpdateEventOptions) (scheduling.Event, error) {
	if m.updateFunc == nil {
		return scheduling.Event{}, nil
	}
	return m.updateFunc(opts)
}

func (m *mockRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc == nil {
		return false, nil
	}
	return m.deleteFunc(id)
}

var _ repository.Repository = (*mockRepository)(nil)

func testCalc(t *testing.T) *timewindow.Calculator {
	t.Helper()
	calc, err := timewindow.NewCalculator("UTC", time.Monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return calc
}
