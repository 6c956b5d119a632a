package scheduler

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// MockScheduleRepo implements repo.ScheduleRepo for testing
type MockScheduleRepo struct {
	mu        sync.Mutex
	schedules map[uint64]*entity.Schedule

	FindByIdFunc   func(ctx context.Context, id uint64) (*entity.Schedule, error)
	ListActiveFunc func(ctx context.Context, limit int) ([]*entity.Schedule, error)
	SetActiveFunc  func(ctx context.Context, id uint64, active bool) error

	// Call tracking
	SetActiveCalls []struct {
		Id     uint64
		Active bool
	}
}

func NewMockScheduleRepo() *MockScheduleRepo {
	return &MockScheduleRepo{
		schedules: make(map[uint64]*entity.Schedule),
	}
}

func (m *MockScheduleRepo) Put(schedule *entity.Schedule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[schedule.Id] = schedule
}

func (m *MockScheduleRepo) Get(id uint64) *entity.Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedules[id]
}

func (m *MockScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[schedule.Id] = schedule
	return nil
}

func (m *MockScheduleRepo) FindById(ctx context.Context, id uint64) (*entity.Schedule, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, nil
	}
	copied := *schedule
	return &copied, nil
}

func (m *MockScheduleRepo) ListActive(ctx context.Context, limit int) ([]*entity.Schedule, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, limit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Schedule
	for _, s := range m.schedules {
		if s.IsActive && len(out) < limit {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *MockScheduleRepo) ListUpcomingByOwner(ctx context.Context, owner string, now int64, limit int) ([]*entity.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Schedule
	for _, s := range m.schedules {
		if s.UserEmail != owner || !s.IsActive {
			continue
		}
		if s.ScheduleType == entity.ScheduleTypeRecurring || s.RunAt > now {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *MockScheduleRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	m.mu.Lock()
	m.SetActiveCalls = append(m.SetActiveCalls, struct {
		Id     uint64
		Active bool
	}{id, active})
	m.mu.Unlock()

	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.schedules[id]; ok {
		s.IsActive = active
	}
	return nil
}

// mockTrigger implements Trigger, counting scheduled fires
type mockTrigger struct {
	calls atomic.Int64
	err   error
}

func (m *mockTrigger) TriggerScheduled(ctx context.Context) error {
	m.calls.Add(1)
	return m.err
}

func (m *mockTrigger) Calls() int64 {
	return m.calls.Load()
}
