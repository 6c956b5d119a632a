package service

import (
	"context"
	"sync"

	"github.com/mbeoliero/leadgen/domain/entity"
)

// MockUserRepo implements repo.UserRepo for testing
type MockUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	UpdateProfileCalls []map[string]any
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{users: make(map[string]*entity.User)}
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[email]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, email string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateProfileCalls = append(m.UpdateProfileCalls, fields)
	user, ok := m.users[email]
	if !ok {
		return nil
	}
	if v, ok := fields["full_name"]; ok {
		user.FullName = v.(string)
	}
	if v, ok := fields["company"]; ok {
		user.Company = v.(string)
	}
	return nil
}

// MockScheduleRepo implements repo.ScheduleRepo for testing
type MockScheduleRepo struct {
	mu        sync.Mutex
	schedules map[uint64]*entity.Schedule
}

func NewMockScheduleRepo() *MockScheduleRepo {
	return &MockScheduleRepo{schedules: make(map[uint64]*entity.Schedule)}
}

func (m *MockScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *schedule
	m.schedules[schedule.Id] = &cp
	return nil
}

func (m *MockScheduleRepo) FindById(ctx context.Context, id uint64) (*entity.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	schedule, ok := m.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *schedule
	return &cp, nil
}

func (m *MockScheduleRepo) ListActive(ctx context.Context, limit int) ([]*entity.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Schedule
	for _, schedule := range m.schedules {
		if !schedule.IsActive || len(out) >= limit {
			continue
		}
		cp := *schedule
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockScheduleRepo) ListUpcomingByOwner(ctx context.Context, owner string, now int64, limit int) ([]*entity.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Schedule
	for _, schedule := range m.schedules {
		if !schedule.IsActive || schedule.UserEmail != owner || len(out) >= limit {
			continue
		}
		if schedule.ScheduleType == entity.ScheduleTypeOneTime && schedule.RunAt <= now {
			continue
		}
		cp := *schedule
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockScheduleRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if schedule, ok := m.schedules[id]; ok {
		schedule.IsActive = active
	}
	return nil
}

// MockLeadRepo implements repo.LeadRepo for testing
type MockLeadRepo struct {
	mu    sync.Mutex
	leads map[uint64]*entity.Lead
}

func NewMockLeadRepo() *MockLeadRepo {
	return &MockLeadRepo{leads: make(map[uint64]*entity.Lead)}
}

func (m *MockLeadRepo) Put(lead *entity.Lead) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *lead
	m.leads[lead.Id] = &cp
}

func (m *MockLeadRepo) FindSendable(ctx context.Context, id uint64) (*entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lead, ok := m.leads[id]
	if !ok || !lead.Sendable() {
		return nil, nil
	}
	cp := *lead
	return &cp, nil
}

func (m *MockLeadRepo) ExistsSending(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lead := range m.leads {
		if lead.ConnectionStatus == entity.ConnectionStatusSending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockLeadRepo) ListAll(ctx context.Context, limit int) ([]*entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Lead
	for _, lead := range m.leads {
		if len(out) >= limit {
			break
		}
		cp := *lead
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockLeadRepo) ListReady(ctx context.Context, limit int) ([]*entity.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Lead
	for _, lead := range m.leads {
		if !lead.Sendable() || len(out) >= limit {
			continue
		}
		cp := *lead
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockLeadRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.leads)), nil
}

func (m *MockLeadRepo) CountSent(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, lead := range m.leads {
		if lead.ConnectionSent != nil {
			n++
		}
	}
	return n, nil
}

// fakeTokenStore is an in-memory ResetTokenStore.
type fakeTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]string)}
}

func (f *fakeTokenStore) Save(ctx context.Context, token string, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = email
	return nil
}

func (f *fakeTokenStore) Consume(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email := f.tokens[token]
	delete(f.tokens, token)
	return email, nil
}

// fakeMailer records sent reset links.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	links []string
}

func (f *fakeMailer) SendPasswordReset(ctx context.Context, to string, resetLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	f.links = append(f.links, resetLink)
	return nil
}

func (f *fakeMailer) Sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func (f *fakeMailer) Links() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.links...)
}

// mockInviteDispatcher captures the last dispatch and returns a canned body.
type mockInviteDispatcher struct {
	mu          sync.Mutex
	calls       int
	lastLeadId  uint64
	lastMessage string

	body string
	err  error
}

func (m *mockInviteDispatcher) SendInvite(ctx context.Context, leadId uint64, message string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastLeadId = leadId
	m.lastMessage = message
	if m.err != nil {
		return "", m.err
	}
	return m.body, nil
}
