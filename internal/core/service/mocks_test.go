package service

import (
	"context"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"slices"
	"time"

	"github.com/stretchr/testify/mock"
)

const selfID = "bot"

// mockHost grants everything unless told otherwise.
type mockHost struct {
	cannotSend bool
	nsfw       bool
	guildOwner string
	granted    map[string][]domain.Permission
	calls      []string
}

func (m *mockHost) CanSend(_ context.Context, _ string) bool {
	m.calls = append(m.calls, "CanSend")
	return !m.cannotSend
}

func (m *mockHost) IsNSFW(_ context.Context, _ string) bool {
	m.calls = append(m.calls, "IsNSFW")
	return m.nsfw
}

func (m *mockHost) MissingPermissions(_ context.Context, userID, _ string,
	perms []domain.Permission) []domain.Permission {
	m.calls = append(m.calls, "MissingPermissions:"+userID)
	if m.granted == nil {
		return nil
	}

	var missing []domain.Permission
	for _, p := range perms {
		if !slices.Contains(m.granted[userID], p) {
			missing = append(missing, p)
		}
	}
	return missing
}

func (m *mockHost) SelfID() string {
	return selfID
}

func (m *mockHost) IsGuildOwner(_ context.Context, userID, _ string) bool {
	m.calls = append(m.calls, "IsGuildOwner")
	return userID == m.guildOwner
}

type MockReplier struct {
	mock.Mock
}

func (m *MockReplier) Reply(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func (m *MockReplier) ReplyUsage(ctx context.Context, card domain.UsageCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

// fakeClock is advanced manually by tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestGate(host port.Host, owners *OwnerSet) (*Gate, *fakeClock, *MemoryCooldownStore) {
	store := NewMemoryCooldownStore()
	g, err := NewGate(host, owners, store)
	if err != nil {
		panic(err)
	}

	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	g.now = clock.Now

	return g, clock, store
}

type testCommand struct {
	policy          *domain.Policy
	messageErr      error
	panicWith       any
	messageRuns     int
	interactionRuns int
}

func (c *testCommand) Policy() *domain.Policy {
	return c.policy
}

func (c *testCommand) RunMessage(_ context.Context, _ *domain.Invocation, _ port.Replier) error {
	c.messageRuns++
	if c.panicWith != nil {
		panic(c.panicWith)
	}
	return c.messageErr
}

func (c *testCommand) RunInteraction(_ context.Context, _ *domain.Invocation, _ port.Replier) error {
	c.interactionRuns++
	return nil
}

// policyOnlyCommand implements no runner variant.
type policyOnlyCommand struct {
	policy *domain.Policy
}

func (c *policyOnlyCommand) Policy() *domain.Policy {
	return c.policy
}
