package telegram

import (
	"context"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/mock"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *MockBot) GetChatMember(ctx context.Context, params *bot.GetChatMemberParams) (*models.ChatMember, error) {
	args := m.Called(ctx, params)
	member, _ := args.Get(0).(*models.ChatMember)
	return member, args.Error(1)
}

func memberParams(chatID, userID int64) any {
	return mock.MatchedBy(func(p *bot.GetChatMemberParams) bool {
		return p.ChatID == chatID && p.UserID == userID
	})
}

type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Register(cmd port.Command) error {
	args := m.Called(cmd)
	return args.Error(0)
}

func (m *MockRegistry) Get(name string) (port.Command, error) {
	args := m.Called(name)
	cmd, _ := args.Get(0).(port.Command)
	return cmd, args.Error(1)
}

func (m *MockRegistry) ListCommands() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockRegistry) Commands() []port.Command {
	args := m.Called()
	return args.Get(0).([]port.Command)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, cmd port.Command, inv *domain.Invocation,
	replier port.Replier) error {
	args := m.Called(ctx, cmd, inv, replier)
	return args.Error(0)
}

type stubCommand struct {
	policy *domain.Policy
}

func (c *stubCommand) Policy() *domain.Policy {
	return c.policy
}
