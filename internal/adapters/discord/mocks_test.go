package discord

import (
	"context"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) UserChannelPermissions(userID, channelID string, _ ...discordgo.RequestOption) (int64, error) {
	args := m.Called(userID, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAPI) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(channelID)
	c, _ := args.Get(0).(*discordgo.Channel)
	return c, args.Error(1)
}

func (m *MockAPI) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	args := m.Called(guildID)
	g, _ := args.Get(0).(*discordgo.Guild)
	return g, args.Error(1)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend,
	_ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, data)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
}

func (m *MockMessenger) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
	_ ...discordgo.RequestOption) error {
	args := m.Called(interaction, resp)
	return args.Error(0)
}

func (m *MockMessenger) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool,
	data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, wait, data)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
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
