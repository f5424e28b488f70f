package discord

import (
	"context"
	"errors"
	"gatebot/internal/core/domain"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(reg *MockRegistry, disp *MockDispatcher) *Handler {
	return NewHandler(reg, disp, new(MockMessenger), &Host{self: "bot"}, "!")
}

func makeMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   content,
		Author:    &discordgo.User{ID: "u1", Username: "alice"},
	}
}

func TestHandler_HandleMessage(t *testing.T) {
	enabled := &stubCommand{policy: &domain.Policy{Name: "ban", Enabled: true}}
	disabled := &stubCommand{policy: &domain.Policy{Name: "slash"}}

	tests := []struct {
		name         string
		message      *discordgo.Message
		mockSetup    func(r *MockRegistry, d *MockDispatcher)
		wantErr      bool
		wantDispatch *domain.Invocation
	}{
		{
			name:      "no author",
			message:   &discordgo.Message{Content: "!ban"},
			mockSetup: func(_ *MockRegistry, _ *MockDispatcher) {},
			wantErr:   true,
		},
		{
			name:      "not a command",
			message:   makeMessage("hello there"),
			mockSetup: func(_ *MockRegistry, _ *MockDispatcher) {},
		},
		{
			name: "bot author ignored",
			message: func() *discordgo.Message {
				m := makeMessage("!ban")
				m.Author.Bot = true
				return m
			}(),
			mockSetup: func(_ *MockRegistry, _ *MockDispatcher) {},
		},
		{
			name: "own message ignored",
			message: func() *discordgo.Message {
				m := makeMessage("!ban")
				m.Author.ID = "bot"
				return m
			}(),
			mockSetup: func(_ *MockRegistry, _ *MockDispatcher) {},
		},
		{
			name:    "unknown command",
			message: makeMessage("!nope"),
			mockSetup: func(r *MockRegistry, _ *MockDispatcher) {
				r.On("Get", "nope").Return(nil, domain.ErrCommandNotFound)
			},
		},
		{
			name:    "message variant disabled",
			message: makeMessage("!slash"),
			mockSetup: func(r *MockRegistry, _ *MockDispatcher) {
				r.On("Get", "slash").Return(disabled, nil)
			},
		},
		{
			name:    "known command dispatched",
			message: makeMessage("!BAN @bob spam"),
			mockSetup: func(r *MockRegistry, d *MockDispatcher) {
				r.On("Get", "ban").Return(enabled, nil)
				d.On("Dispatch", mock.Anything, enabled, mock.Anything, mock.AnythingOfType("*discord.MessageReplier")).
					Return(nil)
			},
			wantDispatch: &domain.Invocation{
				Kind:      domain.KindMessage,
				ActorID:   "u1",
				ActorName: "alice",
				ChannelID: "c1",
				GuildID:   "g1",
				Args:      []string{"@bob", "spam"},
				Invoke:    "ban",
				Prefix:    "!",
			},
		},
		{
			name:    "dispatch error returned",
			message: makeMessage("!ban"),
			mockSetup: func(r *MockRegistry, d *MockDispatcher) {
				r.On("Get", "ban").Return(enabled, nil)
				d.On("Dispatch", mock.Anything, enabled, mock.Anything, mock.Anything).Return(errors.New("fail"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := new(MockRegistry)
			disp := new(MockDispatcher)
			tc.mockSetup(reg, disp)

			err := newTestHandler(reg, disp).HandleMessage(context.Background(), tc.message)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			reg.AssertExpectations(t)
			disp.AssertExpectations(t)

			if tc.wantDispatch != nil {
				disp.AssertCalled(t, "Dispatch", mock.Anything, mock.Anything,
					mock.MatchedBy(func(inv *domain.Invocation) bool {
						assert.NotEmpty(t, inv.ID)
						got := *inv
						got.ID = ""
						return assert.ObjectsAreEqual(*tc.wantDispatch, got)
					}), mock.Anything)
			}
		})
	}
}

func TestHandler_HandleInteraction(t *testing.T) {
	cmd := &stubCommand{policy: &domain.Policy{
		Name: "ban",
		Interaction: domain.InteractionPolicy{
			Enabled: true,
			Options: []domain.Option{
				{Name: "user", Type: domain.OptionUser, Required: true},
				{Name: "days", Type: domain.OptionInteger},
				{Name: "reason", Type: domain.OptionString},
			},
		},
	}}

	interaction := &discordgo.Interaction{
		ID:        "i1",
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "c1",
		GuildID:   "g1",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "ban",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "reason", Type: discordgo.ApplicationCommandOptionString, Value: "spam"},
				{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: "u2"},
			},
		},
	}

	reg := new(MockRegistry)
	reg.On("Get", "ban").Return(cmd, nil)
	disp := new(MockDispatcher)
	disp.On("Dispatch", mock.Anything, cmd, mock.MatchedBy(func(inv *domain.Invocation) bool {
		return inv.Kind == domain.KindInteraction &&
			inv.ActorID == "u1" &&
			inv.GuildID == "g1" &&
			inv.Prefix == "/" &&
			assert.ObjectsAreEqual([]string{"u2", "spam"}, inv.Args)
	}), mock.AnythingOfType("*discord.InteractionReplier")).Return(nil).Once()

	err := newTestHandler(reg, disp).HandleInteraction(context.Background(), interaction)
	require.NoError(t, err)
	disp.AssertExpectations(t)
}

func TestHandler_HandleInteractionErrors(t *testing.T) {
	disabled := &stubCommand{policy: &domain.Policy{Name: "ban", Enabled: true}}

	reg := new(MockRegistry)
	reg.On("Get", "ban").Return(disabled, nil)
	reg.On("Get", "nope").Return(nil, domain.ErrCommandNotFound)
	h := newTestHandler(reg, new(MockDispatcher))

	app := func(name string) *discordgo.Interaction {
		return &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			User: &discordgo.User{ID: "u1"},
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
		}
	}

	require.ErrorIs(t, h.HandleInteraction(context.Background(), app("nope")), domain.ErrCommandNotFound)
	require.ErrorIs(t, h.HandleInteraction(context.Background(), app("ban")), domain.ErrCommandDisabled)
	require.NoError(t, h.HandleInteraction(context.Background(), &discordgo.Interaction{
		Type: discordgo.InteractionPing,
	}))
}
