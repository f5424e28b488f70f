package discord

import (
	"context"
	"errors"
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/domain/command"
	"gatebot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const interactionPrefix = "/"

// Handler turns Discord gateway events into gated command invocations.
type Handler struct {
	registry   port.CommandRegistry
	dispatcher port.Dispatcher
	messenger  Messenger
	selfID     func() string
	prefix     string
}

func NewHandler(registry port.CommandRegistry, dispatcher port.Dispatcher, messenger Messenger,
	host *Host, prefix string) *Handler {
	return &Handler{
		registry:   registry,
		dispatcher: dispatcher,
		messenger:  messenger,
		selfID:     host.SelfID,
		prefix:     prefix,
	}
}

// OnMessageCreate is registered with discordgo.Session.AddHandler.
func (h *Handler) OnMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if err := h.HandleMessage(context.Background(), m.Message); err != nil {
		log.Err(err).Str("channel", m.ChannelID).Msg("failed to handle message")
	}
}

// OnInteractionCreate is registered with discordgo.Session.AddHandler.
func (h *Handler) OnInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.HandleInteraction(context.Background(), i.Interaction); err != nil {
		log.Err(err).Str("channel", i.ChannelID).Msg("failed to handle interaction")
	}
}

func (h *Handler) HandleMessage(ctx context.Context, m *discordgo.Message) error {
	if m == nil || m.Author == nil {
		return errors.New("no message")
	}

	if m.Author.Bot || m.Author.ID == h.selfID() {
		return nil
	}

	invoke, args, ok := command.ParseCommand(m.Content, h.prefix)
	if !ok {
		return nil
	}

	log.Debug().Str("message", m.Content).Msg("received command")

	cmd, err := h.registry.Get(invoke)
	if err != nil {
		log.Debug().Str("command", invoke).Msg("no handler for command")
		return nil
	}

	if !cmd.Policy().Enabled {
		log.Debug().Str("command", invoke).Msg("message variant disabled")
		return nil
	}

	inv := &domain.Invocation{
		ID:        newInvocationID(),
		Kind:      domain.KindMessage,
		ActorID:   m.Author.ID,
		ActorName: m.Author.Username,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Args:      args,
		Invoke:    invoke,
		Prefix:    h.prefix,
	}

	return h.dispatcher.Dispatch(ctx, cmd, inv, NewMessageReplier(h.messenger, m))
}

func (h *Handler) HandleInteraction(ctx context.Context, i *discordgo.Interaction) error {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()

	cmd, err := h.registry.Get(data.Name)
	if err != nil {
		return fmt.Errorf("no handler for command: %w", err)
	}

	policy := cmd.Policy()
	if !policy.Interaction.Enabled {
		return fmt.Errorf("%w: %s", domain.ErrCommandDisabled, policy.Name)
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction without user")
	}

	inv := &domain.Invocation{
		ID:        newInvocationID(),
		Kind:      domain.KindInteraction,
		ActorID:   user.ID,
		ActorName: user.Username,
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
		Args:      optionArgs(policy.Interaction.Options, data.Options),
		Invoke:    data.Name,
		Prefix:    interactionPrefix,
	}

	replier := NewInteractionReplier(h.messenger, i, policy.Interaction.Ephemeral)

	return h.dispatcher.Dispatch(ctx, cmd, inv, replier)
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionArgs orders the supplied option values the way the policy declares them. Options the user
// left out are skipped.
func optionArgs(declared []domain.Option, supplied []*discordgo.ApplicationCommandInteractionDataOption) []string {
	values := make(map[string]string, len(supplied))
	for _, opt := range supplied {
		values[opt.Name] = fmt.Sprint(opt.Value)
	}

	args := make([]string, 0, len(supplied))
	for _, opt := range declared {
		if v, ok := values[opt.Name]; ok {
			args = append(args, v)
		}
	}

	return args
}

func newInvocationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate invocation id")
		return ""
	}
	return id.String()
}
