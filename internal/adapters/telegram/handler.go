package telegram

import (
	"context"
	"errors"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/domain/command"
	"gatebot/internal/core/port"
	"strconv"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const Prefix = "/"

type Handler struct {
	registry   port.CommandRegistry
	dispatcher port.Dispatcher
	bot        Bot
	username   string

	inflight sync.WaitGroup
}

// NewHandler creates a handler for the bot called username. Commands addressed to another bot with
// the /cmd@otherbot form are ignored.
func NewHandler(registry port.CommandRegistry, dispatcher port.Dispatcher, b Bot, username string) *Handler {
	return &Handler{
		registry:   registry,
		dispatcher: dispatcher,
		bot:        b,
		username:   strings.ToLower(username),
	}
}

// Handle is registered with bot.RegisterHandler. The invocation runs on its own goroutine and
// outlives the cancellation of ctx, so a reply in progress at shutdown is still delivered. Wait
// blocks until every started invocation has returned.
func (h *Handler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if err := h.HandleUpdate(context.WithoutCancel(ctx), update); err != nil {
			log.Err(err).Msg("failed to handle update")
		}
	}()
}

func (h *Handler) Wait() {
	h.inflight.Wait()
}

func (h *Handler) HandleUpdate(ctx context.Context, update *models.Update) error {
	if update == nil || update.Message == nil {
		return errors.New("no message")
	}

	msg := update.Message
	if msg.From == nil || msg.From.IsBot {
		return nil
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	log.Debug().Str("message", text).Msg("received command")

	invoke, args, ok := command.ParseCommand(text, Prefix)
	if !ok {
		return nil
	}

	invoke, ok = h.stripMention(invoke)
	if !ok {
		log.Debug().Str("command", invoke).Msg("command addressed to another bot")
		return nil
	}

	cmd, err := h.registry.Get(invoke)
	if err != nil {
		log.Debug().Str("command", invoke).Msg("no handler for command")
		return nil
	}

	if !cmd.Policy().Enabled {
		log.Debug().Str("command", invoke).Msg("message variant disabled")
		return nil
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	var guildID string
	if msg.Chat.Type != models.ChatTypePrivate {
		guildID = chatID
	}

	inv := &domain.Invocation{
		ID:        newInvocationID(),
		Kind:      domain.KindMessage,
		ActorID:   strconv.FormatInt(msg.From.ID, 10),
		ActorName: getUserNameOrFirstName(msg.From),
		ChannelID: chatID,
		GuildID:   guildID,
		Args:      args,
		Invoke:    invoke,
		Prefix:    Prefix,
	}

	return h.dispatcher.Dispatch(ctx, cmd, inv, NewReplier(h.bot, msg.Chat.ID, msg.ID))
}

// stripMention removes a trailing @botname. ok is false when the command names a different bot.
func (h *Handler) stripMention(invoke string) (string, bool) {
	name, mention, found := strings.Cut(invoke, "@")
	if !found {
		return invoke, true
	}
	return name, h.username == "" || mention == h.username
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username != "" {
		return "@" + user.Username
	}
	return user.FirstName
}

func newInvocationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate invocation id")
		return ""
	}
	return id.String()
}
