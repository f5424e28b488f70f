package discord

import (
	"context"
	"gatebot/internal/core/domain"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const EmbedColor = 0x068add

// Messenger is the subset of *discordgo.Session used to answer invocations.
type Messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func usageEmbed(card domain.UsageCard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Description: card.Description,
		Color:       EmbedColor,
	}
	if card.Title != "" {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: card.Title}
	}
	return embed
}

// MessageReplier answers a prefix command by replying to the triggering message.
type MessageReplier struct {
	messenger Messenger
	message   *discordgo.Message
}

func NewMessageReplier(messenger Messenger, message *discordgo.Message) *MessageReplier {
	return &MessageReplier{messenger: messenger, message: message}
}

func (r *MessageReplier) Reply(_ context.Context, text string) error {
	return r.send(&discordgo.MessageSend{Content: text})
}

func (r *MessageReplier) ReplyUsage(_ context.Context, card domain.UsageCard) error {
	return r.send(&discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{usageEmbed(card)}})
}

func (r *MessageReplier) send(data *discordgo.MessageSend) error {
	data.Reference = r.message.Reference()
	data.AllowedMentions = &discordgo.MessageAllowedMentions{RepliedUser: false}

	_, err := r.messenger.ChannelMessageSendComplex(r.message.ChannelID, data)
	if err != nil {
		log.Error().Err(err).Str("channel", r.message.ChannelID).Msg("failed to send message reply")
		return err
	}

	return nil
}

// InteractionReplier answers an application command. The first answer is the interaction
// response, every later one a followup message.
type InteractionReplier struct {
	messenger   Messenger
	interaction *discordgo.Interaction
	ephemeral   bool

	mu        sync.Mutex
	responded bool
}

func NewInteractionReplier(messenger Messenger, interaction *discordgo.Interaction,
	ephemeral bool) *InteractionReplier {
	return &InteractionReplier{messenger: messenger, interaction: interaction, ephemeral: ephemeral}
}

func (r *InteractionReplier) Reply(_ context.Context, text string) error {
	return r.send(text, nil)
}

func (r *InteractionReplier) ReplyUsage(_ context.Context, card domain.UsageCard) error {
	return r.send("", []*discordgo.MessageEmbed{usageEmbed(card)})
}

func (r *InteractionReplier) send(content string, embeds []*discordgo.MessageEmbed) error {
	var flags discordgo.MessageFlags
	if r.ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if !r.responded {
		err = r.messenger.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Embeds:  embeds,
				Flags:   flags,
			},
		})
	} else {
		_, err = r.messenger.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: content,
			Embeds:  embeds,
			Flags:   flags,
		})
	}

	if err != nil {
		log.Error().Err(err).Str("interaction", r.interaction.ID).Msg("failed to respond to interaction")
		return err
	}

	r.responded = true
	return nil
}
