package discord

import (
	"context"
	"gatebot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// API is the subset of *discordgo.Session the host queries when the state cache misses.
type API interface {
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
}

// Host answers the gate's capability questions for Discord. Lookups that fail are answered with
// "no", so a broken cache or API error never grants access.
type Host struct {
	api   API
	state *discordgo.State
	self  string
}

func NewHost(api API, state *discordgo.State) *Host {
	return &Host{api: api, state: state}
}

func (h *Host) SelfID() string {
	if h.state != nil && h.state.User != nil {
		return h.state.User.ID
	}
	return h.self
}

const (
	sendRequires       = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages
	threadSendRequires = discordgo.PermissionViewChannel | discordgo.PermissionSendMessagesInThreads
)

func (h *Host) CanSend(_ context.Context, channelID string) bool {
	channel, err := h.channel(channelID)
	if err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("failed to fetch channel")
		return false
	}

	if channel.GuildID == "" {
		return true
	}

	perms, err := h.api.UserChannelPermissions(h.SelfID(), channelID)
	if err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("failed to get bot permissions")
		return false
	}

	required := int64(sendRequires)
	if channel.IsThread() {
		required = threadSendRequires
	}

	return perms&discordgo.PermissionAdministrator != 0 || perms&required == required
}

func (h *Host) IsNSFW(_ context.Context, channelID string) bool {
	channel, err := h.channel(channelID)
	if err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("failed to fetch channel")
		return false
	}

	if channel.NSFW {
		return true
	}

	// threads inherit the flag of their parent channel
	if channel.IsThread() && channel.ParentID != "" {
		parent, err := h.channel(channel.ParentID)
		if err != nil {
			log.Warn().Err(err).Str("channel", channel.ParentID).Msg("failed to fetch parent channel")
			return false
		}
		return parent.NSFW
	}

	return false
}

func (h *Host) MissingPermissions(_ context.Context, userID, channelID string,
	perms []domain.Permission) []domain.Permission {
	channel, err := h.channel(channelID)
	if err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("failed to fetch channel")
		return perms
	}

	// direct messages carry no permission overwrites
	if channel.GuildID == "" {
		return nil
	}

	granted, err := h.api.UserChannelPermissions(userID, channelID)
	if err != nil {
		log.Warn().Err(err).Str("user", userID).Str("channel", channelID).Msg("failed to get user permissions")
		return perms
	}

	return missingFrom(granted, perms)
}

func (h *Host) IsGuildOwner(_ context.Context, userID, guildID string) bool {
	if guildID == "" {
		return false
	}

	guild, err := h.guild(guildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("failed to fetch guild")
		return false
	}

	return guild.OwnerID == userID
}

func (h *Host) channel(id string) (*discordgo.Channel, error) {
	if h.state != nil {
		if c, err := h.state.Channel(id); err == nil {
			return c, nil
		}
	}
	return h.api.Channel(id)
}

func (h *Host) guild(id string) (*discordgo.Guild, error) {
	if h.state != nil {
		if g, err := h.state.Guild(id); err == nil {
			return g, nil
		}
	}
	return h.api.Guild(id)
}
