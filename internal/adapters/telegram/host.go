package telegram

import (
	"context"
	"errors"
	"gatebot/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

var errNoMember = errors.New("empty chat member")

// Host answers the gate's capability questions from Telegram chat memberships. Channel and guild
// IDs are both the chat ID. Failed lookups are answered with "no".
type Host struct {
	bot    Bot
	selfID int64
}

func NewHost(b Bot, selfID int64) *Host {
	return &Host{bot: b, selfID: selfID}
}

func (h *Host) SelfID() string {
	return strconv.FormatInt(h.selfID, 10)
}

func (h *Host) CanSend(ctx context.Context, channelID string) bool {
	chatID, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		log.Warn().Err(err).Str("chat", channelID).Msg("invalid chat id")
		return false
	}

	// private chats have positive IDs and never restrict the bot
	if chatID > 0 {
		return true
	}

	member, err := h.member(ctx, chatID, h.selfID)
	if err != nil {
		return false
	}

	switch member.Type {
	case models.ChatMemberTypeLeft, models.ChatMemberTypeBanned:
		return false
	case models.ChatMemberTypeRestricted:
		return member.Restricted != nil && member.Restricted.CanSendMessages
	default:
		return true
	}
}

// IsNSFW is always false, Telegram has no age-restricted chat flag.
func (h *Host) IsNSFW(_ context.Context, _ string) bool {
	return false
}

func (h *Host) MissingPermissions(ctx context.Context, userID, channelID string,
	perms []domain.Permission) []domain.Permission {
	chatID, uid, err := parseIDs(channelID, userID)
	if err != nil {
		log.Warn().Err(err).Str("chat", channelID).Str("user", userID).Msg("invalid id")
		return perms
	}

	member, err := h.member(ctx, chatID, uid)
	if err != nil {
		return perms
	}

	return missingFrom(member, perms)
}

func (h *Host) IsGuildOwner(ctx context.Context, userID, guildID string) bool {
	if guildID == "" {
		return false
	}

	chatID, uid, err := parseIDs(guildID, userID)
	if err != nil {
		log.Warn().Err(err).Str("chat", guildID).Str("user", userID).Msg("invalid id")
		return false
	}

	member, err := h.member(ctx, chatID, uid)
	if err != nil {
		return false
	}

	return member.Type == models.ChatMemberTypeOwner
}

func (h *Host) member(ctx context.Context, chatID, userID int64) (*models.ChatMember, error) {
	member, err := h.bot.GetChatMember(ctx, &bot.GetChatMemberParams{ChatID: chatID, UserID: userID})
	if err == nil && member == nil {
		err = errNoMember
	}
	if err != nil {
		log.Warn().Err(err).Int64("chat", chatID).Int64("user", userID).Msg("failed to get chat member")
		return nil, err
	}
	return member, nil
}

func parseIDs(chatID, userID string) (int64, int64, error) {
	chat, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	user, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return chat, user, nil
}
