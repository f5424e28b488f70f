package telegram

import (
	"context"
	"gatebot/internal/core/domain"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const TelegramMessageLimit = 4096

// markdown is stripped from usage cards, replies are sent as plain text.
var markdown = strings.NewReplacer("**", "", "```\n", "", "\n```", "")

// Replier answers a command by replying to the triggering message.
type Replier struct {
	bot       Bot
	chatID    int64
	messageID int
}

func NewReplier(b Bot, chatID int64, messageID int) *Replier {
	return &Replier{bot: b, chatID: chatID, messageID: messageID}
}

func (r *Replier) Reply(ctx context.Context, text string) error {
	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		_, err := r.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: r.chatID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID: r.messageID,
				ChatID:    r.chatID,
			},
		})
		if err != nil {
			log.Error().Err(err).Int64("chatID", r.chatID).Msg("failed to send message reply")
			return err
		}
	}

	return nil
}

func (r *Replier) ReplyUsage(ctx context.Context, card domain.UsageCard) error {
	text := markdown.Replace(card.Description)
	if card.Title != "" {
		text = card.Title + "\n\n" + text
	}
	return r.Reply(ctx, text)
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
