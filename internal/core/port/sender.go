package port

import (
	"context"
	"gatebot/internal/core/domain"
)

// Replier delivers responses to the place an invocation came from. Adapters create one per
// invocation, so a message reply and an interaction response share the same contract.
type Replier interface {
	// Reply sends a plain text answer to the invocation.
	Reply(ctx context.Context, text string) error
	// ReplyUsage sends a usage card, rendered as an embed where the platform supports it.
	ReplyUsage(ctx context.Context, card domain.UsageCard) error
}
