package port

import (
	"context"
	"gatebot/internal/core/domain"
)

type ChannelInspector interface {
	// CanSend reports whether the bot itself may post messages into the channel.
	CanSend(ctx context.Context, channelID string) bool
	// IsNSFW reports whether the channel is flagged as age restricted.
	IsNSFW(ctx context.Context, channelID string) bool
}

type PermissionChecker interface {
	// MissingPermissions returns the subset of perms the user lacks in the channel. An empty result
	// means every permission is granted.
	MissingPermissions(ctx context.Context, userID, channelID string, perms []domain.Permission) []domain.Permission
	// SelfID returns the user identifier of the bot on the platform.
	SelfID() string
}

type GuildInspector interface {
	// IsGuildOwner reports whether the user owns the guild (server, group) with the given ID.
	IsGuildOwner(ctx context.Context, userID, guildID string) bool
}

// Host bundles the platform capabilities the command gate depends on.
type Host interface {
	ChannelInspector
	PermissionChecker
	GuildInspector
}
