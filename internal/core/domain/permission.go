package domain

import (
	"fmt"
	"strings"
)

// Permission is a platform-neutral permission name, e.g. BAN_MEMBERS.
type Permission string

const (
	PermCreateInstantInvite     Permission = "CREATE_INSTANT_INVITE"
	PermKickMembers             Permission = "KICK_MEMBERS"
	PermBanMembers              Permission = "BAN_MEMBERS"
	PermAdministrator           Permission = "ADMINISTRATOR"
	PermManageChannels          Permission = "MANAGE_CHANNELS"
	PermManageGuild             Permission = "MANAGE_GUILD"
	PermAddReactions            Permission = "ADD_REACTIONS"
	PermViewAuditLog            Permission = "VIEW_AUDIT_LOG"
	PermPrioritySpeaker         Permission = "PRIORITY_SPEAKER"
	PermStream                  Permission = "STREAM"
	PermViewChannel             Permission = "VIEW_CHANNEL"
	PermSendMessages            Permission = "SEND_MESSAGES"
	PermSendTTSMessages         Permission = "SEND_TTS_MESSAGES"
	PermManageMessages          Permission = "MANAGE_MESSAGES"
	PermEmbedLinks              Permission = "EMBED_LINKS"
	PermAttachFiles             Permission = "ATTACH_FILES"
	PermReadMessageHistory      Permission = "READ_MESSAGE_HISTORY"
	PermMentionEveryone         Permission = "MENTION_EVERYONE"
	PermUseExternalEmojis       Permission = "USE_EXTERNAL_EMOJIS"
	PermViewGuildInsights       Permission = "VIEW_GUILD_INSIGHTS"
	PermConnect                 Permission = "CONNECT"
	PermSpeak                   Permission = "SPEAK"
	PermMuteMembers             Permission = "MUTE_MEMBERS"
	PermDeafenMembers           Permission = "DEAFEN_MEMBERS"
	PermMoveMembers             Permission = "MOVE_MEMBERS"
	PermUseVAD                  Permission = "USE_VAD"
	PermChangeNickname          Permission = "CHANGE_NICKNAME"
	PermManageNicknames         Permission = "MANAGE_NICKNAMES"
	PermManageRoles             Permission = "MANAGE_ROLES"
	PermManageWebhooks          Permission = "MANAGE_WEBHOOKS"
	PermManageEmojisAndStickers Permission = "MANAGE_EMOJIS_AND_STICKERS"
	PermUseApplicationCommands  Permission = "USE_APPLICATION_COMMANDS"
	PermRequestToSpeak          Permission = "REQUEST_TO_SPEAK"
	PermManageThreads           Permission = "MANAGE_THREADS"
	PermCreatePublicThreads     Permission = "CREATE_PUBLIC_THREADS"
	PermCreatePrivateThreads    Permission = "CREATE_PRIVATE_THREADS"
	PermUseExternalStickers     Permission = "USE_EXTERNAL_STICKERS"
	PermSendMessagesInThreads   Permission = "SEND_MESSAGES_IN_THREADS"
	PermModerateMembers         Permission = "MODERATE_MEMBERS"
)

// PermissionNames maps every known permission to the name shown to users.
var PermissionNames = map[Permission]string{
	PermCreateInstantInvite:     "Create instant invite",
	PermKickMembers:             "Kick members",
	PermBanMembers:              "Ban members",
	PermAdministrator:           "Administrator",
	PermManageChannels:          "Manage channels",
	PermManageGuild:             "Manage server",
	PermAddReactions:            "Add reactions",
	PermViewAuditLog:            "View audit log",
	PermPrioritySpeaker:         "Priority speaker",
	PermStream:                  "Video",
	PermViewChannel:             "View channel",
	PermSendMessages:            "Send messages",
	PermSendTTSMessages:         "Send text-to-speech messages",
	PermManageMessages:          "Manage messages",
	PermEmbedLinks:              "Embed links",
	PermAttachFiles:             "Attach files",
	PermReadMessageHistory:      "Read message history",
	PermMentionEveryone:         "Mention @everyone, @here, and all roles",
	PermUseExternalEmojis:       "Use external emoji",
	PermViewGuildInsights:       "View server insights",
	PermConnect:                 "Connect",
	PermSpeak:                   "Speak",
	PermMuteMembers:             "Mute members",
	PermDeafenMembers:           "Deafen members",
	PermMoveMembers:             "Move members",
	PermUseVAD:                  "Use voice activity",
	PermChangeNickname:          "Change nickname",
	PermManageNicknames:         "Manage nicknames",
	PermManageRoles:             "Manage roles",
	PermManageWebhooks:          "Manage webhooks",
	PermManageEmojisAndStickers: "Manage emojis and stickers",
	PermUseApplicationCommands:  "Use Application Commands",
	PermRequestToSpeak:          "Request to Speak",
	PermManageThreads:           "Manage Threads",
	PermCreatePublicThreads:     "Create Public Threads",
	PermCreatePrivateThreads:    "Create Private Threads",
	PermUseExternalStickers:     "Use External Stickers",
	PermSendMessagesInThreads:   "Send Messages in Threads",
	PermModerateMembers:         "Moderate Members",
}

// Known reports whether p has an entry in PermissionNames.
func (p Permission) Known() bool {
	_, ok := PermissionNames[p]
	return ok
}

func (p Permission) DisplayName() string {
	if name, ok := PermissionNames[p]; ok {
		return name
	}
	return string(p)
}

// FormatPermissions renders perms as "`Ban members`, `Kick members` permissions".
func FormatPermissions(perms []Permission) string {
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = fmt.Sprintf("`%s`", p.DisplayName())
	}

	word := "permission"
	if len(perms) > 1 {
		word += "s"
	}

	return strings.Join(names, ", ") + " " + word
}
