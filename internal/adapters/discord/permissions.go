package discord

import (
	"gatebot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// manageGuildExpressions was called MANAGE_EMOJIS_AND_STICKERS before the rename upstream.
const manageGuildExpressions int64 = 1 << 30

// permissionBits maps platform-neutral permission names onto Discord permission flags.
var permissionBits = map[domain.Permission]int64{
	domain.PermCreateInstantInvite:     discordgo.PermissionCreateInstantInvite,
	domain.PermKickMembers:             discordgo.PermissionKickMembers,
	domain.PermBanMembers:              discordgo.PermissionBanMembers,
	domain.PermAdministrator:           discordgo.PermissionAdministrator,
	domain.PermManageChannels:          discordgo.PermissionManageChannels,
	domain.PermManageGuild:             discordgo.PermissionManageGuild,
	domain.PermAddReactions:            discordgo.PermissionAddReactions,
	domain.PermViewAuditLog:            discordgo.PermissionViewAuditLogs,
	domain.PermPrioritySpeaker:         discordgo.PermissionVoicePrioritySpeaker,
	domain.PermStream:                  discordgo.PermissionVoiceStreamVideo,
	domain.PermViewChannel:             discordgo.PermissionViewChannel,
	domain.PermSendMessages:            discordgo.PermissionSendMessages,
	domain.PermSendTTSMessages:         discordgo.PermissionSendTTSMessages,
	domain.PermManageMessages:          discordgo.PermissionManageMessages,
	domain.PermEmbedLinks:              discordgo.PermissionEmbedLinks,
	domain.PermAttachFiles:             discordgo.PermissionAttachFiles,
	domain.PermReadMessageHistory:      discordgo.PermissionReadMessageHistory,
	domain.PermMentionEveryone:         discordgo.PermissionMentionEveryone,
	domain.PermUseExternalEmojis:       discordgo.PermissionUseExternalEmojis,
	domain.PermViewGuildInsights:       discordgo.PermissionViewGuildInsights,
	domain.PermConnect:                 discordgo.PermissionVoiceConnect,
	domain.PermSpeak:                   discordgo.PermissionVoiceSpeak,
	domain.PermMuteMembers:             discordgo.PermissionVoiceMuteMembers,
	domain.PermDeafenMembers:           discordgo.PermissionVoiceDeafenMembers,
	domain.PermMoveMembers:             discordgo.PermissionVoiceMoveMembers,
	domain.PermUseVAD:                  discordgo.PermissionVoiceUseVAD,
	domain.PermChangeNickname:          discordgo.PermissionChangeNickname,
	domain.PermManageNicknames:         discordgo.PermissionManageNicknames,
	domain.PermManageRoles:             discordgo.PermissionManageRoles,
	domain.PermManageWebhooks:          discordgo.PermissionManageWebhooks,
	domain.PermManageEmojisAndStickers: manageGuildExpressions,
	domain.PermUseApplicationCommands:  discordgo.PermissionUseApplicationCommands,
	domain.PermRequestToSpeak:          discordgo.PermissionVoiceRequestToSpeak,
	domain.PermManageThreads:           discordgo.PermissionManageThreads,
	domain.PermCreatePublicThreads:     discordgo.PermissionCreatePublicThreads,
	domain.PermCreatePrivateThreads:    discordgo.PermissionCreatePrivateThreads,
	domain.PermUseExternalStickers:     discordgo.PermissionUseExternalStickers,
	domain.PermSendMessagesInThreads:   discordgo.PermissionSendMessagesInThreads,
	domain.PermModerateMembers:         discordgo.PermissionModerateMembers,
}

// missingFrom returns the perms not present in granted. Administrators are never missing anything.
func missingFrom(granted int64, perms []domain.Permission) []domain.Permission {
	if granted&discordgo.PermissionAdministrator != 0 {
		return nil
	}

	var missing []domain.Permission
	for _, p := range perms {
		bit, ok := permissionBits[p]
		if !ok || granted&bit != bit {
			missing = append(missing, p)
		}
	}

	return missing
}
