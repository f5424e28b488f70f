package telegram

import (
	"gatebot/internal/core/domain"

	"github.com/go-telegram/bot/models"
)

// memberPermissions are held by every regular member of a chat.
var memberPermissions = []domain.Permission{
	domain.PermViewChannel,
	domain.PermSendMessages,
	domain.PermReadMessageHistory,
	domain.PermEmbedLinks,
	domain.PermAttachFiles,
	domain.PermAddReactions,
	domain.PermUseExternalEmojis,
	domain.PermUseExternalStickers,
	domain.PermUseApplicationCommands,
	domain.PermSendMessagesInThreads,
}

// granted lists the permissions a chat member holds. all is true for the chat creator.
func granted(member *models.ChatMember) (perms map[domain.Permission]bool, all bool) {
	perms = make(map[domain.Permission]bool)
	if member == nil {
		return perms, false
	}

	switch member.Type {
	case models.ChatMemberTypeOwner:
		return perms, true
	case models.ChatMemberTypeAdministrator:
		grant(perms, memberPermissions...)
		if admin := member.Administrator; admin != nil {
			grantIf(perms, admin.CanChangeInfo, domain.PermManageGuild, domain.PermManageChannels)
			grantIf(perms, admin.CanDeleteMessages, domain.PermManageMessages)
			grantIf(perms, admin.CanRestrictMembers,
				domain.PermKickMembers, domain.PermBanMembers, domain.PermModerateMembers)
			grantIf(perms, admin.CanPromoteMembers, domain.PermManageRoles)
			grantIf(perms, admin.CanInviteUsers, domain.PermCreateInstantInvite)
			grantIf(perms, admin.CanManageChat, domain.PermViewAuditLog, domain.PermMentionEveryone)
			grantIf(perms, admin.CanPinMessages, domain.PermManageThreads)
			grantIf(perms, admin.CanManageVideoChats, domain.PermMuteMembers, domain.PermMoveMembers)
		}
	case models.ChatMemberTypeMember:
		grant(perms, memberPermissions...)
	case models.ChatMemberTypeRestricted:
		if r := member.Restricted; r != nil && r.IsMember {
			grant(perms, domain.PermViewChannel, domain.PermReadMessageHistory)
			grantIf(perms, r.CanSendMessages, domain.PermSendMessages, domain.PermSendMessagesInThreads)
			grantIf(perms, r.CanAddWebPagePreviews, domain.PermEmbedLinks)
			grantIf(perms, r.CanSendDocuments || r.CanSendPhotos, domain.PermAttachFiles)
		}
	}

	return perms, false
}

func grant(perms map[domain.Permission]bool, names ...domain.Permission) {
	for _, name := range names {
		perms[name] = true
	}
}

func grantIf(perms map[domain.Permission]bool, cond bool, names ...domain.Permission) {
	if cond {
		grant(perms, names...)
	}
}

func missingFrom(member *models.ChatMember, perms []domain.Permission) []domain.Permission {
	held, all := granted(member)
	if all {
		return nil
	}

	var missing []domain.Permission
	for _, p := range perms {
		if !held[p] {
			missing = append(missing, p)
		}
	}

	return missing
}
