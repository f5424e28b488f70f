package service

import (
	"context"
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

// Gate decides whether an invocation may reach a command's business logic. Checks run in a fixed
// order and the first failing check determines the rejection.
type Gate struct {
	host      port.Host
	owners    *OwnerSet
	cooldowns port.CooldownStore
	now       func() time.Time
}

func NewGate(host port.Host, owners *OwnerSet, cooldowns port.CooldownStore) (*Gate, error) {
	if host == nil {
		return nil, domain.ErrMissingHost
	}
	if cooldowns == nil {
		return nil, domain.ErrMissingCooldownStore
	}
	if owners == nil {
		owners = NewOwnerSet()
	}

	return &Gate{
		host:      host,
		owners:    owners,
		cooldowns: cooldowns,
		now:       time.Now,
	}, nil
}

const (
	onCooldown       = "You are on cooldown. You can use the command after %s"
	guildOwnerOnly   = "The `%s` command can only be used by the guild owner."
	botOwnerOnly     = "The `%s` command can only be used by the bot owner."
	nsfwOnly         = "The `%s` command can only be used in an NSFW channel."
	missingUserPerms = "You need %s for this command"
	missingBotPerms  = "I need %s for this command"
	missingArgsTitle = "Missing arguments"
)

// Evaluate runs every check against the invocation. It never records a cooldown; callers that
// go on to execute the command must call RecordUse.
func (g *Gate) Evaluate(ctx context.Context, policy *domain.Policy, inv *domain.Invocation) domain.Decision {
	if policy.Cooldown > 0 {
		remaining := g.Remaining(policy.Name, inv.ActorID, policy.Cooldown)
		if remaining > 0 {
			d := domain.Reject(domain.ReasonOnCooldown, fmt.Sprintf(onCooldown, domain.FormatDuration(remaining)))
			d.Remaining = remaining
			return d
		}
	}

	// interaction responses do not post into the channel
	if inv.Kind == domain.KindMessage && !g.host.CanSend(ctx, inv.ChannelID) {
		return domain.Reject(domain.ReasonCannotSend, "")
	}

	if policy.MinArgs > 0 && len(inv.Args) < policy.MinArgs {
		card := domain.Usage(policy, inv.Prefix, inv.Invoke, missingArgsTitle)
		d := domain.Reject(domain.ReasonMissingArguments, card.Description)
		d.Usage = &card
		return d
	}

	if policy.GuildOwnerOnly && !g.host.IsGuildOwner(ctx, inv.ActorID, inv.GuildID) {
		return domain.Reject(domain.ReasonNotGuildOwner, fmt.Sprintf(guildOwnerOnly, policy.Name))
	}

	if policy.BotOwnerOnly && !g.owners.IsOwner(inv.ActorID) {
		return domain.Reject(domain.ReasonNotBotOwner, fmt.Sprintf(botOwnerOnly, policy.Name))
	}

	if policy.NSFW && !g.host.IsNSFW(ctx, inv.ChannelID) {
		return domain.Reject(domain.ReasonChannelRestricted, fmt.Sprintf(nsfwOnly, policy.Name))
	}

	if len(policy.UserPermissions) > 0 {
		missing := g.host.MissingPermissions(ctx, inv.ActorID, inv.ChannelID, policy.UserPermissions)
		if len(missing) > 0 {
			return domain.Reject(domain.ReasonMissingUserPermissions,
				fmt.Sprintf(missingUserPerms, domain.FormatPermissions(missing)))
		}
	}

	if len(policy.BotPermissions) > 0 {
		missing := g.host.MissingPermissions(ctx, g.host.SelfID(), inv.ChannelID, policy.BotPermissions)
		if len(missing) > 0 {
			return domain.Reject(domain.ReasonMissingBotPermissions,
				fmt.Sprintf(missingBotPerms, domain.FormatPermissions(missing)))
		}
	}

	return domain.Allow()
}

// Remaining returns how long userID still has to wait before using command again. Entries whose
// cooldown has passed are evicted.
func (g *Gate) Remaining(command, userID string, cooldown time.Duration) time.Duration {
	key := cooldownKey(command, userID)

	last, ok := g.cooldowns.Load(key)
	if !ok {
		return 0
	}

	elapsed := g.now().Sub(last)
	if elapsed >= cooldown {
		log.Debug().Str("key", key).Msg("evicting expired cooldown")
		g.cooldowns.Evict(key, last)
		return 0
	}

	// a timestamp ahead of the clock must not extend the cooldown
	if elapsed < 0 {
		return cooldown
	}

	return cooldown - elapsed
}

// RecordUse starts the cooldown window of command for userID.
func (g *Gate) RecordUse(command, userID string) {
	g.cooldowns.Store(cooldownKey(command, userID), g.now())
}
