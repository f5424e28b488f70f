package command

import (
	"context"
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

type Help struct {
	registry port.CommandRegistry
	prefix   string
	policy   *domain.Policy
}

func NewHelp(registry port.CommandRegistry, prefix string) *Help {
	return &Help{
		registry: registry,
		prefix:   prefix,
		policy: &domain.Policy{
			Name:        "help",
			Description: "command help menu",
			Category:    domain.CategoryUtility,
			Enabled:     true,
			Aliases:     []string{"h"},
			Usage:       "[command]",
			BotPermissions: []domain.Permission{
				domain.PermEmbedLinks,
			},
			Interaction: domain.InteractionPolicy{
				Enabled:   true,
				Ephemeral: true,
				Options: []domain.Option{{
					Name:        "command",
					Description: "name of the command",
					Type:        domain.OptionString,
				}},
			},
		},
	}
}

func (h *Help) Policy() *domain.Policy {
	return h.policy
}

const noSuchCommand = "No matching command found for `%s`"

func (h *Help) RunMessage(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	return h.respond(ctx, inv, replier)
}

func (h *Help) RunInteraction(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	return h.respond(ctx, inv, replier)
}

func (h *Help) respond(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	// interactions list the prefix commands, messages use the prefix they arrived with
	prefix := h.prefix
	if inv.Kind == domain.KindMessage && inv.Prefix != "" {
		prefix = inv.Prefix
	}

	if len(inv.Args) == 0 || inv.Args[0] == "" {
		return replier.ReplyUsage(ctx, domain.UsageCard{Title: "Help Menu", Description: h.menu(prefix)})
	}

	name := strings.ToLower(inv.Args[0])
	cmd, err := h.registry.Get(name)
	if err != nil || cmd.Policy().Hidden {
		log.Debug().Err(err).Str("invocation", inv.ID).Str("lookup", name).Msg("help lookup failed")
		return replier.Reply(ctx, fmt.Sprintf(noSuchCommand, name))
	}

	return replier.ReplyUsage(ctx, domain.Usage(cmd.Policy(), prefix, name, ""))
}

// menu lists every visible message command grouped by category.
func (h *Help) menu(prefix string) string {
	byCategory := make(map[domain.Category][]string)
	for _, cmd := range h.registry.Commands() {
		p := cmd.Policy()
		if p.Hidden || !p.Enabled {
			continue
		}

		line := fmt.Sprintf("`%s%s`", prefix, p.Name)
		if p.Description != "" {
			line += " - " + p.Description
		}
		byCategory[p.Category] = append(byCategory[p.Category], line)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)

	sb := &strings.Builder{}
	for i, c := range categories {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(sb, "**%s**\n%s", c, strings.Join(byCategory[domain.Category(c)], "\n"))
	}

	return sb.String()
}
