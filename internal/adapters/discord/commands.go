package discord

import (
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// CommandSyncer is the subset of *discordgo.Session used to publish application commands.
type CommandSyncer interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand,
		options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var optionTypes = map[domain.OptionType]discordgo.ApplicationCommandOptionType{
	domain.OptionString:  discordgo.ApplicationCommandOptionString,
	domain.OptionInteger: discordgo.ApplicationCommandOptionInteger,
	domain.OptionBoolean: discordgo.ApplicationCommandOptionBoolean,
	domain.OptionUser:    discordgo.ApplicationCommandOptionUser,
	domain.OptionChannel: discordgo.ApplicationCommandOptionChannel,
}

const defaultDescription = "no description"

// ApplicationCommands converts every interaction-enabled command into its Discord definition.
func ApplicationCommands(cmds []port.Command) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand

	for _, cmd := range cmds {
		p := cmd.Policy()
		if !p.Interaction.Enabled {
			continue
		}

		def := &discordgo.ApplicationCommand{
			Name:        p.Name,
			Description: describe(p.Description),
		}

		for _, opt := range p.Interaction.Options {
			t, ok := optionTypes[opt.Type]
			if !ok {
				t = discordgo.ApplicationCommandOptionString
			}

			def.Options = append(def.Options, &discordgo.ApplicationCommandOption{
				Type:        t,
				Name:        opt.Name,
				Description: describe(opt.Description),
				Required:    opt.Required,
			})
		}

		defs = append(defs, def)
	}

	return defs
}

func describe(description string) string {
	if description == "" {
		return defaultDescription
	}
	return description
}

// SyncCommands replaces the application commands of appID with the registered ones. An empty
// guildID publishes them globally.
func SyncCommands(syncer CommandSyncer, appID, guildID string, cmds []port.Command) error {
	defs := ApplicationCommands(cmds)

	created, err := syncer.ApplicationCommandBulkOverwrite(appID, guildID, defs)
	if err != nil {
		return fmt.Errorf("failed to sync application commands: %w", err)
	}

	log.Info().Int("count", len(created)).Str("guild", guildID).Msg("application commands synced")
	return nil
}
