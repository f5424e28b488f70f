package command

import "gatebot/internal/core/domain"

// CommandEntry describes a prefix command for the public command list.
type CommandEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	Aliases     []string        `json:"aliases"`
	Usage       string          `json:"usage"`
}

// FunctionEntry describes an application command and its options.
type FunctionEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Options     []domain.Option `json:"options"`
}

type Catalog struct {
	Commands  []CommandEntry
	Functions []FunctionEntry
}

// Catalog lists the visible message commands and every interaction-enabled command, both sorted
// by name. Slices are never nil.
func (r *Registry) Catalog() Catalog {
	c := Catalog{
		Commands:  []CommandEntry{},
		Functions: []FunctionEntry{},
	}

	for _, cmd := range r.Commands() {
		p := cmd.Policy()

		if p.Enabled && !p.Hidden {
			aliases := p.Aliases
			if aliases == nil {
				aliases = []string{}
			}
			c.Commands = append(c.Commands, CommandEntry{
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
				Aliases:     aliases,
				Usage:       p.Usage,
			})
		}

		if p.Interaction.Enabled {
			options := p.Interaction.Options
			if options == nil {
				options = []domain.Option{}
			}
			c.Functions = append(c.Functions, FunctionEntry{
				Name:        p.Name,
				Description: p.Description,
				Options:     options,
			})
		}
	}

	return c
}
