package domain

import (
	"fmt"
	"strings"
)

// ValidatePolicy checks a policy once, at registration time, and fills in the default category.
// Every error wraps ErrInvalidPolicy.
func ValidatePolicy(p *Policy) error {
	if p == nil {
		return fmt.Errorf("%w: policy is nil", ErrInvalidPolicy)
	}

	if p.Name == "" || p.Name != strings.ToLower(p.Name) {
		return fmt.Errorf("%w: command name must be a lowercase string, got %q", ErrInvalidPolicy, p.Name)
	}

	for _, alias := range p.Aliases {
		if alias == "" || alias != strings.ToLower(alias) {
			return fmt.Errorf("%w: alias %q of %s must be a lowercase string", ErrInvalidPolicy, alias, p.Name)
		}
	}

	if p.MinArgs < 0 {
		return fmt.Errorf("%w: %s has a negative minimum argument count", ErrInvalidPolicy, p.Name)
	}

	if p.Cooldown < 0 {
		return fmt.Errorf("%w: %s has a negative cooldown", ErrInvalidPolicy, p.Name)
	}

	for _, sub := range p.Subcommands {
		if strings.TrimSpace(sub.Trigger) == "" {
			return fmt.Errorf("%w: %s has a subcommand without trigger", ErrInvalidPolicy, p.Name)
		}
	}

	for _, perms := range [][]Permission{p.UserPermissions, p.BotPermissions} {
		for _, perm := range perms {
			if !perm.Known() {
				return fmt.Errorf("%w: %s requires unknown permission %q", ErrInvalidPolicy, p.Name, perm)
			}
		}
	}

	for _, opt := range p.Interaction.Options {
		if opt.Name == "" || opt.Name != strings.ToLower(opt.Name) {
			return fmt.Errorf("%w: option %q of %s must be a lowercase string", ErrInvalidPolicy, opt.Name, p.Name)
		}
	}

	if p.Category == "" {
		p.Category = CategoryNone
	}

	return nil
}

// Names returns the command name followed by its aliases.
func (p *Policy) Names() []string {
	return append([]string{p.Name}, p.Aliases...)
}
