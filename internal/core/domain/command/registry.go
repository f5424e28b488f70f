package command

import (
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	mu       sync.RWMutex
	commands map[string]port.Command
	aliases  map[string]string
}

func (r *Registry) Register(cmd port.Command) error {
	policy := cmd.Policy()
	if err := domain.ValidatePolicy(policy); err != nil {
		return err
	}

	if _, ok := cmd.(port.MessageRunner); policy.Enabled && !ok {
		return fmt.Errorf("%w: %s is enabled but has no message handler", domain.ErrNotImplemented, policy.Name)
	}
	if _, ok := cmd.(port.InteractionRunner); policy.Interaction.Enabled && !ok {
		return fmt.Errorf("%w: %s has interactions enabled but no interaction handler",
			domain.ErrNotImplemented, policy.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.commands == nil {
		r.commands = make(map[string]port.Command)
		r.aliases = make(map[string]string)
	}

	for _, name := range policy.Names() {
		if r.resolve(name) != "" {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCommand, name)
		}
	}

	log.Info().Str("handler", policy.Name).Strs("aliases", policy.Aliases).Msg("adding command handler to registry")
	r.commands[policy.Name] = cmd
	for _, alias := range policy.Aliases {
		r.aliases[alias] = policy.Name
	}

	return nil
}

// MustRegister registers every command and panics on the first invalid one.
func (r *Registry) MustRegister(cmds ...port.Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Get(name string) (port.Command, error) {
	log.Debug().Str("command", name).Msg("fetching command handler from registry")

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.commands == nil {
		return nil, domain.ErrRegistryNotInitialized
	}

	resolved := r.resolve(strings.ToLower(name))
	if resolved == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrCommandNotFound, name)
	}

	return r.commands[resolved], nil
}

func (r *Registry) resolve(name string) string {
	if _, ok := r.commands[name]; ok {
		return name
	}
	return r.aliases[name]
}

func (r *Registry) ListCommands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.commands))
	for k := range r.commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (r *Registry) Commands() []port.Command {
	names := r.ListCommands()

	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]port.Command, len(names))
	for i, name := range names {
		cmds[i] = r.commands[name]
	}

	return cmds
}

// ParseCommand splits a prefixed message into the invoked name and its arguments. ok is false when
// text does not start with prefix or names no command.
func ParseCommand(text, prefix string) (invoke string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(text, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}
