package port

import (
	"context"
	"gatebot/internal/core/domain"
)

type Command interface {
	// Policy returns the static declaration the gate evaluates invocations against.
	Policy() *domain.Policy
}

// MessageRunner is implemented by commands that can be invoked with a prefixed chat message.
type MessageRunner interface {
	Command
	// RunMessage executes the command's business logic for a prefix invocation.
	RunMessage(ctx context.Context, inv *domain.Invocation, replier Replier) error
}

// InteractionRunner is implemented by commands that can be invoked as a platform interaction
// (e.g. a Discord slash command).
type InteractionRunner interface {
	Command
	// RunInteraction executes the command's business logic for an interaction invocation.
	RunInteraction(ctx context.Context, inv *domain.Invocation, replier Replier) error
}

type CommandRegistry interface {
	// Register validates and adds a new command to the registry.
	Register(cmd Command) error
	// Get retrieves a registered Command by name or alias, or returns an error if not found.
	Get(name string) (Command, error)
	// ListCommands returns the names of all registered commands, sorted.
	ListCommands() []string
	// Commands returns all registered commands sorted by name.
	Commands() []Command
}

type Dispatcher interface {
	// Dispatch gates the invocation and runs the command if it is allowed to.
	Dispatch(ctx context.Context, cmd Command, inv *domain.Invocation, replier Replier) error
}
