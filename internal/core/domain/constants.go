package domain

import "errors"

var (
	ErrSendingReplyFailed     = errors.New("failed to send reply")
	ErrInvalidPolicy          = errors.New("invalid command policy")
	ErrMissingHost            = errors.New("a host must be specified")
	ErrMissingCooldownStore   = errors.New("a cooldown store must be specified")
	ErrNotImplemented         = errors.New("handler not implemented")
	ErrCommandDisabled        = errors.New("command disabled")
	ErrHandlerPanicked        = errors.New("handler panicked")
	ErrDuplicateCommand       = errors.New("command already registered")
	ErrCommandNotFound        = errors.New("command not found")
	ErrRegistryNotInitialized = errors.New("can't fetch command, registry not initialized")
)

// Arrow prefixes each subcommand line of a usage card.
const Arrow = "➤"

const DefaultUsageTitle = "Command Usage"
