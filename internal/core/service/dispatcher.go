package service

import (
	"context"
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type runFunc func(ctx context.Context, inv *domain.Invocation, replier port.Replier) error

// Dispatcher puts every invocation through the gate and runs the command when it is allowed to.
type Dispatcher struct {
	gate    *Gate
	timeout time.Duration
}

func NewDispatcher(gate *Gate, timeout time.Duration) *Dispatcher {
	return &Dispatcher{gate: gate, timeout: timeout}
}

// Dispatch evaluates inv against the command's policy. Rejections are answered through replier and
// are not errors. Once a handler has run, with or without an error, its cooldown is recorded.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd port.Command, inv *domain.Invocation,
	replier port.Replier) (err error) {
	policy := cmd.Policy()

	l := log.With().
		Str("invocation", inv.ID).
		Str("command", policy.Name).
		Str("kind", string(inv.Kind)).
		Str("actor", inv.ActorID).
		Str("channel", inv.ChannelID).
		Logger()

	run, err := runnerFor(cmd, inv.Kind)
	if err != nil {
		l.Error().Err(err).Msg("cannot dispatch command")
		return err
	}

	decision := d.gate.Evaluate(ctx, policy, inv)
	if !decision.Proceed() {
		return reject(ctx, l, decision, replier)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if policy.Cooldown > 0 {
		defer d.gate.RecordUse(policy.Name, inv.ActorID)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", domain.ErrHandlerPanicked, policy.Name, r)
			l.Error().Err(err).Msg("recovered from handler panic")
		}
	}()

	l.Info().Strs("args", inv.Args).Msg("handling request")

	err = run(ctx, inv, replier)
	if err != nil {
		l.Error().Err(err).Msg("command failed")
		return fmt.Errorf("%s: %w", policy.Name, err)
	}

	return nil
}

func runnerFor(cmd port.Command, kind domain.InvocationKind) (runFunc, error) {
	policy := cmd.Policy()

	switch kind {
	case domain.KindMessage:
		if !policy.Enabled {
			return nil, fmt.Errorf("%w: %s", domain.ErrCommandDisabled, policy.Name)
		}
		if r, ok := cmd.(port.MessageRunner); ok {
			return r.RunMessage, nil
		}
	case domain.KindInteraction:
		if !policy.Interaction.Enabled {
			return nil, fmt.Errorf("%w: %s", domain.ErrCommandDisabled, policy.Name)
		}
		if r, ok := cmd.(port.InteractionRunner); ok {
			return r.RunInteraction, nil
		}
	}

	return nil, fmt.Errorf("%w: %s has no %s handler", domain.ErrNotImplemented, policy.Name, kind)
}

func reject(ctx context.Context, l zerolog.Logger, decision domain.Decision, replier port.Replier) error {
	if decision.Silent() {
		l.Debug().Str("reason", string(decision.Reason)).Msg("rejected silently")
		return nil
	}

	l.Info().Str("reason", string(decision.Reason)).Msg("rejected")

	var err error
	if decision.Usage != nil {
		err = replier.ReplyUsage(ctx, *decision.Usage)
	} else {
		err = replier.Reply(ctx, decision.Message)
	}

	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
