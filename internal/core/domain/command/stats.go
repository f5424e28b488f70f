package command

import (
	"context"
	"fmt"
	"gatebot/internal/core/domain"
	"gatebot/internal/core/port"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

// Stats reports runtime information about the bot process to its owners.
type Stats struct {
	registry port.CommandRegistry
	started  time.Time
	policy   *domain.Policy
}

func NewStats(registry port.CommandRegistry, started time.Time) *Stats {
	return &Stats{
		registry: registry,
		started:  started,
		policy: &domain.Policy{
			Name:         "stats",
			Description:  "show bot runtime statistics",
			Category:     domain.CategoryOwner,
			Cooldown:     5 * time.Second,
			Enabled:      true,
			BotOwnerOnly: true,
			Interaction:  domain.InteractionPolicy{Enabled: true, Ephemeral: true},
		},
	}
}

func (s *Stats) Policy() *domain.Policy {
	return s.policy
}

const kb = 1024
const statsTemplate = `uptime: %s
commands registered: %d
allocated mem: %d KB
threads running: %d
heap: %d KB
stack: %d KB
compiled with %s for %s-%s
`
const metricCount = 3

func (s *Stats) RunMessage(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	return s.respond(ctx, inv, replier)
}

func (s *Stats) RunInteraction(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	return s.respond(ctx, inv, replier)
}

func (s *Stats) respond(ctx context.Context, inv *domain.Invocation, replier port.Replier) error {
	data := make([]metrics.Sample, metricCount)
	data[0] = metrics.Sample{Name: "/memory/classes/heap/objects:bytes"}
	data[1] = metrics.Sample{Name: "/memory/classes/heap/stacks:bytes"}
	data[2] = metrics.Sample{Name: "/memory/classes/total:bytes"}

	metrics.Read(data)

	for _, sample := range data {
		log.Debug().Str("invocation", inv.ID).Str("name", sample.Name).Msgf("%d", sample.Value.Uint64())
	}

	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	return replier.Reply(ctx, fmt.Sprintf(
		statsTemplate,
		domain.FormatDuration(time.Since(s.started)),
		len(s.registry.ListCommands()),
		data[2].Value.Uint64()/kb,
		runtime.NumGoroutine(),
		data[0].Value.Uint64()/kb,
		data[1].Value.Uint64()/kb,
		runtime.Version(), goos, goarch,
	))
}
