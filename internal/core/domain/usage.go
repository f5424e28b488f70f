package domain

import (
	"fmt"
	"strings"
)

// Usage builds the usage card for a command invoked as prefix+invoke. An empty invoke falls back
// to the command name and an empty title to DefaultUsageTitle.
func Usage(policy *Policy, prefix, invoke, title string) UsageCard {
	if invoke == "" {
		invoke = policy.Name
	}
	if title == "" {
		title = DefaultUsageTitle
	}

	sb := &strings.Builder{}

	if len(policy.Subcommands) > 0 {
		lines := make([]string, len(policy.Subcommands))
		for i, sub := range policy.Subcommands {
			lines[i] = fmt.Sprintf("%s %s%s %s: %s", Arrow, prefix, invoke, sub.Trigger, sub.Description)
		}
		sb.WriteString(strings.Join(lines, "\n"))
	} else {
		fmt.Fprintf(sb, "**Usage:**\n```\n%s\n```", UsageLine(policy, prefix, invoke))
	}

	if policy.Description != "" {
		fmt.Fprintf(sb, "\n**Help:** %s", policy.Description)
	}

	if policy.Cooldown > 0 {
		fmt.Fprintf(sb, "\n**Cooldown:** %s", FormatDuration(policy.Cooldown))
	}

	return UsageCard{Title: title, Description: sb.String()}
}

// UsageLine is the bare "<prefix><invoke> <usage>" string without trailing blanks.
func UsageLine(policy *Policy, prefix, invoke string) string {
	return strings.TrimRight(fmt.Sprintf("%s%s %s", prefix, invoke, policy.Usage), " ")
}
