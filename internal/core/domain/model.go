package domain

import "time"

type Category string

const (
	CategoryAdmin       Category = "ADMIN"
	CategoryAutomod     Category = "AUTOMOD"
	CategoryEconomy     Category = "ECONOMY"
	CategoryFun         Category = "FUN"
	CategoryImage       Category = "IMAGE"
	CategoryInformation Category = "INFORMATION"
	CategoryInvite      Category = "INVITE"
	CategoryModeration  Category = "MODERATION"
	CategoryNone        Category = "NONE"
	CategoryOwner       Category = "OWNER"
	CategorySocial      Category = "SOCIAL"
	CategoryTicket      Category = "TICKET"
	CategoryUtility     Category = "UTILITY"
)

type SubCommand struct {
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
}

type OptionType string

const (
	OptionString  OptionType = "string"
	OptionInteger OptionType = "integer"
	OptionBoolean OptionType = "boolean"
	OptionUser    OptionType = "user"
	OptionChannel OptionType = "channel"
)

// Option describes a single argument of the interaction variant of a command.
type Option struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        OptionType `json:"type"`
	Required    bool       `json:"required"`
}

type InteractionPolicy struct {
	Enabled   bool
	Ephemeral bool
	Options   []Option
}

// Policy is the static declaration of a command. The zero value of every field is its default,
// with the exception of Name, which is required.
type Policy struct {
	Name        string
	Description string
	Category    Category
	Cooldown    time.Duration

	// Enabled toggles the prefix (message) variant of the command.
	Enabled         bool
	Aliases         []string
	Usage           string
	MinArgs         int
	Subcommands     []SubCommand
	UserPermissions []Permission
	BotPermissions  []Permission
	GuildOwnerOnly  bool
	BotOwnerOnly    bool
	NSFW            bool
	Hidden          bool

	Interaction InteractionPolicy
}

type InvocationKind string

const (
	KindMessage     InvocationKind = "message"
	KindInteraction InvocationKind = "interaction"
)

type Invocation struct {
	ID        string
	Kind      InvocationKind
	ActorID   string
	ActorName string
	ChannelID string
	GuildID   string
	Args      []string
	Invoke    string
	Prefix    string
}

type Reason string

const (
	ReasonOnCooldown             Reason = "ON_COOLDOWN"
	ReasonCannotSend             Reason = "CANNOT_SEND"
	ReasonMissingArguments       Reason = "MISSING_ARGUMENTS"
	ReasonNotGuildOwner          Reason = "NOT_GUILD_OWNER"
	ReasonNotBotOwner            Reason = "NOT_BOT_OWNER"
	ReasonChannelRestricted      Reason = "CHANNEL_RESTRICTED"
	ReasonMissingUserPermissions Reason = "MISSING_USER_PERMISSIONS"
	ReasonMissingBotPermissions  Reason = "MISSING_BOT_PERMISSIONS"
)

// Decision is the outcome of evaluating an invocation against a policy. The zero value proceeds.
type Decision struct {
	Reason    Reason
	Message   string
	Usage     *UsageCard
	Remaining time.Duration
}

func Allow() Decision {
	return Decision{}
}

func Reject(reason Reason, message string) Decision {
	return Decision{Reason: reason, Message: message}
}

func (d Decision) Proceed() bool {
	return d.Reason == ""
}

// Silent reports a rejection that must not be answered in the channel.
func (d Decision) Silent() bool {
	return d.Reason == ReasonCannotSend
}

type UsageCard struct {
	Title       string
	Description string
}
