package service

import (
	"errors"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// OwnerSet holds the identifiers of the users allowed to run bot-owner-only commands.
type OwnerSet struct {
	ids []string
}

func NewOwnerSet(ids ...string) *OwnerSet {
	return &OwnerSet{ids: ids}
}

// LoadOwnerSet reads bot.owner_ids from the configuration.
func LoadOwnerSet() (*OwnerSet, error) {
	var ids []string

	err := viper.UnmarshalKey("bot.owner_ids", &ids)
	if err != nil {
		return nil, errors.New("failed to load bot owner IDs")
	}

	if len(ids) == 0 {
		log.Warn().Msg("no bot owners configured, owner-only commands are unusable")
	}

	return NewOwnerSet(ids...), nil
}

func (o *OwnerSet) IsOwner(userID string) bool {
	if o == nil || userID == "" {
		return false
	}

	return slices.Contains(o.ids, userID)
}
