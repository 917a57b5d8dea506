package cutegen

import (
	"github.com/dmitrymomot/cutegen/pkg/avatar"
	"github.com/dmitrymomot/cutegen/pkg/config"
	"github.com/dmitrymomot/cutegen/pkg/identity"
	"github.com/dmitrymomot/cutegen/pkg/nickname"
)

// GenerateAvatar renders a cute avatar. See avatar.Generate.
func GenerateAvatar(opts ...avatar.Option) string {
	return avatar.Generate(opts...)
}

// GenerateNickname returns a cute display name. See nickname.Generate.
func GenerateNickname(opts *nickname.Options) (string, error) {
	return nickname.Generate(opts)
}

// DefaultWordList returns a copy of the built-in nickname vocabulary.
func DefaultWordList() nickname.WordList {
	return nickname.DefaultWordList()
}

// LoadConfig reads AVATAR_* and NICKNAME_* settings from the environment
// and the optional .env file.
func LoadConfig() (identity.Config, error) {
	var cfg identity.Config
	if err := config.Load(&cfg); err != nil {
		return identity.Config{}, err
	}
	return cfg, nil
}
