package identity

import (
	"log/slog"

	"github.com/dmitrymomot/cutegen/pkg/avatar"
	"github.com/dmitrymomot/cutegen/pkg/nickname"
)

// Config groups the avatar and nickname environment settings.
type Config struct {
	Avatar   avatar.Config
	Nickname nickname.Config
}

// FromConfig creates a generator from environment settings.
// Invalid avatar settings are reported as errors.
func FromConfig(cfg Config, log *slog.Logger) (*Generator, error) {
	aopts, err := cfg.Avatar.Options()
	if err != nil {
		return nil, err
	}
	return New(
		WithLogger(log),
		WithAvatarOptions(aopts...),
		WithNicknameOptions(*cfg.Nickname.Options()),
	), nil
}
