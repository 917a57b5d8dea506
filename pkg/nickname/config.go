package nickname

// Config holds nickname defaults loaded from the environment with config.Load.
type Config struct {
	WithEmoji          bool `env:"NICKNAME_WITH_EMOJI" envDefault:"false"`
	AllowReduplication bool `env:"NICKNAME_ALLOW_REDUPLICATION" envDefault:"false"`
	ForcePrefix        bool `env:"NICKNAME_FORCE_PREFIX" envDefault:"false"`
}

// Options converts the config to generation options using the built-in
// vocabulary and the default source.
func (c Config) Options() *Options {
	return &Options{
		WithEmoji:          c.WithEmoji,
		AllowReduplication: c.AllowReduplication,
		ForcePrefix:        c.ForcePrefix,
	}
}
