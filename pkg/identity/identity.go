package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cutegen/pkg/avatar"
	"github.com/dmitrymomot/cutegen/pkg/logger"
	"github.com/dmitrymomot/cutegen/pkg/nickname"
	"github.com/dmitrymomot/cutegen/pkg/rng"
)

// ErrGenerationFailed wraps every error returned by the generator.
var ErrGenerationFailed = errors.New("failed to generate identity")

// nicknameStream keeps the nickname draws independent from the avatar draws
// for the same ID.
const nicknameStream = "nickname:"

// Identity is a generated placeholder identity.
type Identity struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// Generator produces identities. It is safe for concurrent use.
type Generator struct {
	log      *slog.Logger
	avatar   []avatar.Option
	nickname nickname.Options
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Without it the logger from the context is used.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithAvatarOptions sets the avatar options. WithSeed is always overridden
// by the identity ID.
func WithAvatarOptions(opts ...avatar.Option) Option {
	return func(g *Generator) { g.avatar = slices.Clone(opts) }
}

// WithNicknameOptions sets the nickname options. The source is always
// overridden by a stream seeded from the identity ID.
func WithNicknameOptions(opts nickname.Options) Option {
	return func(g *Generator) { g.nickname = opts }
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate creates a new identity with a random ID.
func (g *Generator) Generate(ctx context.Context) (Identity, error) {
	return g.FromSeed(ctx, uuid.NewString())
}

// FromSeed builds the identity for id. The same id and configuration always
// give the same identity.
func (g *Generator) FromSeed(ctx context.Context, id string) (Identity, error) {
	log := g.logger(ctx)

	nopts := g.nickname
	seed := nicknameStream + id
	nopts.Source = rng.New(seed)
	name, err := nickname.Generate(&nopts)
	if err != nil {
		log.ErrorContext(ctx, "nickname generation failed", logger.IdentityID(id), logger.Error(err))
		return Identity{}, errors.Join(ErrGenerationFailed, fmt.Errorf("nickname: %w", err))
	}

	svg := avatar.Generate(append(slices.Clip(g.avatar), avatar.WithSeed(id))...)

	log.DebugContext(ctx, "identity generated",
		logger.IdentityID(id),
		logger.Seed(seed),
		logger.Nickname(name),
		slog.Int("avatar_bytes", len(svg)),
	)

	return Identity{ID: id, Nickname: name, Avatar: svg}, nil
}

func (g *Generator) logger(ctx context.Context) *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return logger.FromContext(ctx).With(logger.Component("identity"))
}
