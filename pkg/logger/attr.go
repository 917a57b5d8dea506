package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the emitting package or subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Seed records the generation seed under the key "seed".
func Seed(seed string) slog.Attr {
	return slog.String("seed", seed)
}

// IdentityID records a placeholder identity ID under the key "identity_id".
func IdentityID(id string) slog.Attr {
	return slog.String("identity_id", id)
}

// Nickname records a generated display name under the key "nickname".
func Nickname(name string) slog.Attr {
	return slog.String("nickname", name)
}
