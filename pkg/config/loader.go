package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sievekit/sieve/pkg/charset"
	"github.com/sievekit/sieve/pkg/schema"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the settings struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into settings")

var defaultEnvLoaded sync.Once

// Settings holds the engine configuration read from the environment.
type Settings struct {
	// Mode is the policy for undeclared mapping keys: ignore, strict or
	// cleanup.
	Mode string `env:"SIEVE_MODE" envDefault:"ignore"`

	// FailEarly stops validation at the first failing sub-value.
	FailEarly bool `env:"SIEVE_FAIL_EARLY" envDefault:"false"`

	// Charset enables encoding validation against the named charset. Empty
	// leaves it off.
	Charset string `env:"SIEVE_CHARSET"`

	// MaxDepth bounds sequence nesting. Zero means unbounded.
	MaxDepth int `env:"SIEVE_MAX_DEPTH" envDefault:"0"`
}

// Load reads Settings from the environment. The default .env file is loaded
// once per process if it exists.
func Load() (Settings, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingConfig, err)
	}
	return s, nil
}

// MustLoad works like Load but panics when settings cannot be read.
func MustLoad() Settings {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load required settings: %v", err))
	}
	return s
}

// Options converts the settings into validator options. An unknown mode or
// charset name is reported here, before any validator is built.
func (s Settings) Options() ([]schema.Option, error) {
	mode, err := schema.ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}

	opts := []schema.Option{
		schema.WithMode(mode),
		schema.WithMaxDepth(s.MaxDepth),
	}
	if s.FailEarly {
		opts = append(opts, schema.WithFailEarly())
	}
	if s.Charset != "" {
		checker, err := charset.New(s.Charset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, schema.WithCharset(checker))
	}
	return opts, nil
}
