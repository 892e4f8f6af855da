// Package config holds the runtime configuration, loaded with viper from
// an optional tessera.yaml plus TESSERA_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	// LexiconPath is the directory holding lexicon word-list files.
	LexiconPath string
	// DefaultLexicon is the lexicon file (without extension) to load at
	// startup.
	DefaultLexicon string
	// Seed seeds all game randomness when non-empty; an empty seed means
	// nondeterministic play.
	Seed string
	// GamesPerMatchup is the default number of games per tournament
	// pairing.
	GamesPerMatchup int
	Debug           bool
}

// Load reads the configuration. Missing files are fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("tessera")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.tessera")
	v.SetEnvPrefix("tessera")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("lexicon-path", "./data/lexica")
	v.SetDefault("default-lexicon", "words")
	v.SetDefault("seed", "")
	v.SetDefault("games-per-matchup", 10)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	c := &Config{
		LexiconPath:     v.GetString("lexicon-path"),
		DefaultLexicon:  v.GetString("default-lexicon"),
		Seed:            v.GetString("seed"),
		GamesPerMatchup: v.GetInt("games-per-matchup"),
		Debug:           v.GetBool("debug"),
	}
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Msgf("loaded config: %+v", c)
	return c, nil
}

// SeedKey derives a 32-byte key for the random source from the seed
// string. An empty seed returns nil, which callers treat as "use system
// entropy".
func (c *Config) SeedKey() []byte {
	if c.Seed == "" {
		return nil
	}
	key := make([]byte, 0, 32)
	h := xxhash.Sum64String(c.Seed)
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			key = append(key, byte(h>>(8*j)))
		}
		h = xxhash.Sum64String(c.Seed + string(rune('a'+i)))
	}
	return key
}
