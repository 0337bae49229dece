package config

import (
	"fmt"
	"strings"
)

// StorageBackend selects the token persistence medium. Chosen once at
// construction; file storage survives restarts, memory is session-scoped,
// redis is shared across client instances.
type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageMemory StorageBackend = "memory"
	StorageRedis  StorageBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageBackend.
func (s *StorageBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "file", "memory", "redis":
		*s = StorageBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageBackend: %q (valid options: file, memory, redis)", v)
	}
}

// RedisConfig contains Redis connection settings for the shared token store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// StorageConfig groups token storage configuration.
type StorageConfig struct {
	// Backend selects the persistence medium.
	Backend StorageBackend `env:"TOKEN_STORAGE" envDefault:"file"`

	// Key is the well-known storage key the token lives under. For the file
	// backend it doubles as the file name when FilePath is unset.
	Key string `env:"TOKEN_KEY" envDefault:"sports_arena_token"`

	// FilePath overrides the default token file location (file backend).
	FilePath string `env:"TOKEN_FILE"`

	// Redis connection settings (redis backend).
	Redis RedisConfig `envPrefix:"REDIS_"`
}
