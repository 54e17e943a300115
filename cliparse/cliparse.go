package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	MaxLifetime   time.Duration
	IdleLimit     time.Duration
	SweepInterval time.Duration
}

const (
	defaultPort          = 8080
	defaultMaxLifetime   = 6 * time.Hour
	defaultIdleLimit     = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// ParseFlags validates flags, with environment variables as fallback.
// A .env file is honored when present.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("pointdeck", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.DurationVar(&cfg.MaxLifetime, "max-lifetime", 0, "Maximum room lifetime from creation")
	fs.DurationVar(&cfg.IdleLimit, "idle-limit", 0, "How long an empty room may stay idle")
	fs.DurationVar(&cfg.SweepInterval, "sweep-interval", 0, "How often expired rooms are swept")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	var err error
	if cfg.MaxLifetime, err = durationSetting(cfg.MaxLifetime, "ROOM_MAX_LIFETIME", defaultMaxLifetime); err != nil {
		return Config{}, err
	}
	if cfg.IdleLimit, err = durationSetting(cfg.IdleLimit, "ROOM_IDLE_LIMIT", defaultIdleLimit); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = durationSetting(cfg.SweepInterval, "SWEEP_INTERVAL", defaultSweepInterval); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	return cfg, nil
}

// durationSetting resolves a duration from its flag value, then its env
// variable, then the default. Negative values are rejected.
func durationSetting(flagVal time.Duration, envKey string, def time.Duration) (time.Duration, error) {
	if flagVal < 0 {
		return 0, errors.New(envKey + " must be positive")
	}
	if flagVal > 0 {
		return flagVal, nil
	}
	if raw := os.Getenv(envKey); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return 0, errors.New("invalid " + envKey + " env variable")
		}
		return d, nil
	}
	return def, nil
}
