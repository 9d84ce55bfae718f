package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends
const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

const (
	DefaultPort         = 3318
	DefaultSiteURL      = "https://wherearethechildren.net"
	DefaultStoreTimeout = 3 * time.Second
)

type Config struct {
	Port         int
	StoreURL     string
	StoreType    string
	StoreToken   string
	StoreTimeout time.Duration
	SiteURL      string
	IPHashSalt   string
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeout string

	fs := flag.NewFlagSet("where-are-the-children", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreURL, "s", "", "Counter store URL (redis://, postgres://, or sqlite file)")
	fs.StringVar(&cfg.StoreType, "t", "", "Counter store type (redis, postgres, or sqlite)")
	fs.StringVar(&timeout, "store-timeout", "", "Per-call counter store timeout (e.g. 3s)")
	fs.StringVar(&cfg.SiteURL, "site-url", "", "Public site URL used in share links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.StoreToken, "store-token", "", "Counter store access token (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for hashing client IPs in logs (prefer env)")

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
			cfg.Port = DefaultPort
		}
	}

	if cfg.StoreURL == "" {
		cfg.StoreURL = firstEnv("STORE_URL", "UPSTASH_REDIS_REST_URL")
	}
	if cfg.StoreURL == "" {
		return Config{}, errors.New("store URL required (use -s or STORE_URL env)")
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
	}
	if cfg.StoreType == "" {
		cfg.StoreType = inferStoreType(cfg.StoreURL)
	}
	switch cfg.StoreType {
	case StoreRedis, StorePostgres, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unknown store type %q (want redis, postgres, or sqlite)", cfg.StoreType)
	}

	if timeout == "" {
		timeout = os.Getenv("STORE_TIMEOUT")
	}
	if timeout == "" {
		cfg.StoreTimeout = DefaultStoreTimeout
	} else {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid store timeout %q", timeout)
		}
		cfg.StoreTimeout = d
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = os.Getenv("SITE_URL")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	// Secrets - MUST be provided
	if cfg.StoreToken == "" {
		cfg.StoreToken = firstEnv("STORE_TOKEN", "UPSTASH_REDIS_REST_TOKEN")
	}
	if cfg.StoreType == StoreRedis && cfg.StoreToken == "" && !strings.Contains(cfg.StoreURL, "@") {
		return Config{}, errors.New("STORE_TOKEN required for redis store")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// inferStoreType guesses the backend from the URL scheme
func inferStoreType(url string) string {
	switch {
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return StoreRedis
	case strings.HasPrefix(url, "https://"):
		// Upstash hands out an https REST endpoint; the TCP endpoint shares its host
		return StoreRedis
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return StorePostgres
	default:
		return StoreSQLite
	}
}
