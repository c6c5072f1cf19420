package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultServerURL is the backend the app talks to. It is not read from the environment;
// only the --server flag overrides it.
const DefaultServerURL = "http://localhost:8080"

// Storage backends
const (
	BackendBolt   = "boltdb"
	BackendSQLite = "sqlite"
)

// Write policies of the bookmark store
const (
	PolicyOptimistic    = "optimistic"
	PolicyTransactional = "transactional"
)

// Environment variables
const (
	EnvDBPath      = "GUIDE_DB_PATH"
	EnvStorage     = "GUIDE_STORAGE"
	EnvCacheDir    = "GUIDE_CACHE_DIR"
	EnvLogLevel    = "GUIDE_LOG_LEVEL"
	EnvLogFormat   = "GUIDE_LOG_FORMAT"
	EnvTimeout     = "GUIDE_TIMEOUT"
	EnvWritePolicy = "GUIDE_WRITE_POLICY"
)

// Config holds the client settings
type Config struct {
	ServerURL      string
	DBPath         string
	StorageBackend string
	CacheDir       string
	LogLevel       string
	LogFormat      string
	WritePolicy    string
	Timeout        time.Duration
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ServerURL:      DefaultServerURL,
		DBPath:         "minahasa-guide.db",
		StorageBackend: BackendBolt,
		CacheDir:       defaultCacheDir(),
		LogLevel:       "warn",
		LogFormat:      "text",
		WritePolicy:    PolicyOptimistic,
		Timeout:        10 * time.Second,
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "minahasa-guide")
}

// Load reads .env files (".env" when none given, missing files are ignored)
// and applies GUIDE_* variables on top of Default.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	cfg := Default()

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.StorageBackend = strings.ToLower(v)
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWritePolicy); v != "" {
		cfg.WritePolicy = strings.ToLower(v)
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c Config) Validate() error {
	var errs []error

	if c.ServerURL == "" {
		errs = append(errs, errors.New("server url is empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path is empty"))
	}
	switch c.StorageBackend {
	case BackendBolt, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q (use %s or %s)", c.StorageBackend, BackendBolt, BackendSQLite))
	}
	switch c.WritePolicy {
	case PolicyOptimistic, PolicyTransactional:
	default:
		errs = append(errs, fmt.Errorf("unknown write policy %q (use %s or %s)", c.WritePolicy, PolicyOptimistic, PolicyTransactional))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	return errors.Join(errs...)
}
