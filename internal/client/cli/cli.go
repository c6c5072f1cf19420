package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/minahasa-guide/internal/catalog"
	"github.com/iudanet/minahasa-guide/internal/client/api"
	"github.com/iudanet/minahasa-guide/internal/client/auth"
	"github.com/iudanet/minahasa-guide/internal/client/bookmarks"
	"github.com/iudanet/minahasa-guide/internal/client/iocli"
	"github.com/iudanet/minahasa-guide/internal/client/notify"
	"github.com/iudanet/minahasa-guide/internal/client/session"
	"github.com/iudanet/minahasa-guide/internal/client/storage"
	"github.com/iudanet/minahasa-guide/internal/config"
	"github.com/iudanet/minahasa-guide/internal/logging"
	"github.com/iudanet/minahasa-guide/internal/viewer"
	"github.com/iudanet/minahasa-guide/internal/viewer/assets"
)

// viewAspect соотношение сторон текстового холста (символ примерно вдвое выше своей ширины)
const viewAspect = 2.0

// globalFlags значения persistent флагов
type globalFlags struct {
	server      string
	db          string
	storage     string
	cacheDir    string
	logLevel    string
	logFormat   string
	writePolicy string
	timeout     time.Duration
}

// Cli связывает экраны приложения (команды) с клиентскими сервисами
type Cli struct {
	io          iocli.IO
	logOut      io.Writer
	logger      *slog.Logger
	kv          storage.KVStore
	apiClient   api.ClientAPI
	sessions    *session.Store
	authService *auth.Service
	bookmarks   *bookmarks.Store
	catalog     *catalog.Catalog
	notifier    *notify.Center
	viewer      *viewer.Viewer
	envFiles    []string
	flags       globalFlags
	cfg         config.Config
}

// Option настраивает Cli
type Option func(*Cli)

// WithLogOutput задает поток для логов (по умолчанию stderr)
func WithLogOutput(w io.Writer) Option {
	return func(c *Cli) {
		c.logOut = w
	}
}

// WithEnvFiles задает .env файлы вместо ./.env
func WithEnvFiles(files ...string) Option {
	return func(c *Cli) {
		c.envFiles = files
	}
}

// WithAPIClient заменяет HTTP клиент API (используется в тестах)
func WithAPIClient(apiClient api.ClientAPI) Option {
	return func(c *Cli) {
		c.apiClient = apiClient
	}
}

// New создает CLI поверх терминала io
func New(io iocli.IO, opts ...Option) *Cli {
	c := &Cli{
		io:     io,
		logOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command возвращает корневую команду
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "guide",
		Short: "North Minahasa travel and culture guide",
		Long: `Guide to the places and traditions of North Minahasa.

Browse the catalog, bookmark places, look at 3D models of cultural objects
and manage your account.`,
		Example: `  # Log in and bookmark a place
  guide login
  guide save 1

  # Use another backend
  guide --server https://example.com login`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	defaults := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.server, "server", defaults.ServerURL, "backend URL")
	pf.StringVar(&c.flags.db, "db", defaults.DBPath, "path to the local database ($"+config.EnvDBPath+")")
	pf.StringVar(&c.flags.storage, "storage", defaults.StorageBackend, "storage backend: boltdb or sqlite ($"+config.EnvStorage+")")
	pf.StringVar(&c.flags.cacheDir, "cache-dir", defaults.CacheDir, "directory for cached 3D models ($"+config.EnvCacheDir+")")
	pf.StringVar(&c.flags.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error ($"+config.EnvLogLevel+")")
	pf.StringVar(&c.flags.logFormat, "log-format", defaults.LogFormat, "log format: text, plain, json ($"+config.EnvLogFormat+")")
	pf.StringVar(&c.flags.writePolicy, "write-policy", defaults.WritePolicy, "bookmark write policy: optimistic or transactional ($"+config.EnvWritePolicy+")")
	pf.DurationVar(&c.flags.timeout, "timeout", defaults.Timeout, "request timeout ($"+config.EnvTimeout+")")

	root.AddGroup(
		&cobra.Group{ID: "account", Title: "Account"},
		&cobra.Group{ID: "explore", Title: "Explore"},
	)

	for _, cmd := range []*cobra.Command{
		c.newRegisterCmd(),
		c.newVerifyOTPCmd(),
		c.newResendOTPCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newStatusCmd(),
		c.newForgotPasswordCmd(),
		c.newResetPasswordCmd(),
	} {
		cmd.GroupID = "account"
		root.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		c.newCatalogCmd(),
		c.newShowCmd(),
		c.newSaveCmd(),
		c.newUnsaveCmd(),
		c.newSavedCmd(),
		c.newViewCmd(),
		c.newServeViewerCmd(),
	} {
		cmd.GroupID = "explore"
		root.AddCommand(cmd)
	}

	return root
}

// setup читает конфигурацию и открывает хранилище. Флаги важнее окружения.
func (c *Cli) setup(cmd *cobra.Command) error {
	if c.kv != nil {
		return nil
	}
	ctx := cmd.Context()

	cfg, err := config.Load(c.envFiles...)
	if err != nil {
		return err
	}
	c.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(c.logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	c.logger = logger

	kv, err := openStore(ctx, cfg.StorageBackend, cfg.DBPath)
	if err != nil {
		return err
	}
	c.kv = kv

	c.notifier = notify.NewCenter(c.showNotification)
	c.sessions = session.NewStore(kv)
	if c.apiClient == nil {
		c.apiClient = api.NewClient(cfg.ServerURL, c.sessions, api.WithTimeout(cfg.Timeout), api.WithLogger(logger))
	}
	c.authService = auth.NewService(c.apiClient, c.sessions, logger)

	c.catalog, err = catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	policy := bookmarks.WritePolicyOptimistic
	if cfg.WritePolicy == config.PolicyTransactional {
		policy = bookmarks.WritePolicyTransactional
	}
	c.bookmarks = bookmarks.NewStore(kv, bookmarks.WithWritePolicy(policy), bookmarks.WithLogger(logger))
	if err := c.bookmarks.Init(ctx); err != nil {
		// Список закладок недоступен, но приложение продолжает работать
		c.notifier.Show(notify.LevelWarning, "Saved places could not be loaded, starting with an empty list", 0)
	}

	c.viewer = viewer.New(assets.FS, filepath.Join(cfg.CacheDir, "models"), viewAspect, logger)

	logger.DebugContext(ctx, "client ready",
		"server", cfg.ServerURL,
		"storage", cfg.StorageBackend,
		"db", cfg.DBPath,
	)
	return nil
}

func (c *Cli) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = c.flags.server
	}
	if flags.Changed("db") {
		cfg.DBPath = c.flags.db
	}
	if flags.Changed("storage") {
		cfg.StorageBackend = c.flags.storage
	}
	if flags.Changed("cache-dir") {
		cfg.CacheDir = c.flags.cacheDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = c.flags.logFormat
	}
	if flags.Changed("write-policy") {
		cfg.WritePolicy = c.flags.writePolicy
	}
	if flags.Changed("timeout") {
		cfg.Timeout = c.flags.timeout
	}
}

// showNotification выводит уведомление в терминал при появлении
func (c *Cli) showNotification(e notify.Event) {
	if e.Dismissed {
		return
	}
	c.io.Printf("%s %s\n", notificationIcon(e.Level), e.Message)
}

func notificationIcon(level notify.Level) string {
	switch level {
	case notify.LevelSuccess:
		return "✓"
	case notify.LevelWarning:
		return "⚠️ "
	case notify.LevelError:
		return "✗"
	default:
		return "•"
	}
}

// Close снимает таймеры уведомлений и закрывает хранилище
func (c *Cli) Close() error {
	if c.notifier != nil {
		c.notifier.Close()
	}
	if c.bookmarks != nil {
		c.bookmarks.Dispose()
	}
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

// Execute выполняет команду с аргументами args (используется в тестах и main)
func (c *Cli) Execute(ctx context.Context, args []string) error {
	root := c.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
