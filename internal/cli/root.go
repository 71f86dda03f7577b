// Package cli implements the lettings admin command tree.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/lettings/internal/config"
	"github.com/me/lettings/internal/logging"
	"github.com/me/lettings/internal/session"
	"github.com/me/lettings/pkg/listings"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger   *slog.Logger
	store    session.Store
	sessions *session.Manager
	client   *listings.Client
)

// NewRootCmd creates the root cobra command for the lettings CLI.
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	root := &cobra.Command{
		Use:   "lettings",
		Short: "lettings — admin client for the residential listings backend",
		Long: "lettings browses communities and apartments, manages user accounts,\n" +
			"and bulk-imports apartment data from CSV against the listings API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			if cfgErr != nil {
				logger.Warn("config file ignored", "error", cfgErr)
			}

			dir, err := session.DefaultStoreDir()
			if err != nil {
				return err
			}
			store = session.NewFileStore(dir)
			sessions = session.NewManager(store)

			clientCfg := listings.DefaultConfig().
				WithBaseURL(flagServer).
				WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
				WithTokens(sessions.Token)
			client = listings.NewClient(clientCfg, logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", cfg.Server, "Backend URL (or LETTINGS_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newCommunitiesCmd(),
		newApartmentsCmd(),
		newUsersCmd(),
		newImportCmd(),
	)

	return root
}

// requireAdmin gates admin affordances the way the UI hides them. The
// check reads unverified token claims, so it is advisory: the backend
// re-validates every privileged request regardless of what passes here.
func requireAdmin() error {
	if !sessions.Authenticated() {
		return fmt.Errorf("not logged in (run 'lettings login')")
	}
	if !sessions.Admin() {
		return fmt.Errorf("admin role required for this command")
	}
	return nil
}
