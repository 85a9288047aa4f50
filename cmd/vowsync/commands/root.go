package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/config"
	"github.com/vowsync/vowsync/internal/session"
	"github.com/vowsync/vowsync/internal/state"
	"github.com/vowsync/vowsync/pkg/logging"
)

var (
	configPath string
	baseURL    string
	homeDir    string

	app struct {
		client  *api.Client
		session *session.Session
		state   *state.State
	}
)

func Execute() error {
	root := &cobra.Command{
		Use:           "vowsync",
		Short:         "Wedding planning from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logging.Setup(cfg.Log.Level)

			if baseURL == "" {
				baseURL = cfg.Client.BaseURL
			}
			if homeDir == "" {
				homeDir = cfg.Client.TokenDir
			}
			if homeDir == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				homeDir = filepath.Join(dir, ".vowsync")
			}

			tokens, err := session.NewFileTokenStore(homeDir)
			if err != nil {
				return err
			}

			// The client asks the session for tokens and the session
			// logs in through the client, so wire through a late-bound
			// closure.
			var sess *session.Session
			client := api.New(baseURL, func(ctx context.Context) (string, error) {
				return sess.Token(ctx)
			})
			st := state.New(client)
			sess = session.New(client, tokens, st.Auth)

			app.client = client
			app.session = sess
			app.state = st
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&baseURL, "base", "", "API base URL (default from config)")
	root.PersistentFlags().StringVar(&homeDir, "home", "", "token dir (default ~/.vowsync)")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		todoCmd(), budgetCmd(), guestsCmd(), detailsCmd(),
		timelineCmd(), vendorsCmd(),
	)
	return root.Execute()
}
