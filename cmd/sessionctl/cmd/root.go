package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jrsteele09/go-session-state/auth"
	"github.com/jrsteele09/go-session-state/internal/config"
	"github.com/jrsteele09/go-session-state/internal/errors"
	"github.com/jrsteele09/go-session-state/sessionstate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

type rootOptions struct {
	token     string
	showToken bool
	noBanner  bool
}

// NewRootCmd builds the sessionctl command tree around cfg.
func NewRootCmd(cfg config.Config) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "sessionctl",
		Short: "Inspect and drive client session state from an access token",
		Long: `sessionctl signs in from a JWT access token and shows the resulting
session state: user, token, authorized tenants, selected tenant and section.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), cfg.GetLogLevel())
			if !opts.noBanner {
				printBanner(cmd.ErrOrStderr(), cfg.GetAppName())
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.token, "token", "", "JWT access token (defaults to $SESSION_ACCESS_TOKEN)")
	root.PersistentFlags().BoolVar(&opts.showToken, "show-token", false, "print the token instead of masking it")
	root.PersistentFlags().BoolVar(&opts.noBanner, "no-banner", false, "do not print the banner")

	root.AddCommand(
		newInspectCmd(cfg, opts),
		newSwitchCmd(cfg, opts),
		newLogoutCmd(cfg, opts),
	)
	return root
}

func configureLogging(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
}

// session wires a fresh store and authenticator and signs in from the token.
type session struct {
	store *sessionstate.Store
	auth  *auth.Authenticator
	opts  *rootOptions
}

func signIn(ctx context.Context, cfg config.Config, opts *rootOptions) (*session, error) {
	raw := strings.TrimSpace(opts.token)
	if raw == "" {
		raw = strings.TrimSpace(cfg.GetAccessToken())
	}
	if raw == "" {
		return nil, errors.Wrapf(errors.ErrNotAuthenticated, "no token: use --token or SESSION_ACCESS_TOKEN")
	}

	store := sessionstate.New()
	store.Subscribe(func(ev sessionstate.Event) {
		log.Debug().
			Str("event_id", ev.ID).
			Str("mutation", string(ev.Mutation)).
			Bool("authenticated", ev.State.Authenticated()).
			Msg("Session event")
	})

	s := &session{
		store: store,
		auth:  auth.NewAuthenticator(store, cfg),
		opts:  opts,
	}
	if _, err := s.auth.SignIn(ctx, &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) print(w io.Writer, label string) error {
	snap := s.store.Snapshot()
	if !s.opts.showToken {
		snap = snap.Redacted()
	}

	out := struct {
		State      string                `json:"state"`
		Consistent bool                  `json:"selectionConsistent"`
		Session    sessionstate.Snapshot `json:"session"`
	}{
		State:      label,
		Consistent: snap.SelectionConsistent(),
		Session:    snap,
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
