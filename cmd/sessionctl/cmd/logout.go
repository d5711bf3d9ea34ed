package cmd

import (
	"github.com/jrsteele09/go-session-state/internal/config"
	"github.com/spf13/cobra"
)

func newLogoutCmd(cfg config.Config, opts *rootOptions) *cobra.Command {
	var reset bool

	c := &cobra.Command{
		Use:   "logout",
		Short: "Sign in, then log out, printing the state before and after",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := signIn(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			if err := s.print(cmd.OutOrStdout(), "signed-in"); err != nil {
				return err
			}

			if reset {
				s.store.Reset()
				return s.print(cmd.OutOrStdout(), "reset")
			}
			if err := s.auth.SignOut(cmd.Context()); err != nil {
				return err
			}
			return s.print(cmd.OutOrStdout(), "logged-out")
		},
	}

	c.Flags().BoolVar(&reset, "reset", false, "clear the selected tenant as well")
	return c
}
