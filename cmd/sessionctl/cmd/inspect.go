package cmd

import (
	"github.com/jrsteele09/go-session-state/internal/config"
	"github.com/spf13/cobra"
)

func newInspectCmd(cfg config.Config, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Sign in from the token and print the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := signIn(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			return s.print(cmd.OutOrStdout(), "signed-in")
		},
	}
}
