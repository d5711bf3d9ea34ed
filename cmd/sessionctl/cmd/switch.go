package cmd

import (
	"fmt"

	"github.com/jrsteele09/go-session-state/internal/config"
	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/jrsteele09/go-session-state/sessionstate"
	"github.com/spf13/cobra"
)

func newSwitchCmd(cfg config.Config, opts *rootOptions) *cobra.Command {
	var (
		tenantID string
		section  string
	)

	c := &cobra.Command{
		Use:   "switch",
		Short: "Sign in, select an authorized tenant and optionally a section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := signIn(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			if err := s.auth.SwitchTenant(cmd.Context(), tenantID); err != nil {
				return fmt.Errorf("switch to tenant %q: %w", tenantID, err)
			}
			if section != "" {
				s.store.SetCurrentSection(utils.Ptr(sessionstate.Section(section)))
			}
			return s.print(cmd.OutOrStdout(), "switched")
		},
	}

	c.Flags().StringVar(&tenantID, "tenant", "", "ID of the tenant to select")
	c.Flags().StringVar(&section, "section", "", "UI section to make current")
	_ = c.MarkFlagRequired("tenant")
	return c
}
