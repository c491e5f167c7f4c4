package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the vote and every recorded quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openCLI(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.store.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset store: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All data cleared.")
		return nil
	},
}
