package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgebuild/forgecheck/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the forgecheck version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "forgecheck version %s\n", version.String())
			return err
		},
	}
}
