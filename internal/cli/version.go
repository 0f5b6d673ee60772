package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/lantern"
)

const modulePath = "github.com/mesh-intelligence/lantern"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lantern version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lantern v%s\nmodule: %s\n", lantern.Version, modulePath)
			return nil
		},
	}
}
