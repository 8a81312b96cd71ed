package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set via -ldflags at release time
var version = "dev"

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
)
