package cmd

import (
	"fmt"

	"github.com/0xb10ckdev/Aera-Vault-V2/internal/version"
	"github.com/spf13/cobra"
)

var runVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of save-abis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nCommit: %s\n", version.GetVersion(), version.GetCommit())
	},
}
