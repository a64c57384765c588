/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package commands

import (
	"github.com/spf13/cobra"

	"github.com/spmarsden/prettylog/cmd/installer"
)

var uninstallCmdFlags struct {
	// nonInteractive skips the removal confirmation prompt
	nonInteractive bool

	// keepConfig keeps user configuration files around
	keepConfig bool
}

var UninstallCmd = &cobra.Command{
	Use:   "uninstall [-n] [-R <install root>]",
	Short: "Remove the PrettyLog virtual environment",
	Long: `
Remove the virtual environment from "<install root>/venv".

  $ prettylog uninstall
  $ prettylog uninstall -n

Removing an environment that does not exist is a no-op, not an error.
Specify "-n" to skip the confirmation prompt, e.g. when uninstall is
driven by another tool.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: configureSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return installer.Uninstall(uninstallCmdFlags.nonInteractive, uninstallCmdFlags.keepConfig)
	},
}

func init() {
	UninstallCmd.Flags().BoolVarP(&uninstallCmdFlags.nonInteractive, "non-interactive", "n", false, "do not ask for confirmation before removing the environment")
	UninstallCmd.Flags().BoolVar(&uninstallCmdFlags.keepConfig, "keep-config", false, "keep user configuration files")
}
