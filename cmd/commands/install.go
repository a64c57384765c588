/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package commands

import (
	"github.com/spf13/cobra"

	"github.com/spmarsden/prettylog/cmd/installer"
)

var InstallCmd = &cobra.Command{
	Use:   "install [-R <install root>]",
	Short: "Install PrettyLog into a fresh virtual environment",
	Long: `
Install the PrettyLog package into an isolated virtual environment
under "<install root>/venv", in editable mode, so local edits to the
package sources take effect without reinstalling.

  $ prettylog install
  $ prettylog install -R path/to/prettylog

Any previous environment is removed first, so re-running install never
accumulates stale state. The version announced during the install is
read from "<install root>/version.txt".`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: configureSetup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return installer.Install()
	},
}
