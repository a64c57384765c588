/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spmarsden/prettylog/cmd/installer"
)

// All contains all available commands for prettylog
var All = []*cobra.Command{
	InstallCmd,
	UninstallCmd,
	ExampleCmd,
}

var flags struct {
	version bool
}

func printVersionAndLicense(file io.Writer) {
	fmt.Fprintf(file, "prettylog version %v\n", Version)
	fmt.Fprintf(file, "%v\n", License)
}

// NewCli returns the root prettylog command
func NewCli() *cobra.Command {
	cobra.OnInitialize(initCobra)

	rootCmd := &cobra.Command{
		Use:           "prettylog",
		Short:         "This utility installs/uninstalls the PrettyLog package",
		Long:          "Please refer to the upstream repository for further information: https://github.com/spmarsden/prettylog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.version {
				printVersionAndLicense(cmd.OutOrStdout())
				return nil
			}

			return cmd.Help()
		},
	}

	defaultInstallRoot := os.Getenv("PRETTYLOG_ROOT")
	if defaultInstallRoot == "" {
		defaultInstallRoot = installer.DefaultInstallRoot()
	}

	rootCmd.Flags().BoolVarP(&flags.version, "version", "V", false, "Prints the version number of prettylog and exit")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Run prettylog silently, printing only error messages")
	rootCmd.PersistentFlags().BoolP("verbosiness", "v", false, "Sets verbosiness level: None (Errors + Info + Warnings), -v (all + Debugging). Specify \"-q\" for no messages")
	rootCmd.PersistentFlags().StringP("install-root", "R", defaultInstallRoot, "Specifies the install root folder. Defaults to the PRETTYLOG_ROOT environment variable or the directory holding the executable")
	_ = viper.BindPFlag("install-root", rootCmd.PersistentFlags().Lookup("install-root"))
	_ = viper.BindPFlag("verbosiness", rootCmd.PersistentFlags().Lookup("verbosiness"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	for _, cmd := range All {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func initCobra() {
	viper.AutomaticEnv()
}

// configureLogging maps the verbosiness flags onto the log level
func configureLogging(cmd *cobra.Command, args []string) error {
	verbosiness := viper.GetBool("verbosiness")
	quiet := viper.GetBool("quiet")
	if quiet && verbosiness {
		return errors.New("both \"-q\" and \"-v\" were specified, please pick only one verbosiness option")
	}

	log.SetLevel(log.InfoLevel)

	if quiet {
		log.SetLevel(log.ErrorLevel)
	}

	if verbosiness {
		log.SetLevel(log.DebugLevel)
	}

	return nil
}

// configureSetup configures logging and resolves the install root for
// the install/uninstall commands
func configureSetup(cmd *cobra.Command, args []string) error {
	if err := configureLogging(cmd, args); err != nil {
		return err
	}

	return installer.SetInstallRoot(viper.GetString("install-root"))
}
