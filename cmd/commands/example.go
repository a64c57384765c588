/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package commands

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spmarsden/prettylog/cmd/format"
	"github.com/spmarsden/prettylog/cmd/ui"
	"github.com/spmarsden/prettylog/cmd/utils"
)

var exampleCmdFlags struct {
	// rows controls how many data rows the continuous table prints
	rows int

	// delay simulates work between rows
	delay time.Duration

	// noLogFile disables mirroring the output into the cache dir
	noLogFile bool
}

var ExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Demonstrate prettylog's formatting features",
	Long: `
Walk through prettylog's output features: one message per log level, a
static table, a continuous table filled row by row while work happens,
and a copy of everything in a log file under the user cache directory.

  $ prettylog example
  $ prettylog example -v --rows 5 --delay 1s`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: configureLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !exampleCmdFlags.noLogFile {
			logFile := filepath.Join(utils.CacheDir(), "prettylog", "example", "example.log")
			hook, err := format.NewFileHook(logFile)
			if err != nil {
				return err
			}
			defer hook.Close()
			log.AddHook(hook)
			log.Infof("Log is also saved to: %v", logFile)
		}

		log.Info("Welcome to the prettylog example!")

		log.Debug("This is a DEBUG message.")
		log.Info("This is an INFO message.")
		log.Warn("This is a WARNING message.")
		log.Error("This is an ERROR message.")

		ui.PrintTable(
			[]string{"Column 1", "Column 2", "Column 3"},
			[][]string{
				{"Row 1, Col 1", "Row 1, Col 2", "Row 1, Col 3"},
				{"Row 2, Col 1", "Row 2, Col 2", "Row 2, Col 3"},
				{"Row 3, Col 1", "Row 3, Col 2", "Row 3, Col 3"},
			},
			log.Info,
		)

		table, err := ui.NewContinuousTable(
			[]int{20, 20},
			[]string{ui.AlignRight, ui.AlignRight},
			log.Info,
		)
		if err != nil {
			return err
		}

		var progress *progressbar.ProgressBar
		if log.GetLevel() != log.ErrorLevel {
			progress = progressbar.Default(int64(exampleCmdFlags.rows), "I:")
		}

		table.Start()
		table.HeaderRow("Row", "Random Number")
		table.HR()
		for i := 0; i < exampleCmdFlags.rows; i++ {
			time.Sleep(exampleCmdFlags.delay)
			number := rand.Intn(100) + 1

			row := []string{fmt.Sprintf("Row %d", i+1), fmt.Sprintf("%d", number)}
			if number > 90 {
				// Make high rolls stand out
				table.RowTo(log.Warn, row...)
			} else {
				table.Row(row...)
			}

			if progress != nil {
				_ = progress.Add(1)
			}
		}
		table.End()

		return nil
	},
}

func init() {
	ExampleCmd.Flags().IntVar(&exampleCmdFlags.rows, "rows", 10, "number of rows in the continuous table")
	ExampleCmd.Flags().DurationVar(&exampleCmdFlags.delay, "delay", 150*time.Millisecond, "simulated work between rows")
	ExampleCmd.Flags().BoolVar(&exampleCmdFlags.noLogFile, "no-log-file", false, "do not mirror output into the cache directory")
}
