/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package installer

import (
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CommandRunner runs one external tool to completion, streaming its
// output to the user. The installer only ever talks to the Python
// tooling through this interface.
type CommandRunner interface {
	Run(name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	log.Debugf("Running \"%v %v\"", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Runner is swapped out in tests to exercise failure modes without a
// Python toolchain present
var Runner CommandRunner = execRunner{}

// RemoveAll performs the recursive delete behind uninstall. Like Runner
// it is swapped out in tests, to provoke deletion failures the real
// file system will not produce reliably.
var RemoveAll = os.RemoveAll
