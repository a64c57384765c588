/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package installer

import (
	log "github.com/sirupsen/logrus"

	errs "github.com/spmarsden/prettylog/cmd/errors"
	"github.com/spmarsden/prettylog/cmd/ui"
)

// Uninstall removes the virtual environment from the install root.
// Missing targets are a no-op, not an error. When nonInteractive is
// false the user is asked to confirm first. keepConfig only frames the
// log output, there is no separate deletion path for configuration.
func Uninstall(nonInteractive, keepConfig bool) error {
	if !nonInteractive && !ui.ConfirmRemoval(Installation.VenvDir) {
		return errs.ErrTerminatedByUser
	}

	for _, target := range Installation.removalTargets() {
		log.Infof("Removing \"%v\"", target)
		if err := RemoveAll(target); err != nil {
			log.Error(err)
			return errs.ErrRemovalDenied
		}
	}

	if keepConfig {
		log.Info("Configuration files are kept")
	}

	log.Info("Uninstall done")
	return nil
}
