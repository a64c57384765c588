/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package installer

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	errs "github.com/spmarsden/prettylog/cmd/errors"
)

// Install produces a working, isolated installation of the package,
// discarding any prior installation first. The sequence is strictly
// ordered: read version, uninstall, create the virtual environment,
// install the package in editable mode. Any failure aborts the rest
// and leaves whatever state the failed step produced.
func Install() error {
	version, err := Installation.readVersion()
	if err != nil {
		return err
	}

	log.Infof("Installing PrettyLog %v", version)

	// Clean install: the old environment must be gone before the new
	// one is created
	if err := Uninstall(true, true); err != nil {
		return err
	}

	log.Infof("Creating virtual environment in \"%v\"", Installation.VenvDir)
	if err := Runner.Run(pythonTool(), "-m", "venv", Installation.VenvDir); err != nil {
		log.Error(err)
		return errs.ErrFailedCreatingEnvironment
	}

	log.Info("Installing the package in editable mode")
	if err := Runner.Run(Installation.PipBin(), "install", "--editable", Installation.RootDir); err != nil {
		log.Error(err)
		return errs.ErrFailedInstallingPackage
	}

	log.Infof("PrettyLog %v installed", version)
	return nil
}

// readVersion reads the version string used in install announcements.
// The content is display-only, no parsing happens here.
func (e *EnvInstallationType) readVersion() (string, error) {
	content, err := os.ReadFile(e.VersionFile)
	if err != nil {
		log.Error(err)
		return "", errs.ErrVersionFileUnreadable
	}
	return strings.TrimSpace(string(content)), nil
}
