/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

// Package installer orchestrates installs and uninstalls of the PrettyLog
// package: it provisions an isolated virtual environment under the install
// root and delegates the actual package work to the Python tooling.
package installer

import (
	"os"
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"

	errs "github.com/spmarsden/prettylog/cmd/errors"
	"github.com/spmarsden/prettylog/cmd/utils"
)

// Installation is a singleton variable that keeps the only reference
// to EnvInstallationType
var Installation *EnvInstallationType

// EnvInstallationType describes the install root layout: where the
// version file lives and where the virtual environment goes
type EnvInstallationType struct {
	// RootDir is the absolute install root, the directory holding the
	// package sources and version.txt
	RootDir string

	// VenvDir is the virtual environment directory inside RootDir
	VenvDir string

	// VersionFile is the single-line file holding the version string
	VersionFile string
}

// SetInstallRoot sets the working directory of the package installation
func SetInstallRoot(installRoot string) error {
	log.Debugf("Setting install root to \"%v\"", installRoot)

	if installRoot == "" {
		return errs.ErrInstallRootNotFound
	}

	installRoot, err := filepath.Abs(installRoot)
	if err != nil {
		log.Error(err)
		return errs.ErrInstallRootNotFound
	}

	if !utils.DirExists(installRoot) {
		return errs.ErrInstallRootDoesNotExist
	}

	Installation = &EnvInstallationType{
		RootDir:     installRoot,
		VenvDir:     filepath.Join(installRoot, "venv"),
		VersionFile: filepath.Join(installRoot, "version.txt"),
	}

	return nil
}

// DefaultInstallRoot resolves the directory holding the running executable,
// so behavior does not depend on the caller's working directory
func DefaultInstallRoot() string {
	executable, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}
	return filepath.Dir(executable)
}

// removalTargets lists the paths uninstall deletes. Currently just the
// virtual environment.
func (e *EnvInstallationType) removalTargets() []string {
	return []string{e.VenvDir}
}

// PipBin returns the path of the pip executable inside the virtual
// environment
func (e *EnvInstallationType) PipBin() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.VenvDir, "Scripts", "pip.exe")
	}
	return filepath.Join(e.VenvDir, "bin", "pip")
}

// pythonTool returns the name of the Python launcher used to create the
// virtual environment
func pythonTool() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}
