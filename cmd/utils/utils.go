/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package utils

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	errs "github.com/spmarsden/prettylog/cmd/errors"
)

// FileExists checks if filePath is an actual file in the local file system
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// DirExists checks if dirPath is an actual directory in the local file system
func DirExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && info.IsDir()
}

// EnsureDir recursevily creates a directory tree if it doesn't exist already
func EnsureDir(dirName string) error {
	log.Debugf("Ensuring \"%s\" directory exists", dirName)
	err := os.MkdirAll(dirName, 0755)
	if err != nil && !os.IsExist(err) {
		log.Error(err)
		return errs.ErrFailedCreatingDirectory
	}
	return nil
}

// CacheDir returns the per-user cache directory, honouring XDG_CACHE_HOME
// when set and falling back to ~/.cache otherwise
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	home, err := homedir.Dir()
	if err != nil {
		return ".cache"
	}
	return filepath.Join(home, ".cache")
}

// IsTerminalInteractive tells whether or not the current terminal is
// capable of complex interactions
func IsTerminalInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ExitOnError logs the error and exits with a non-zero code, doing
// nothing if err is nil
func ExitOnError(err error) {
	if err != nil {
		if !errs.AlreadyLogged(err) {
			log.Error(err)
		}
		os.Exit(-1)
	}
}
