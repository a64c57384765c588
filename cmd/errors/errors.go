/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package errors

import (
	"errors"
)

// Is returns true if err is equals to target
func Is(err, target error) bool {
	return err == target
}

// AlreadyLogged returns true if the error log has already been logged
func AlreadyLogged(err error) bool {
	return err == ErrAlreadyLogged
}

var (
	// Errors related to install configuration
	ErrVersionFileUnreadable   = errors.New("version file is missing or unreadable")
	ErrInstallRootNotFound     = errors.New("no install root specified. Either the environment PRETTYLOG_ROOT needs to be set or the path specified using the command line option -R/--install-root string")
	ErrInstallRootDoesNotExist = errors.New("the specified install root directory does NOT exist! Please take a moment to review if the value is correct")

	// Errors related to the virtual environment
	ErrFailedCreatingEnvironment = errors.New("failed to create the virtual environment")
	ErrFailedInstallingPackage   = errors.New("failed to install the package into the virtual environment")

	// Errors related to file system
	ErrRemovalDenied           = errors.New("file system denied removal of the target")
	ErrFailedCreatingDirectory = errors.New("fail to create directory")

	// Errors related to table rendering
	ErrBadTableLayout = errors.New("bad table layout: column widths must be positive and alignments must be \"<\", \">\" or \"^\", with one alignment per column")

	// Hack to allow multiple error logs while still avoiding duplicating the last error log
	ErrAlreadyLogged = errors.New("already logged")

	// Error/Flag to detect when a user has requested early termination
	ErrTerminatedByUser = errors.New("terminated by user request")
)
