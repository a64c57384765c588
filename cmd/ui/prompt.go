/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package ui

import (
	"fmt"
)

// RemovalConfirmed bypasses the prompt when set, so tests and
// automation can answer it without a terminal
var RemovalConfirmed *bool

// ConfirmRemoval asks the user to confirm removal of target and returns
// whether they agreed. Anything other than "y" counts as a refusal.
func ConfirmRemoval(target string) bool {
	if RemovalConfirmed != nil {
		return *RemovalConfirmed
	}

	fmt.Printf("Remove \"%v\"? [y/N]: ", target)

	var input string
	_, _ = fmt.Scanln(&input)

	return input == "y" || input == "Y"
}
