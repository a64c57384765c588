/* SPDX-License-Identifier: Apache-2.0 */
/* Copyright Contributors to the prettylog project. */

package commands

// Version holds the version string printed by --version. It is set at
// build time via -ldflags "-X .../cmd/commands.Version=x.y.z".
var Version string

// License is a one line license notice printed alongside the version
var License = "SPDX-License-Identifier: Apache-2.0"
