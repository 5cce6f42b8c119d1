// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework of landform-curate: a tree of
// [Command] values with pflag flag sets, structured help output, and
// the logger and exit-code conventions shared by every subcommand.
//
// Usage mistakes (unknown commands, bad flags, missing arguments) are
// returned as [UsageError] and exit with status 2. Other errors exit
// with status 1.
package cli
