// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for Landform
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/nasa-ammos/landform/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// They default to "unknown" / "0.1.0-dev" in development builds and
// test runs. [Info] formats them for --version, [Full] adds the Go
// version and platform, and [Short] is the bare version recorded in
// curation reports. [Current] returns everything as a [Build] value.
package version
