// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Landform packages.
//
// [Frame] builds Perseverance single-frame identifiers and the archive
// URLs they are listed under, so tests can state only the fields they
// care about. [WriteFile] writes a fixture into the test's temporary
// directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
