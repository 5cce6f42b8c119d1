// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package curate runs the product curation pipeline: raw product URLs
// are parsed into identifiers, reduced to the preferred copy of each
// observation by the group filter, collected into per-waypoint catalogs
// and trimmed to the mission's budgets.
//
// [Run] returns a [Result] listing the retained waypoints and, for
// every input that did not survive, the [Stage] that removed it and
// why. The result carries a BLAKE3 fingerprint of the retained
// (identifier, URL) set.
package curate
