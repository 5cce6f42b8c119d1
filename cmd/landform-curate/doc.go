// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Landform-curate selects the rover observation products a terrain
// build should use.
//
// Given listings of product URLs, it decodes every identifier, keeps
// the best variant of each observation, groups the survivors by rover
// waypoint and trims them to the mission's budgets. The result is a
// report of retained products per waypoint, plus every rejected input
// and the stage that removed it.
//
// Subcommands:
//
//	curate    run the curation pipeline over listings
//	decode    show the decoded fields of product identifiers
//	rank      order product identifiers best first
//	version   print build information
//
// Exit status is 0 on success, 1 on failure and 2 on a usage error.
package main
