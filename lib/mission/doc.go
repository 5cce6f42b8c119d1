// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package mission supplies the per-mission policy that the curation
// packages consult: preference lists, budgets, camera classification
// and optional hooks.
//
// A [Policy] is a plain struct of values and callbacks built eagerly by
// [MSL] or [M2020]. Nothing is initialized lazily and nothing is
// global; callers that want to tune a policy take a [Policy.Clone],
// edit it and run [Policy.Validate] before handing it to the
// comparator, group filter or selector.
package mission
