// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML run configuration for Landform curation.
//
// Configuration is loaded from a single file specified by either the
// LANDFORM_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery and no other source.
//
// The file may contain development, staging and production sections
// that override base values when [Config].Environment matches.
// Production defaults to strict identifier parsing.
//
// ${VAR} and ${VAR:-default} are expanded in output.path only.
//
// [Config.Apply] turns a mission's default [mission.Policy] into the
// tuned policy the curation pipeline runs with; unset preference and
// budget keys keep the mission defaults.
package config
