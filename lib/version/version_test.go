// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		dirty  string
		want   string
	}{
		{name: "clean", commit: "abc1234", dirty: "false", want: "0.1.0-dev (abc1234, unknown)"},
		{name: "dirty", commit: "abc1234", dirty: "true", want: "0.1.0-dev (abc1234-dirty, unknown)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origCommit, origDirty := GitCommit, GitDirty
			defer func() { GitCommit, GitDirty = origCommit, origDirty }()
			GitCommit, GitDirty = tt.commit, tt.dirty

			if got := Info(); got != tt.want {
				t.Errorf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, Info()) || !strings.Contains(full, "Go: go") {
		t.Errorf("Full() = %q", full)
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
}

func TestCurrent(t *testing.T) {
	origDirty := GitDirty
	defer func() { GitDirty = origDirty }()
	GitDirty = "true"

	b := Current()
	if !b.Dirty || b.Version != Version || b.Commit != GitCommit {
		t.Errorf("Current() = %+v", b)
	}
	if !strings.Contains(b.Platform, "/") || !strings.HasPrefix(b.Go, "go") {
		t.Errorf("unexpected runtime fields %q %q", b.Go, b.Platform)
	}
}
