// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The curation pipeline stamps reports with the time a run started and
// how long it took. Code that needs the time accepts a [Clock] instead
// of calling time.Now: [Real] in production, [Fake] in tests.
package clock
