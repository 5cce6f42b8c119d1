// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package rank orders products that are copies of the same physical
// observation so that curation can keep the best one.
//
// [Comparator.Compare] evaluates a fixed list of named criteria and
// returns the first one that decides, as a [Result] carrying both the
// sign and the deciding [Criterion]. Three criteria are gates rather
// than preferences: products from different stereo camera groups,
// different product types (other than point cloud against range map)
// or different cameras are not comparable, and Compare reports a zero
// code naming the gate that stopped it.
//
// Every criterion compares a key derived from each product on its own,
// so the decided results are transitive. The final criterion compares
// full identifiers, leaving no ties between distinct products that
// pass the gates.
//
// [Comparator.Sort] extends the order to products that are not
// comparable by ordering gate keys instead of stopping, which gives a
// deterministic total order over any input.
package rank
