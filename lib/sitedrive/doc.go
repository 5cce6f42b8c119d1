// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package sitedrive groups products by rover waypoint and enforces
// the mission's product budgets.
//
// A [Selector] accumulates products with [Selector.Add] into one
// [Catalog] per [SiteDrive]. Add derives each product's sol (from the
// identifier, or from a /sol/NNNNN/ or /YYYY/DOY/ URL segment) and its
// canonical RDR directory, rejects entries that do not fit the
// catalog, classifies the rest as wedges, textures or auxiliary
// products, and resolves duplicate identifiers by extension priority
// or recency. Rejections are returned as human-readable reasons;
// nothing in Add panics or returns an error.
//
// [Selector.ApplyMissionLimits] then evicts products in three steps:
//
//  1. Per waypoint, wedges and textures are walked in temporal
//     preference order against the camera-family and per-waypoint caps.
//  2. Across waypoints, in descending SiteDrive order, the first
//     waypoint whose products would overflow a global cap is dropped
//     along with every waypoint after it.
//  3. Auxiliary geometry and raster products whose wedge or texture
//     sibling was dropped are removed. Masks are always kept.
//
// The first step may run concurrently across waypoints; the other two
// are sequential.
package sitedrive
