// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package productfilter reduces a collection of product identifiers to
// one copy of each observation.
//
// [Filter.FilterGroups] runs the mission pre-filter and then six
// group-and-reduce passes. Each pass groups identifiers by a partial
// identifier (see [product.PartialID]) with more fields erased than the
// last, so that every group holds copies of one observation that
// differ only in the erased fields, and keeps the preferred members:
//
//   - version: the highest version
//   - range_map: point clouds suppress range maps of the same frame
//   - special: the best special processing code
//   - color: the preferred color class, then the best band
//   - eye: the preferred stereo eye, geometry products only
//   - linearity: the preferred linearity, chosen separately for
//     geometry and raster products, with masks following them
//
// Every pass is exported on its own. Output is always sorted by full
// identifier, so input order never affects the result.
package productfilter
