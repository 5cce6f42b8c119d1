// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package curate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nasa-ammos/landform/lib/clock"
	"github.com/nasa-ammos/landform/lib/digest"
	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/productfilter"
	"github.com/nasa-ammos/landform/lib/rank"
	"github.com/nasa-ammos/landform/lib/sitedrive"
)

// Stage names the pipeline step that removed an input.
type Stage string

const (
	StageParse  Stage = "parse"
	StageFilter Stage = "filter"
	StageSelect Stage = "select"
	StageBudget Stage = "budget"
)

// Stages lists the stages in pipeline order.
var Stages = []Stage{StageParse, StageFilter, StageSelect, StageBudget}

// Options configures a run.
type Options struct {
	// Policy is required.
	Policy *mission.Policy

	// Strict fails the run on the first malformed identifier.
	Strict bool

	// Parallel is passed to sitedrive.Selector.SetParallel.
	Parallel int

	// Logger receives per-product decisions. Nil discards them.
	Logger *slog.Logger

	// Clock stamps the result. Nil means clock.Real().
	Clock clock.Clock
}

// Product is a retained identifier and the URL chosen for it.
type Product struct {
	ID  product.ID
	URL string
}

// Waypoint is one retained catalog.
type Waypoint struct {
	SiteDrive sitedrive.SiteDrive
	RDRDir    string
	Sols      []int
	Wedges    []Product
	Textures  []Product
	Auxiliary []Product
}

// Len returns the number of products in the waypoint.
func (w Waypoint) Len() int {
	return len(w.Wedges) + len(w.Textures) + len(w.Auxiliary)
}

// Rejection records an input removed by the pipeline. ID is nil for
// inputs that did not parse.
type Rejection struct {
	Input  string
	ID     product.ID
	Stage  Stage
	Reason string
}

// Result is the outcome of a run.
type Result struct {
	Mission   product.Mission
	StartedAt time.Time
	Duration  time.Duration

	// Inputs is the number of URLs offered.
	Inputs int

	// Waypoints are the retained catalogs, most recent first.
	Waypoints []Waypoint

	// Rejected is in stage order, then input order within a stage.
	Rejected []Rejection

	Fingerprint digest.Hash
}

// Retained returns the number of retained products.
func (r *Result) Retained() int {
	n := 0
	for _, w := range r.Waypoints {
		n += w.Len()
	}
	return n
}

// RejectedBy returns the number of inputs each stage removed.
func (r *Result) RejectedBy() map[Stage]int {
	counts := make(map[Stage]int, len(Stages))
	for _, rejection := range r.Rejected {
		counts[rejection.Stage]++
	}
	return counts
}

// ErrNoPolicy is returned by Run when Options.Policy is nil.
var ErrNoPolicy = errors.New("curate: no mission policy")

// input is a parsed URL.
type input struct {
	url string
	id  product.ID
}

// Run curates inputs, which are product URLs, file names or bare
// identifiers. It returns an error for an invalid policy, for a
// malformed identifier in strict mode, or when ctx is cancelled
// between stages.
func Run(ctx context.Context, inputs []string, opts Options) (*Result, error) {
	if opts.Policy == nil {
		return nil, ErrNoPolicy
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Clock
	if now == nil {
		now = clock.Real()
	}

	result := &Result{
		Mission:   opts.Policy.Mission,
		StartedAt: now.Now(),
		Inputs:    len(inputs),
	}
	reject := func(in string, id product.ID, stage Stage, reason string) {
		result.Rejected = append(result.Rejected, Rejection{Input: in, ID: id, Stage: stage, Reason: reason})
	}

	// Parse.
	var parsed []input
	var ids []product.ID
	seen := make(map[string]bool)
	for _, raw := range inputs {
		id, err := product.Parse(raw)
		if err != nil {
			if opts.Strict {
				return nil, fmt.Errorf("parsing %q: %w", raw, err)
			}
			logger.Debug("skipping malformed identifier", "url", raw, "error", err)
			reject(raw, nil, StageParse, err.Error())
			continue
		}
		if id.Mission() != opts.Policy.Mission {
			reject(raw, id, StageParse, fmt.Sprintf("%s identifier under the %s policy", id.Mission(), opts.Policy.Mission))
			continue
		}
		parsed = append(parsed, input{url: raw, id: id})
		if !seen[id.FullID()] {
			seen[id.FullID()] = true
			ids = append(ids, id)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Filter.
	comparator := rank.New(opts.Policy)
	filter := productfilter.New(opts.Policy, comparator, logger)
	filtered := filter.Run(ids)
	best := filter.KeepBestVariant(filtered.Kept)
	dropPass := make(map[string]string)
	for _, drop := range filtered.Dropped {
		dropPass[drop.ID.FullID()] = drop.Pass
	}
	kept := make(map[string]bool, len(best))
	for _, id := range best {
		kept[id.FullID()] = true
	}
	for _, id := range filtered.Kept {
		if !kept[id.FullID()] {
			dropPass[id.FullID()] = productfilter.PassVariant
		}
	}
	for _, in := range parsed {
		if pass, dropped := dropPass[in.id.FullID()]; dropped {
			reject(in.url, in.id, StageFilter, "superseded in the "+pass+" pass")
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Select.
	selector := sitedrive.NewSelector(opts.Policy, logger)
	selector.SetParallel(opts.Parallel)
	for _, in := range parsed {
		if !kept[in.id.FullID()] {
			continue
		}
		if reason, ok := selector.Add(in.id, in.url); !ok {
			logger.Debug("product not selected", "id", in.id.FullID(), "url", in.url, "reason", reason)
			reject(in.url, in.id, StageSelect, reason)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Budget.
	limited := selector.ApplyMissionLimits()
	for _, drop := range limited.Drops {
		reject(drop.URL, drop.ID, StageBudget, drop.Reason)
	}

	var hashes []digest.Hash
	for _, catalog := range limited.Catalogs {
		waypoint := Waypoint{
			SiteDrive: catalog.SiteDrive(),
			RDRDir:    catalog.RDRDir(),
			Sols:      catalog.Sols(),
			Wedges:    products(catalog.Wedges()),
			Textures:  products(catalog.Textures()),
			Auxiliary: products(catalog.Auxiliary()),
		}
		for _, entry := range catalog.Entries() {
			hashes = append(hashes, digest.Entry(entry.ID.FullID(), entry.URL))
		}
		result.Waypoints = append(result.Waypoints, waypoint)
	}
	result.Fingerprint = digest.Fingerprint(hashes)
	result.Duration = clock.Since(now, result.StartedAt)

	logger.Info("curation complete",
		"mission", result.Mission.String(),
		"inputs", result.Inputs,
		"retained", result.Retained(),
		"waypoints", len(result.Waypoints),
		"fingerprint", result.Fingerprint.Short(),
	)
	return result, nil
}

func products(entries []sitedrive.Entry) []Product {
	out := make([]Product, len(entries))
	for i, e := range entries {
		out[i] = Product{ID: e.ID, URL: e.URL}
	}
	return out
}
