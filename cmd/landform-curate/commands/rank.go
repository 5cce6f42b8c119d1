// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/rank"
)

type rankedProduct struct {
	Rank int    `json:"rank"`
	ID   string `json:"id"`

	// Over is the criterion that placed this product ahead of the next
	// one, or the gate that kept them apart. Empty for the last product
	// and for exact ties.
	Over    string `json:"over,omitempty"`
	Decided bool   `json:"decided,omitempty"`
}

func rankCommand(stdout io.Writer) *cli.Command {
	var (
		missionName string
		outputJSON  bool
	)

	return &cli.Command{
		Name:    "rank",
		Summary: "Order product identifiers best first",
		Description: `Sort product identifiers best first under a mission policy and show,
for each adjacent pair, the criterion that decided their order.

Products that are not comparable (different cameras, eyes or product
types) are grouped by the gate that separates them and marked "apart".`,
		Usage: "landform-curate rank [--mission msl|m2020] [--json] <id>...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("rank", pflag.ContinueOnError)
			flagSet.StringVar(&missionName, "mission", "", "mission policy (default: the mission of the first identifier)")
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Usagef("at least one identifier is required")
			}

			ids := make([]product.ID, 0, len(args))
			for _, arg := range args {
				id, err := product.Parse(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			name := missionName
			if name == "" {
				name = ids[0].Mission().String()
			}
			policy, err := mission.ForMission(name)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if id.Mission() != policy.Mission {
					return fmt.Errorf("%s is a %s identifier; the %s policy cannot rank it", id.FullID(), id.Mission(), policy.Mission)
				}
			}

			ranked := rankProducts(rank.New(policy), ids)
			if outputJSON {
				return cli.WriteJSON(stdout, ranked)
			}

			tw := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
			for _, r := range ranked {
				over := r.Over
				if over != "" && !r.Decided {
					over += " (apart)"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Rank, r.ID, over)
			}
			return tw.Flush()
		},
	}
}

func rankProducts(comparator *rank.Comparator, ids []product.ID) []rankedProduct {
	comparator.Sort(ids)
	ranked := make([]rankedProduct, len(ids))
	for i, id := range ids {
		ranked[i] = rankedProduct{Rank: i + 1, ID: id.FullID()}
		if i+1 < len(ids) {
			result := comparator.Compare(id, ids[i+1])
			ranked[i].Over = string(result.Reason)
			ranked[i].Decided = result.Code != 0
		}
	}
	return ranked
}
