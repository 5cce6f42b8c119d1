// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/sitedrive"
)

type decodedField struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Raw   string `json:"raw"`
}

type decodedProduct struct {
	Input       string         `json:"input"`
	Error       string         `json:"error,omitempty"`
	ID          string         `json:"id,omitempty"`
	Variant     string         `json:"variant,omitempty"`
	Mission     string         `json:"mission,omitempty"`
	Camera      string         `json:"camera,omitempty"`
	Eye         string         `json:"eye,omitempty"`
	Color       string         `json:"color,omitempty"`
	ProductType string         `json:"product_type,omitempty"`
	Kind        string         `json:"kind,omitempty"`
	Geometry    string         `json:"geometry,omitempty"`
	Size        string         `json:"size,omitempty"`
	Producer    string         `json:"producer,omitempty"`
	Special     string         `json:"special,omitempty"`
	Version     int            `json:"version,omitempty"`
	SiteDrive   string         `json:"site_drive,omitempty"`
	Sol         *int           `json:"sol,omitempty"`
	SolKind     string         `json:"sol_kind,omitempty"`
	SCLK        string         `json:"sclk,omitempty"`
	MeshType    string         `json:"mesh_type,omitempty"`
	Fields      []decodedField `json:"fields,omitempty"`
}

func decode(input string) decodedProduct {
	id, err := product.Parse(input)
	if err != nil {
		return decodedProduct{Input: input, Error: err.Error()}
	}
	d := decodedProduct{
		Input:       input,
		ID:          id.FullID(),
		Variant:     id.Variant().String(),
		Mission:     id.Mission().String(),
		Camera:      id.Camera().String(),
		Eye:         id.Eye().String(),
		Color:       id.Color().String(),
		ProductType: string(id.ProductType()),
		Kind:        id.Kind().String(),
		Geometry:    id.Geometry().String(),
		Size:        id.Size().String(),
		Producer:    id.Producer().String(),
		Special:     string(id.Special()),
		Version:     id.Version(),
		SiteDrive:   sitedrive.Of(id).String(),
	}
	if id.HasSol() {
		sol := id.Sol()
		d.Sol = &sol
		d.SolKind = id.SolKind().String()
	}
	if id.Variant().IsMesh() {
		d.MeshType = id.MeshType().String()
	} else {
		d.SCLK = id.SCLK().String()
	}
	for _, field := range product.Fields(id.Variant()) {
		span, _ := product.SpanOf(id.Variant(), field)
		d.Fields = append(d.Fields, decodedField{
			Name:  field.String(),
			Start: span.Start,
			End:   span.End,
			Raw:   id.Field(field),
		})
	}
	return d
}

func decodeCommand(stdout, stderr io.Writer) *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "decode",
		Summary: "Show the decoded fields of product identifiers",
		Description: `Decode product identifiers, URLs or file names and print every
field: the interpreted values first, then the raw characters of each
field with their positions in the identifier.

Exits 1 if any input fails to decode.`,
		Usage: "landform-curate decode [--json] <id>...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Usagef("at least one identifier is required")
			}

			decoded := make([]decodedProduct, 0, len(args))
			failed := false
			for _, input := range args {
				d := decode(input)
				if d.Error != "" {
					failed = true
				}
				decoded = append(decoded, d)
			}

			if outputJSON {
				if err := cli.WriteJSON(stdout, decoded); err != nil {
					return err
				}
			} else {
				for i, d := range decoded {
					if i > 0 {
						fmt.Fprintln(stdout)
					}
					if d.Error != "" {
						fmt.Fprintf(stderr, "%s: %s\n", d.Input, d.Error)
						continue
					}
					if err := writeDecoded(stdout, d); err != nil {
						return err
					}
				}
			}

			if failed {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func writeDecoded(w io.Writer, d decodedProduct) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", d.ID)
	row := func(name, value string) {
		if value != "" {
			fmt.Fprintf(tw, "  %s\t%s\n", name, value)
		}
	}
	row("variant", d.Variant)
	row("camera", d.Camera)
	row("eye", d.Eye)
	row("color", d.Color)
	row("product type", d.ProductType+" ("+d.Kind+")")
	row("geometry", d.Geometry)
	row("size", d.Size)
	row("producer", d.Producer)
	row("special", d.Special)
	row("version", fmt.Sprint(d.Version))
	row("site/drive", d.SiteDrive)
	if d.Sol != nil {
		row("sol", fmt.Sprintf("%d (%s)", *d.Sol, d.SolKind))
	}
	row("sclk", d.SCLK)
	row("mesh type", d.MeshType)
	fmt.Fprintf(tw, "\n  field\tspan\traw\n")
	for _, f := range d.Fields {
		fmt.Fprintf(tw, "  %s\t[%d,%d)\t%q\n", f.Name, f.Start, f.End, f.Raw)
	}
	return tw.Flush()
}
