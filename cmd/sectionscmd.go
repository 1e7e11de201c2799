// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/saferwall/linkmap"
	"github.com/saferwall/linkmap/mdreport"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <map-file>",
	Short: "Print every section found in a link map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readMapFile(args[0])
		if err != nil {
			return err
		}
		sections, err := linkmap.ParseSections(content)
		if err != nil {
			return err
		}
		return printSections(sections)
	},
}

func printSections(sections []linkmap.Section) error {
	switch resolveFormat() {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	case "markdown":
		doc, err := mdreport.Sections(sections)
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ADDR\tSIZE\tNAME")
		for _, s := range sections {
			fmt.Fprintf(w, "0x%x\t0x%x\t%s\n", s.Addr, s.Size, s.Name)
		}
		return w.Flush()
	}
}
