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
	"github.com/saferwall/linkmap/rcfile"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols <map-file>",
	Short: "Print every symbol found in a link map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readMapFile(args[0])
		if err != nil {
			return err
		}

		opts := []linkmap.Option{linkmap.WithLogger(rootLogger)}
		rc, err := rcfile.Load(flagRCFile)
		if err != nil {
			return err
		}
		opts = append(opts, rc.Options()...)

		syms, err := linkmap.ParseSymbols(content, opts...)
		if err != nil {
			return err
		}
		return printSymbols(syms)
	},
}

func printSymbols(syms []linkmap.Symbol) error {
	switch resolveFormat() {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(syms)
	case "markdown":
		doc, err := mdreport.Symbols(syms)
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ADDR\tSIZE\tSECTION\tNAME\tCOMPILE UNIT")
		for _, s := range syms {
			fmt.Fprintf(w, "0x%x\t0x%x\t%s\t%s\t%s\n", s.Addr, s.Size, s.Section, s.Name, s.CompileUnit)
		}
		return w.Flush()
	}
}

func resolveFormat() string {
	if flagJSON {
		return "json"
	}
	return flagFormat
}
