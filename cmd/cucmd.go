// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/saferwall/linkmap"
	"github.com/spf13/cobra"
)

var cuCmd = &cobra.Command{
	Use:   "cu <compile-unit-path>",
	Short: "Run the compile-unit path transform on a literal path and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		canonical, crate, ok := linkmap.TransformCompileUnit(args[0])
		if !ok {
			fmt.Println("no match")
			return nil
		}
		if crate != "" {
			fmt.Printf("%s (crate: %s)\n", canonical, crate)
		} else {
			fmt.Println(canonical)
		}
		return nil
	},
}
