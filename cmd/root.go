// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/saferwall/linkmap/internal/log"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagVerbose bool
	flagFormat  string
	flagRCFile  string

	logHelper *log.Helper
	rootLogger log.Logger
)

var rootCmd = &cobra.Command{
	Use:           "linkmapdump",
	Short:         "Dump symbols, sections, and compile-unit rewrites from an lld v1 link map",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.LevelError
		if flagVerbose {
			level = log.LevelDebug
		}
		rootLogger = log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(level))
		logHelper = log.NewHelper(rootLogger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of a table")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log parser diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "table", "output format: table, json, or markdown")
	rootCmd.PersistentFlags().StringVar(&flagRCFile, "rcfile", ".linkmaprc.toml", "path to an optional rc file extending the useful-section set")

	rootCmd.AddCommand(symbolsCmd, sectionsCmd, cuCmd, versionCmd)
}
