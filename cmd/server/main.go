// bluegreen - blue-green deployment demo server
// Copyright (C) 2026  bluegreen contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/jredh-dev/bluegreen/config"
	"github.com/jredh-dev/bluegreen/internal/banner"
	"github.com/jredh-dev/bluegreen/internal/handlers"
	"github.com/jredh-dev/bluegreen/internal/server"
	"github.com/jredh-dev/bluegreen/internal/status"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bluegreen",
		Short: "serves the blue-green deployment demo page and probes",
		Long: "Serves /, /health and /status on 0.0.0.0:$PORT.\n" +
			"Configured from PORT, ENVIRONMENT and VERSION.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bluegreen %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", buildDate)
		},
	})
	return root
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rep := status.New(cfg)
	srv := server.New(handlers.New(rep))

	return srv.ListenAndServe(cfg.Addr(), func(addr net.Addr) {
		host, err := rep.Hostname()
		if err != nil {
			log.Printf("hostname lookup failed: %v", err)
			host = "unknown"
		}
		banner.Write(cmd.OutOrStdout(), banner.Info{
			Environment: cfg.Environment,
			Version:     cfg.Version,
			Port:        cfg.Port,
			Hostname:    host,
		})
		log.Printf("bluegreen listening on %s", addr)
	})
}
