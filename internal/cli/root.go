//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package cli implements the agentcatalog command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
	"trpc.group/trpc-go/trpc-agent-catalog-go/log"
)

var logLevel string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentcatalog",
		Short: "Serve and inspect the AI agent catalog",
		Long: "agentcatalog answers questions about a curated catalog of AI agents.\n" +
			"It serves the catalog query tools to MCP clients over stdio or\n" +
			"streamable HTTP, and can validate and inspect catalog files locally.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(logLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", log.LevelInfo,
		"log level (debug, info, warn, error, fatal)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// loadCatalog resolves a catalog path: a directory is merged
// recursively, a file stands alone, and an empty path selects the
// bundled catalog.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog %s: %w", path, err)
	}
	if info.IsDir() {
		return catalog.LoadDir(path)
	}
	return catalog.LoadFile(path)
}
