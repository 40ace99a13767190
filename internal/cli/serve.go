//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package cli

import (
	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-agent-catalog-go/server/mcp"
)

func newServeCmd() *cobra.Command {
	var (
		catalogPath string
		httpAddr    string
		serverName  string
		mcpPath     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog query tools to MCP clients",
		Long: "Serve exposes the catalog query tools over the Model Context Protocol.\n" +
			"Without flags it speaks stdio, for launching straight from an MCP client\n" +
			"configuration. With --http it serves the streamable HTTP transport instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			srv := mcp.New(c, mcp.WithName(serverName), mcp.WithPath(mcpPath))
			if httpAddr != "" {
				return srv.ListenAndServe(httpAddr)
			}
			return srv.ServeStdio()
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML file or directory (default: bundled catalog)")
	cmd.Flags().StringVar(&httpAddr, "http", "", "serve streamable HTTP on this address (e.g. :3000) instead of stdio")
	cmd.Flags().StringVar(&serverName, "name", "", "server name reported to MCP clients")
	cmd.Flags().StringVar(&mcpPath, "path", "", "HTTP path of the MCP endpoint")

	return cmd
}
