//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Command agentcatalog serves a curated catalog of AI agents to MCP
// clients and inspects catalog files locally.
package main

import (
	"fmt"
	"os"

	"trpc.group/trpc-go/trpc-agent-catalog-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agentcatalog:", err)
		os.Exit(1)
	}
}
