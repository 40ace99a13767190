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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trpc.group/trpc-go/trpc-agent-catalog-go/render"
)

const showSuggestions = 3

func newShowCmd() *cobra.Command {
	var (
		catalogPath string
		categories  bool
	)

	cmd := &cobra.Command{
		Use:   "show [slug]",
		Short: "Print an agent profile or the category breakdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if categories || len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), render.CategoryList(c.CountByCategory()))
				return nil
			}
			slug := strings.TrimSpace(args[0])
			if a, ok := c.Get(slug); ok {
				fmt.Fprintln(cmd.OutOrStdout(), render.Profile(a))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.NotFound(slug, c.Suggest(slug, showSuggestions)))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog YAML file or directory (default: bundled catalog)")
	cmd.Flags().BoolVar(&categories, "categories", false, "print the category breakdown instead of a profile")

	return cmd
}
