//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package render turns catalog, search, and comparison results into the
// text MCP clients display. Every function here is a pure function of
// its inputs; identical inputs always produce identical text.
package render

import (
	"fmt"
	"sort"
	"strings"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
	"trpc.group/trpc-go/trpc-agent-catalog-go/compare"
	"trpc.group/trpc-go/trpc-agent-catalog-go/search"
)

// RankedList renders search results as compact cards, best match first.
// The slug rides along with the name so the get_agent hint at the end is
// directly actionable.
func RankedList(query string, matches []search.Match) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No agents matched %q. Try a broader phrase, or call list_categories to see what the catalog covers.", query)
	}

	b := &strings.Builder{}
	noun := "agents"
	if len(matches) == 1 {
		noun = "agent"
	}
	fmt.Fprintf(b, "Found %d %s matching %q:\n", len(matches), noun, query)
	for i, m := range matches {
		a := m.Agent
		fmt.Fprintf(b, "\n%d. %s (%s) - %s\n", i+1, a.Name, a.Slug, a.Tagline)
		if len(a.BestFor) > 0 {
			fmt.Fprintf(b, "   Best for: %s\n", strings.Join(a.BestFor[:min(2, len(a.BestFor))], "; "))
		}
		if len(a.Limitations) > 0 {
			fmt.Fprintf(b, "   Watch out: %s\n", a.Limitations[0])
		}
		fmt.Fprintf(b, "   Pricing: %s\n", a.PricingModel)
		fmt.Fprintf(b, "   URL: %s\n", a.URL)
	}
	b.WriteString("\nCall get_agent with a slug for the full profile.")
	return b.String()
}

// Profile renders the complete record for one agent.
func Profile(a *catalog.Agent) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s (%s)\n\n%s\n\n", a.Name, a.Slug, a.Tagline)

	fmt.Fprintf(b, "Category: %s", a.PrimaryCategory.Label())
	if len(a.SecondaryCategories) > 0 {
		labels := make([]string, 0, len(a.SecondaryCategories))
		for _, c := range a.SecondaryCategories {
			labels = append(labels, c.Label())
		}
		fmt.Fprintf(b, " (also %s)", strings.Join(labels, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "Pricing: %s", a.PricingModel)
	if a.PricingDetails != "" {
		fmt.Fprintf(b, " - %s", a.PricingDetails)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "Autonomy: %s\n", a.AutonomyLevel)
	fmt.Fprintf(b, "Open source: %s", yesNo(a.OpenSource))
	if a.OpenSource && a.RepoURL != "" {
		fmt.Fprintf(b, " (%s)", a.RepoURL)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "URL: %s\n", a.URL)

	if a.Description != "" {
		fmt.Fprintf(b, "\n%s\n", a.Description)
	}

	list(b, "Capabilities", a.Capabilities)
	list(b, "Best for", a.BestFor)
	list(b, "Limitations", a.Limitations)
	list(b, "Not ideal for", a.NotIdealFor)

	if a.ReliabilityNotes != "" {
		fmt.Fprintf(b, "\nReliability: %s\n", a.ReliabilityNotes)
	}

	if len(a.AccessMethods)+len(a.IntegratesWith)+len(a.Tags) > 0 {
		b.WriteString("\n")
		inline(b, "Access", a.AccessMethods)
		inline(b, "Integrates with", a.IntegratesWith)
		inline(b, "Tags", a.Tags)
	}

	b.WriteString("\n")
	b.WriteString(mcpSection(a))
	return strings.TrimRight(b.String(), "\n")
}

// NotFound renders the miss message for an unknown slug, with close
// catalog entries when any exist.
func NotFound(slug string, suggestions []*catalog.Agent) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "No agent with slug %q.", slug)
	if len(suggestions) == 0 {
		b.WriteString(" Call list_categories to browse the catalog.")
		return b.String()
	}
	b.WriteString("\n\nDid you mean:\n")
	for _, a := range suggestions {
		fmt.Fprintf(b, "- %s (%s)\n", a.Slug, a.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CategoryList renders the category breakdown, empty categories
// included, in canonical catalog order.
func CategoryList(counts []catalog.CategoryCount) string {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "Catalog categories (%d agents total):\n\n", total)
	for _, c := range counts {
		fmt.Fprintf(b, "- %s [%s]: %d\n", c.Label, c.Category, c.Count)
	}
	b.WriteString("\nFilter search_agents by the key in brackets.")
	return b.String()
}

// Comparison renders a side-by-side view with the quick picks appended.
// Pick lines for which no compared agent qualified are left out.
func Comparison(cmp *compare.Comparison) string {
	names := make([]string, 0, len(cmp.Entries))
	for _, e := range cmp.Entries {
		names = append(names, e.Agent.Name)
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "Comparing %s:\n", strings.Join(names, " vs "))
	for _, e := range cmp.Entries {
		a := e.Agent
		fmt.Fprintf(b, "\n## %s (%s)\n", a.Name, a.Slug)
		fmt.Fprintf(b, "%s | pricing: %s | autonomy: %s | MCP: %s\n",
			a.PrimaryCategory.Label(), a.PricingModel, a.AutonomyLevel, yesNo(a.MCPSupport))
		list(b, "Best for", e.BestFor)
		list(b, "Limitations", e.Limitations)
	}

	p := cmp.Picks
	if p.BudgetFriendly != nil || p.MostAutonomous != nil || p.MCPReady != nil {
		b.WriteString("\nQuick picks:\n")
		if p.BudgetFriendly != nil {
			fmt.Fprintf(b, "- Budget friendly: %s (%s)\n", p.BudgetFriendly.Name, p.BudgetFriendly.PricingModel)
		}
		if p.MostAutonomous != nil {
			fmt.Fprintf(b, "- Most autonomous: %s\n", p.MostAutonomous.Name)
		}
		if p.MCPReady != nil {
			fmt.Fprintf(b, "- MCP ready: %s\n", p.MCPReady.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Unresolved renders the comparison failure for slugs that matched no
// agent. The comparison is all-or-nothing, so this text stands alone.
func Unresolved(slugs []string) string {
	return fmt.Sprintf("No comparison built: these slugs matched nothing: %s. Look up exact slugs with search_agents first.",
		strings.Join(slugs, ", "))
}

// MCPList renders every agent that ships a usable MCP launch
// configuration.
func MCPList(agents []*catalog.Agent) string {
	if len(agents) == 0 {
		return "No agents in the catalog ship an MCP launch configuration yet."
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "Agents with MCP launch configurations: %d\n", len(agents))
	for _, a := range agents {
		fmt.Fprintf(b, "\n## %s (%s)\n", a.Name, a.Slug)
		b.WriteString(mcpConfig(a.MCPConfig))
	}
	return strings.TrimRight(b.String(), "\n")
}

func mcpSection(a *catalog.Agent) string {
	if !a.MCPSupport {
		return "MCP: not supported\n"
	}
	if a.MCPConfig == nil {
		return "MCP: supported (no launch configuration catalogued)\n"
	}
	return "MCP: supported\n" + mcpConfig(a.MCPConfig)
}

// mcpConfig renders a launch configuration. Env keys are sorted so the
// output is reproducible; an absent env is omitted entirely.
func mcpConfig(cfg *catalog.MCPConfig) string {
	b := &strings.Builder{}
	if cfg.Description != "" {
		fmt.Fprintf(b, "%s\n", cfg.Description)
	}
	fmt.Fprintf(b, "command: %s\n", cfg.Command)
	if len(cfg.Args) > 0 {
		fmt.Fprintf(b, "args: %s\n", strings.Join(cfg.Args, " "))
	}
	if len(cfg.Env) > 0 {
		keys := make([]string, 0, len(cfg.Env))
		for k := range cfg.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("env:\n")
		for _, k := range keys {
			fmt.Fprintf(b, "  %s: %s\n", k, cfg.Env[k])
		}
	}
	return b.String()
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}

func inline(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", title, strings.Join(items, ", "))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
