//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package catalog

import "strings"

// Catalog is an immutable agent collection. It is built once via New or
// one of the Load functions and only read afterwards, so it is safe to
// share across goroutines without locking.
type Catalog struct {
	agents []*Agent
	bySlug map[string]*Agent
}

// New builds a catalog from the given records, preserving their order.
// The records are validated as a whole; the returned error names every
// violation found.
func New(agents []*Agent) (*Catalog, error) {
	if err := validate(agents); err != nil {
		return nil, err
	}
	c := &Catalog{
		agents: make([]*Agent, len(agents)),
		bySlug: make(map[string]*Agent, len(agents)),
	}
	copy(c.agents, agents)
	for _, a := range c.agents {
		c.bySlug[a.Slug] = a
	}
	return c, nil
}

// Agents returns the records in catalog order. The slice is a fresh copy
// on every call; the records it points to are shared and read-only.
func (c *Catalog) Agents() []*Agent {
	out := make([]*Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.agents)
}

// Get looks up an agent by its exact slug.
func (c *Catalog) Get(slug string) (*Agent, bool) {
	a, ok := c.bySlug[slug]
	return a, ok
}

// Suggest returns up to limit agents that look close to the given slug:
// the candidate slug contains it as a substring, or the candidate name
// contains it case-insensitively. Candidates come back in catalog order.
func (c *Catalog) Suggest(slug string, limit int) []*Agent {
	if slug == "" || limit <= 0 {
		return nil
	}
	lower := strings.ToLower(slug)
	var out []*Agent
	for _, a := range c.agents {
		if strings.Contains(a.Slug, slug) || strings.Contains(strings.ToLower(a.Name), lower) {
			out = append(out, a)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// CategoryCount reports how many agents are filed under one category.
type CategoryCount struct {
	Category Category
	Label    string
	Count    int
}

// CountByCategory tallies agents by primary category. Secondary
// categories are not counted, so the counts sum to the catalog size.
// Every category from the table appears in the result, zero counts
// included, in canonical listing order.
func (c *Catalog) CountByCategory() []CategoryCount {
	byKey := make(map[Category]int, len(categoryTable))
	for _, a := range c.agents {
		byKey[a.PrimaryCategory]++
	}
	out := make([]CategoryCount, len(categoryTable))
	for i, e := range categoryTable {
		out[i] = CategoryCount{Category: e.key, Label: e.label, Count: byKey[e.key]}
	}
	return out
}

// MCPEnabled returns the agents that support MCP and carry a connection
// config, in catalog order. Agents that declare support without a config
// are excluded because there is nothing to connect to.
func (c *Catalog) MCPEnabled() []*Agent {
	var out []*Agent
	for _, a := range c.agents {
		if a.MCPSupport && a.MCPConfig != nil {
			out = append(out, a)
		}
	}
	return out
}
