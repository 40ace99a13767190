//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package compare assembles side-by-side views of catalog agents.
package compare

import (
	"errors"
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

// Bounds on how many agents one comparison may cover.
const (
	MinAgents = 2
	MaxAgents = 5
)

// ErrTooFewAgents reports that fewer than MinAgents slugs were given.
var ErrTooFewAgents = errors.New("comparison needs at least two agents")

// UnresolvedError names every requested slug that matched no agent.
type UnresolvedError struct {
	Slugs []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unknown agents: %s", strings.Join(e.Slugs, ", "))
}

// Entry is one agent's column in a comparison: the record itself plus
// the condensed strengths and caveats shown side by side.
type Entry struct {
	Agent       *catalog.Agent
	BestFor     []string
	Limitations []string
}

// Picks are the quick recommendations drawn from the compared set. A
// nil field means no compared agent qualified, and the rendering layer
// omits that line.
type Picks struct {
	BudgetFriendly *catalog.Agent
	MostAutonomous *catalog.Agent
	MCPReady       *catalog.Agent
}

// Comparison is the assembled view for a resolved set of agents.
type Comparison struct {
	Entries []Entry
	Picks   Picks
}

// Compare resolves slugs against the catalog and builds a comparison in
// input order. Resolution fails as a whole: if any slug is unknown the
// error names all unknown slugs and no partial comparison is returned.
// Duplicated slugs stay duplicated, matching what the caller asked for.
func Compare(c *catalog.Catalog, slugs []string) (*Comparison, error) {
	var (
		agents     []*catalog.Agent
		unresolved []string
	)
	for _, slug := range slugs {
		a, ok := c.Get(slug)
		if !ok {
			unresolved = append(unresolved, slug)
			continue
		}
		agents = append(agents, a)
	}
	if len(unresolved) > 0 {
		return nil, &UnresolvedError{Slugs: unresolved}
	}
	if len(agents) < MinAgents {
		return nil, ErrTooFewAgents
	}

	cmp := &Comparison{Entries: make([]Entry, 0, len(agents))}
	for _, a := range agents {
		cmp.Entries = append(cmp.Entries, Entry{
			Agent:       a,
			BestFor:     firstN(a.BestFor, 3),
			Limitations: firstN(a.Limitations, 2),
		})
	}
	cmp.Picks = pickHighlights(agents)
	return cmp, nil
}

// pickHighlights scans the compared agents in input order and keeps the
// first qualifier for each recommendation.
func pickHighlights(agents []*catalog.Agent) Picks {
	var p Picks
	for _, a := range agents {
		if p.BudgetFriendly == nil && budgetFriendly(a.PricingModel) {
			p.BudgetFriendly = a
		}
		if p.MostAutonomous == nil && a.AutonomyLevel == catalog.AutonomyFullyAutonomous {
			p.MostAutonomous = a
		}
		if p.MCPReady == nil && a.MCPSupport {
			p.MCPReady = a
		}
	}
	return p
}

func budgetFriendly(m catalog.PricingModel) bool {
	switch m {
	case catalog.PricingFree, catalog.PricingOpenSource, catalog.PricingFreemium:
		return true
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
