//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package search

import (
	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

// Filter returns the agents satisfying every provided criterion. An
// empty criterion is skipped; an unknown value matches no agent rather
// than failing. Input order is preserved so later ranking keeps its
// catalog-order tie-breaking.
func Filter(agents []*catalog.Agent, category, pricing string) []*catalog.Agent {
	cat := catalog.Category(category)
	model := catalog.PricingModel(pricing)

	var out []*catalog.Agent
	for _, a := range agents {
		if category != "" && !inCategory(a, cat) {
			continue
		}
		if pricing != "" && a.PricingModel != model {
			continue
		}
		out = append(out, a)
	}
	return out
}

// inCategory reports whether c is the agent's primary category or one of
// its secondary categories.
func inCategory(a *catalog.Agent, c catalog.Category) bool {
	if a.PrimaryCategory == c {
		return true
	}
	for _, sc := range a.SecondaryCategories {
		if sc == c {
			return true
		}
	}
	return false
}
