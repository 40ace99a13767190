//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package search scores, filters, and ranks catalog agents against
// free-text queries.
package search

import (
	"strings"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

// Signal weights. Whole-query matches against the fields a reader sees
// first carry the most weight; per-word matches against the longer
// descriptive lists refine the ordering below them.
const (
	weightNameQuery       = 50
	weightTaglineQuery    = 30
	weightBestForQuery    = 25
	weightTagQuery        = 20
	weightCapabilityQuery = 15
	weightTagWord         = 10
	weightCategoryWord    = 10
	weightBestForWord     = 8
	weightCapabilityWord  = 5
	weightNotIdealWord    = -5
)

// minWordLen drops query tokens too short to carry signal ("a", "to").
const minWordLen = 3

// signal describes one scored field group: where its values come from,
// the weight of a whole-query hit, and the weight of each per-word hit.
// mutual widens the whole-query check to either containment direction,
// which lets a short tag like "ide" match inside a longer query.
type signal struct {
	fields      func(*catalog.Agent) []string
	queryWeight int
	wordWeight  int
	mutual      bool
}

var signals = []signal{
	{
		fields:      func(a *catalog.Agent) []string { return []string{a.Name} },
		queryWeight: weightNameQuery,
	},
	{
		fields:      func(a *catalog.Agent) []string { return []string{a.Tagline} },
		queryWeight: weightTaglineQuery,
	},
	{
		fields:      func(a *catalog.Agent) []string { return a.Tags },
		queryWeight: weightTagQuery,
		wordWeight:  weightTagWord,
		mutual:      true,
	},
	{
		fields:      func(a *catalog.Agent) []string { return a.Capabilities },
		queryWeight: weightCapabilityQuery,
		wordWeight:  weightCapabilityWord,
	},
	{
		fields:      func(a *catalog.Agent) []string { return a.BestFor },
		queryWeight: weightBestForQuery,
		wordWeight:  weightBestForWord,
	},
	{
		fields:     func(a *catalog.Agent) []string { return a.NotIdealFor },
		wordWeight: weightNotIdealWord,
	},
	{
		fields:     func(a *catalog.Agent) []string { return []string{a.PrimaryCategory.Label()} },
		wordWeight: weightCategoryWord,
	},
}

// Score rates how well a matches query. Matching is case-insensitive
// substring containment; the same inputs always produce the same score.
// A result of zero or less means no meaningful match.
func Score(a *catalog.Agent, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0
	}
	words := queryWords(query)

	total := 0
	for _, sig := range signals {
		for _, field := range sig.fields(a) {
			field = strings.ToLower(field)
			if field == "" {
				continue
			}
			if sig.queryWeight != 0 &&
				(strings.Contains(field, query) || (sig.mutual && strings.Contains(query, field))) {
				total += sig.queryWeight
			}
			if sig.wordWeight == 0 {
				continue
			}
			for _, w := range words {
				if strings.Contains(field, w) {
					total += sig.wordWeight
				}
			}
		}
	}
	return total
}

// queryWords splits an already-lowercased query on whitespace and keeps
// the tokens long enough to score.
func queryWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(query) {
		if len(w) >= minWordLen {
			words = append(words, w)
		}
	}
	return words
}
