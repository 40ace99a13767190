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
	"sort"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

// Bounds for the number of ranked results a caller may request.
const (
	MinLimit     = 1
	MaxLimit     = 20
	DefaultLimit = 5
)

// Match pairs an agent with its score for one query.
type Match struct {
	Agent *catalog.Agent
	Score int
}

// Rank scores agents against query and returns at most limit matches,
// best first. Agents with a non-positive score never appear. The sort is
// stable, so agents with equal scores keep their catalog order.
func Rank(agents []*catalog.Agent, query string, limit int) []Match {
	var matches []Match
	for _, a := range agents {
		if s := Score(a, query); s > 0 {
			matches = append(matches, Match{Agent: a, Score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
