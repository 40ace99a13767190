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
	"testing"

	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

func TestScoreSignals(t *testing.T) {
	tests := []struct {
		name  string
		agent *catalog.Agent
		query string
		want  int
	}{
		{
			name:  "name contains whole query",
			agent: &catalog.Agent{Name: "CodeCrafter"},
			query: "crafter",
			want:  50,
		},
		{
			name:  "tagline contains whole query",
			agent: &catalog.Agent{Tagline: "Ship software faster"},
			query: "faster",
			want:  30,
		},
		{
			name:  "short tag found inside longer query",
			agent: &catalog.Agent{Tags: []string{"ide"}},
			query: "best ide tools",
			want:  30, // 20 tag match + 10 word hit
		},
		{
			name:  "whole query found inside tag",
			agent: &catalog.Agent{Tags: []string{"web-scraping"}},
			query: "scraping",
			want:  30, // 20 tag match + 10 word hit
		},
		{
			name:  "capability matches query and words",
			agent: &catalog.Agent{Capabilities: []string{"report generation"}},
			query: "report generation",
			want:  25, // 15 + 5 + 5
		},
		{
			name:  "best_for matches query and words",
			agent: &catalog.Agent{BestFor: []string{"automating code review"}},
			query: "code review",
			want:  41, // 25 + 8 + 8
		},
		{
			name: "word-level hit carries a near-miss phrasing",
			agent: &catalog.Agent{
				Tags:    []string{"web-scraping"},
				BestFor: []string{"scraping websites at scale"},
			},
			// "scrape" appears in neither field verbatim; only the
			// best_for word "websites" lands.
			query: "scrape websites",
			want:  8,
		},
		{
			name: "not_ideal_for words subtract",
			agent: &catalog.Agent{
				BestFor:     []string{"managing email campaigns"},
				NotIdealFor: []string{"email at enterprise scale"},
			},
			query: "email",
			want:  28, // 25 + 8 - 5
		},
		{
			name: "primary category label matches per word",
			agent: &catalog.Agent{
				PrimaryCategory: catalog.CategoryData,
			},
			query: "scraping data",
			want:  20, // both words hit "Data Extraction & Scraping"
		},
		{
			name: "secondary category labels carry no weight",
			agent: &catalog.Agent{
				PrimaryCategory:     catalog.CategoryResearch,
				SecondaryCategories: []catalog.Category{catalog.CategoryData},
			},
			query: "scraping data",
			want:  0, // neither word appears in "Research & Analysis"
		},
		{
			name:  "tokens shorter than three characters carry nothing",
			agent: &catalog.Agent{Tags: []string{"deep-learning"}},
			query: "ai ml",
			want:  0,
		},
		{
			name:  "matching is case-insensitive",
			agent: &catalog.Agent{Name: "FireCrawl"},
			query: "FIRECRAWL",
			want:  50,
		},
		{
			name:  "blank query scores nothing",
			agent: &catalog.Agent{Name: "Anything"},
			query: "   ",
			want:  0,
		},
		{
			name:  "no overlap scores zero",
			agent: &catalog.Agent{Name: "Jasper", Tags: []string{"marketing"}},
			query: "kubernetes troubleshooting",
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Score(tt.agent, tt.query))
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := &catalog.Agent{
		Name:            "Gamma Scraper",
		Tagline:         "Websites into datasets",
		PrimaryCategory: catalog.CategoryData,
		Tags:            []string{"web-scraping", "crawling"},
		Capabilities:    []string{"scheduled crawls"},
		BestFor:         []string{"scraping websites at scale"},
	}
	first := Score(a, "scraping websites")
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Score(a, "scraping websites"))
	}
	require.Positive(t, first)
}

func TestQueryWords(t *testing.T) {
	require.Equal(t, []string{"scrape"}, queryWords("go to scrape it"))
	require.Nil(t, queryWords("a to b"))
	require.Equal(t, []string{"web", "scraping"}, queryWords("  web   scraping "))
}
