//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package compare

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]*catalog.Agent{
		{
			Slug:            "budget-bot",
			Name:            "Budget Bot",
			Tagline:         "Cheap and cheerful",
			URL:             "https://budget.example.com",
			PrimaryCategory: catalog.CategoryProductivity,
			PricingModel:    catalog.PricingFreemium,
			AutonomyLevel:   catalog.AutonomySemiAutonomous,
			BestFor:         []string{"simple chores", "tight budgets", "getting started", "yet more chores"},
			Limitations:     []string{"limited depth", "rate limits", "no integrations"},
		},
		{
			Slug:            "auto-bot",
			Name:            "Auto Bot",
			Tagline:         "Runs on its own",
			URL:             "https://auto.example.com",
			PrimaryCategory: catalog.CategoryWorkflow,
			PricingModel:    catalog.PricingPaid,
			AutonomyLevel:   catalog.AutonomyFullyAutonomous,
			MCPSupport:      true,
		},
		{
			Slug:            "plain-bot",
			Name:            "Plain Bot",
			Tagline:         "Enterprise workhorse",
			URL:             "https://plain.example.com",
			PrimaryCategory: catalog.CategorySupport,
			PricingModel:    catalog.PricingEnterprise,
			AutonomyLevel:   catalog.AutonomySupervised,
		},
		{
			Slug:            "free-bot",
			Name:            "Free Bot",
			Tagline:         "Open to everyone",
			URL:             "https://free.example.com",
			PrimaryCategory: catalog.CategoryCoding,
			PricingModel:    catalog.PricingOpenSource,
			AutonomyLevel:   catalog.AutonomyFullyAutonomous,
			OpenSource:      true,
		},
	})
	require.NoError(t, err)
	return c
}

func TestCompare(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"budget-bot", "auto-bot"})
	require.NoError(t, err)
	require.Len(t, cmp.Entries, 2)
	require.Equal(t, "budget-bot", cmp.Entries[0].Agent.Slug)
	require.Equal(t, "auto-bot", cmp.Entries[1].Agent.Slug)

	require.NotNil(t, cmp.Picks.BudgetFriendly)
	require.Equal(t, "budget-bot", cmp.Picks.BudgetFriendly.Slug)
	require.NotNil(t, cmp.Picks.MostAutonomous)
	require.Equal(t, "auto-bot", cmp.Picks.MostAutonomous.Slug)
	require.NotNil(t, cmp.Picks.MCPReady)
	require.Equal(t, "auto-bot", cmp.Picks.MCPReady.Slug)
}

func TestCompareCondensesEntries(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"budget-bot", "plain-bot"})
	require.NoError(t, err)

	entry := cmp.Entries[0]
	require.Equal(t, []string{"simple chores", "tight budgets", "getting started"}, entry.BestFor)
	require.Equal(t, []string{"limited depth", "rate limits"}, entry.Limitations)
}

func TestCompareUnresolvedNamesEverySlug(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"budget-bot", "missing", "also-gone"})
	require.Nil(t, cmp, "no partial comparison on unresolved slugs")
	require.Error(t, err)

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, []string{"missing", "also-gone"}, unresolved.Slugs)
	require.Contains(t, err.Error(), "missing")
	require.Contains(t, err.Error(), "also-gone")
}

func TestCompareTooFew(t *testing.T) {
	c := testCatalog(t)

	_, err := Compare(c, []string{"budget-bot"})
	require.ErrorIs(t, err, ErrTooFewAgents)

	_, err = Compare(c, nil)
	require.ErrorIs(t, err, ErrTooFewAgents)
}

func TestComparePicksCanBeEmpty(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"plain-bot", "auto-bot"})
	require.NoError(t, err)
	require.Nil(t, cmp.Picks.BudgetFriendly, "paid and enterprise never qualify")
	require.Equal(t, "auto-bot", cmp.Picks.MostAutonomous.Slug)
}

func TestComparePicksFollowInputOrder(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"free-bot", "budget-bot", "auto-bot"})
	require.NoError(t, err)
	require.Equal(t, "free-bot", cmp.Picks.BudgetFriendly.Slug, "first qualifying agent in request order wins")
	require.Equal(t, "free-bot", cmp.Picks.MostAutonomous.Slug)
	require.Equal(t, "auto-bot", cmp.Picks.MCPReady.Slug)
}

func TestCompareKeepsDuplicates(t *testing.T) {
	c := testCatalog(t)

	cmp, err := Compare(c, []string{"auto-bot", "auto-bot"})
	require.NoError(t, err)
	require.Len(t, cmp.Entries, 2)
	require.Equal(t, cmp.Entries[0].Agent, cmp.Entries[1].Agent)
}
