//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package catalog

// Category is the key of one entry in the fixed category table.
// An agent has exactly one primary category and zero or more secondary ones.
type Category string

// Category keys.
const (
	CategoryCoding       Category = "coding"
	CategoryResearch     Category = "research"
	CategoryData         Category = "data"
	CategoryBrowser      Category = "browser"
	CategoryContent      Category = "content"
	CategoryProductivity Category = "productivity"
	CategorySupport      Category = "support"
	CategoryWorkflow     Category = "workflow"
	CategoryTesting      Category = "testing"
	CategoryDevOps       Category = "devops"
)

// categoryTable fixes the canonical listing order and the display label
// for each category key. Iteration order here defines the order of every
// category listing the server produces.
var categoryTable = []struct {
	key   Category
	label string
}{
	{CategoryCoding, "Coding & Development"},
	{CategoryResearch, "Research & Analysis"},
	{CategoryData, "Data Extraction & Scraping"},
	{CategoryBrowser, "Browser & Web Automation"},
	{CategoryContent, "Content & Writing"},
	{CategoryProductivity, "Productivity & Personal Assistants"},
	{CategorySupport, "Customer Support"},
	{CategoryWorkflow, "Workflow Automation & Integration"},
	{CategoryTesting, "QA & Software Testing"},
	{CategoryDevOps, "DevOps & Infrastructure"},
}

var categoryLabels = func() map[Category]string {
	m := make(map[Category]string, len(categoryTable))
	for _, e := range categoryTable {
		m[e.key] = e.label
	}
	return m
}()

// Categories returns every category key in canonical listing order.
func Categories() []Category {
	keys := make([]Category, len(categoryTable))
	for i, e := range categoryTable {
		keys[i] = e.key
	}
	return keys
}

// Label returns the display label for the category. Unknown categories
// fall back to the raw key.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is part of the category table.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}
