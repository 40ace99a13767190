//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/agents.yaml
var defaultData []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded dataset. The
// dataset is covered by the package tests; if the embedded data fails
// to parse anyway, Default panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := parse(defaultData)
		if err != nil {
			panic(fmt.Sprintf("embedded agent catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
