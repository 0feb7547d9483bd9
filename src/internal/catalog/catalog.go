// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/H0llyW00dzZ/synonym/src/internal/platform"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when catalog data cannot be used.
var ErrInvalidCatalog = errors.New("invalid alias catalog")

// Entry is a single curated alias.
type Entry struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Block is the alias list printed for one platform.
type Block struct {
	// Header is the shell comment printed above the aliases.
	Header  string  `yaml:"header"`
	Aliases []Entry `yaml:"aliases"`
}

type platformBlock struct {
	Name  string `yaml:"name"`
	Block `yaml:",inline"`
}

type document struct {
	Platforms []platformBlock `yaml:"platforms"`
}

// Catalog holds one [Block] per [platform.Platform].
type Catalog struct {
	blocks map[platform.Platform]Block
}

var loadEmbedded = sync.OnceValues(func() (*Catalog, error) {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", catalogFile, err)
	}
	return c, nil
})

// Load returns the catalog compiled into the binary.
// The embedded data is decoded once; later calls share the result.
func Load() (*Catalog, error) { return loadEmbedded() }

// Parse decodes a YAML alias catalog.
//
// Every block must name a known platform or "other", may appear only once,
// and must have a header. The "other" block is required since it is the
// fallback for platforms without their own block.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	c := &Catalog{blocks: make(map[platform.Platform]Block, len(doc.Platforms))}
	for _, pb := range doc.Platforms {
		p, err := resolve(pb.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, dup := c.blocks[p]; dup {
			return nil, fmt.Errorf("%w: duplicate block %q", ErrInvalidCatalog, pb.Name)
		}
		if pb.Header == "" {
			return nil, fmt.Errorf("%w: block %q has no header", ErrInvalidCatalog, pb.Name)
		}
		for i, e := range pb.Aliases {
			if e.Name == "" || e.Command == "" {
				return nil, fmt.Errorf("%w: block %q entry %d is incomplete", ErrInvalidCatalog, pb.Name, i)
			}
		}
		c.blocks[p] = pb.Block
	}

	if _, ok := c.blocks[platform.Other]; !ok {
		return nil, fmt.Errorf("%w: missing %q block", ErrInvalidCatalog, platform.Other)
	}
	return c, nil
}

func resolve(name string) (platform.Platform, error) {
	if name == platform.Other.String() {
		return platform.Other, nil
	}
	return platform.Parse(name)
}

// Block returns the aliases for p, or the "other" block when p has none.
func (c *Catalog) Block(p platform.Platform) Block {
	if b, ok := c.blocks[p]; ok {
		return b
	}
	return c.blocks[platform.Other]
}
