// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"plankui.org/geom"
)

// A cache memoizes measurement results for one node of the element
// tree, keyed by constraint, with a subcache per child index. A
// cache tree is created per engine invocation and discarded with
// it, so a content change simply never meets stale entries.
//
// Parents probe the same child under several candidate constraints
// while negotiating space, and grandparents re-measure whole
// subtrees while trying candidate sizes; without memoization that
// is exponential in tree depth.
type cache struct {
	sizes map[Constraint]geom.Size
	subs  map[int]*cache
}

func newCache() *cache {
	return &cache{}
}

// measure returns the memoized size for cs, computing and recording
// it on first request. A hit returns exactly what a fresh
// measurement would; this relies on measurement being pure within
// one invocation.
func (c *cache) measure(cs Constraint, m func(Constraint) geom.Size) geom.Size {
	if sz, ok := c.sizes[cs]; ok {
		return sz
	}
	if sz, ok := c.derive(cs); ok {
		return sz
	}
	sz := m(cs)
	if !sz.Valid() {
		panic(fmt.Sprintf("layout: measurement under %v produced invalid size %v", cs, sz))
	}
	if c.sizes == nil {
		c.sizes = make(map[Constraint]geom.Size, 2)
	}
	c.sizes[cs] = sz
	return sz
}

// derive serves a request from the fully unconstrained entry when
// that entry already satisfies every limit of cs. An unconstrained
// result fits any AtMost bound at or above it, so recomputing would
// return the same size. Exact limits are never derived.
func (c *cache) derive(cs Constraint) (geom.Size, bool) {
	if cs.Width.IsExact() || cs.Height.IsExact() {
		return geom.Size{}, false
	}
	sz, ok := c.sizes[Constraint{}]
	if !ok || !cs.Width.Fits(sz.Width) || !cs.Height.Fits(sz.Height) {
		return geom.Size{}, false
	}
	return sz, true
}

// sub returns the cache for the child at the given index, creating
// it on first use.
func (c *cache) sub(index int) *cache {
	if s, ok := c.subs[index]; ok {
		return s
	}
	if c.subs == nil {
		c.subs = make(map[int]*cache, 4)
	}
	s := newCache()
	c.subs[index] = s
	return s
}
