// Package geometry holds the address-decomposition and cyclic-distance
// arithmetic shared by the page-table walker, the allocator, and the
// selector. None of it touches physical memory or the backing store; it is
// pure bit-slicing.
package geometry

import "fmt"

// Geometry describes the fixed, compile-time-style shape of the address
// space: the offset width W, the number of table levels D, and the number
// of physical frames F. P (the page size in words) and V (the virtual
// address space size in words) are derived.
type Geometry struct {
	W int // offset width in bits
	D int // number of table levels
	F int // number of physical frames
}

// P returns the page size in words, 2^W.
func (g Geometry) P() uint64 {
	return uint64(1) << uint(g.W)
}

// V returns the virtual address space size in words, 2^((D+1)*W).
func (g Geometry) V() uint64 {
	return uint64(1) << uint((g.D+1)*g.W)
}

// NumPages returns the number of virtual pages, 2^(D*W).
func (g Geometry) NumPages() uint64 {
	return uint64(1) << uint(g.D*g.W)
}

// Capacity returns the number of words the physical memory must hold, F*P.
func (g Geometry) Capacity() uint64 {
	return uint64(g.F) * g.P()
}

// Validate checks that the geometry can host at least the root frame plus
// the longest path the walker ever needs to build (1+D), per spec §4.4.
func (g Geometry) Validate() error {
	if g.W <= 0 {
		return fmt.Errorf("geometry: offset width W must be positive, got %d", g.W)
	}
	if g.D <= 0 {
		return fmt.Errorf("geometry: table depth D must be positive, got %d", g.D)
	}
	if g.F < g.D+2 {
		return fmt.Errorf(
			"geometry: frame count F=%d is below the capacity floor D+2=%d",
			g.F, g.D+2)
	}
	if (g.D+1)*g.W > 63 {
		return fmt.Errorf(
			"geometry: virtual address space 2^%d overflows a 64-bit word",
			(g.D+1)*g.W)
	}
	return nil
}

// Indices decomposes a virtual address into its D per-level table indices
// (most-significant group first) plus the residual word offset. The
// caller must have already checked v < g.V().
func (g Geometry) Indices(v uint64) (idx []uint64, offset uint64) {
	offset = v & (g.P() - 1)
	rest := v >> uint(g.W)

	idx = make([]uint64, g.D)
	for level := g.D - 1; level >= 0; level-- {
		idx[level] = rest & (g.P() - 1)
		rest >>= uint(g.W)
	}
	return idx, offset
}

// PageNumber returns the virtual page number p = v >> W.
func (g Geometry) PageNumber(v uint64) uint64 {
	return v >> uint(g.W)
}

// CyclicDistance computes min(|p1-p2|, N-|p1-p2|) on the ring of N = 2^(D*W)
// virtual pages, per spec §4.3.
func (g Geometry) CyclicDistance(p1, p2 uint64) uint64 {
	var d uint64
	if p1 > p2 {
		d = p1 - p2
	} else {
		d = p2 - p1
	}

	n := g.NumPages()
	if rem := n - d; rem < d {
		return rem
	}
	return d
}
