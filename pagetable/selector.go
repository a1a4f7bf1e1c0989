// Package pagetable implements the full-tree scan (Selector) and the
// frame-selection policy (Allocator) described in spec §4.3-§4.4. Both
// operate purely in terms of geometry.Geometry and physmem.PhysicalMemory;
// neither knows about virtual addresses beyond the single target page
// passed in.
package pagetable

import (
	"fmt"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

// EmptyTableCandidate names a non-root table frame whose entries were all
// zero when visited, together with the physical address of the parent
// slot that links to it.
type EmptyTableCandidate struct {
	Frame      uint64
	ParentAddr uint64
}

// VictimCandidate names the resident leaf frame, among those considered,
// with the currently-largest cyclic distance from the scan's target page.
type VictimCandidate struct {
	Frame      uint64
	Page       uint64
	ParentAddr uint64
}

// ScanResult is the single structured return value of a Selector pass,
// grouping the three findings spec §4.3 calls out rather than mutating
// separate out-parameters in place (spec §9).
type ScanResult struct {
	MaxSeen    uint64
	EmptyTable *EmptyTableCandidate
	Victim     *VictimCandidate
}

// Scan performs one depth-first traversal of the page-table tree rooted
// at frame 0, collecting the findings ScanResult groups. target is the
// virtual page the in-progress translation is resolving; protected is the
// set of frames already committed to that translation's partial path,
// which must never be selected as empty or victim.
func Scan(
	geo geometry.Geometry,
	mem physmem.PhysicalMemory,
	target uint64,
	protected *ProtectedSet,
) (ScanResult, error) {
	s := &scanner{geo: geo, mem: mem, target: target, protected: protected}
	if err := s.visit(0, 0, 0, 0); err != nil {
		return ScanResult{}, err
	}
	return s.result, nil
}

type scanner struct {
	geo       geometry.Geometry
	mem       physmem.PhysicalMemory
	target    uint64
	protected *ProtectedSet

	result   ScanResult
	bestDist uint64
	haveBest bool
}

// visit descends into frame, which lies at depth below the root and, if
// depth < D, holds the table entries reached while tracking page as the
// page number accumulated so far (spec §4.3, "current page number").
// parentAddr is the physical address of the slot in the parent table that
// points to frame; it is meaningless for the root and unused there.
func (s *scanner) visit(frame uint64, depth int, page uint64, parentAddr uint64) error {
	if frame > s.result.MaxSeen {
		s.result.MaxSeen = frame
	}

	if depth == s.geo.D {
		if !s.protected.Has(frame) {
			dist := s.geo.CyclicDistance(s.target, page)
			if !s.haveBest || dist > s.bestDist {
				s.bestDist = dist
				s.haveBest = true
				s.result.Victim = &VictimCandidate{
					Frame:      frame,
					Page:       page,
					ParentAddr: parentAddr,
				}
			}
		}
		return nil
	}

	p := s.geo.P()
	base := frame * p
	allZero := true

	for slot := uint64(0); slot < p; slot++ {
		addr := base + slot
		child, err := s.mem.Read(addr)
		if err != nil {
			return fmt.Errorf("pagetable: scanning frame %d slot %d: %w", frame, slot, err)
		}
		if child == 0 {
			continue
		}
		allZero = false

		childPage := (page << uint(s.geo.W)) | slot
		if err := s.visit(child, depth+1, childPage, addr); err != nil {
			return err
		}
	}

	if allZero && frame != 0 && !s.protected.Has(frame) {
		s.result.EmptyTable = &EmptyTableCandidate{Frame: frame, ParentAddr: parentAddr}
	}

	return nil
}
