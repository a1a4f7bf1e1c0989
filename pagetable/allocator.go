package pagetable

import (
	"fmt"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

// AllocationOutcome records which branch of the spec §4.4 priority the
// Allocator took, purely for the translator's diagnostic Stats counters
// (SPEC_FULL §2) -- it has no bearing on the algorithm itself.
type AllocationOutcome int

const (
	AllocatedEmptyTable AllocationOutcome = iota
	AllocatedUnusedFrame
	AllocatedEvictedVictim
)

// Allocate runs the Selector for target and picks a frame by the strict
// priority spec §4.4 defines: an empty table, else an unused frame, else
// the eviction victim. It never returns frame 0 (spec invariant I5),
// because frame 0 is excluded from every candidate set the Selector
// produces (it is the scan's unconditional root).
func Allocate(
	geo geometry.Geometry,
	mem physmem.PhysicalMemory,
	target uint64,
	protected *ProtectedSet,
) (frame uint64, outcome AllocationOutcome, err error) {
	result, err := Scan(geo, mem, target, protected)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case result.EmptyTable != nil:
		if err := unlinkParent(mem, result.EmptyTable.ParentAddr); err != nil {
			return 0, 0, fmt.Errorf("pagetable: unlinking reclaimed empty table: %w", err)
		}
		return result.EmptyTable.Frame, AllocatedEmptyTable, nil

	case result.MaxSeen+1 < uint64(geo.F):
		return result.MaxSeen + 1, AllocatedUnusedFrame, nil

	case result.Victim != nil:
		if err := mem.Evict(result.Victim.Frame, result.Victim.Page); err != nil {
			return 0, 0, fmt.Errorf("pagetable: evicting victim frame %d: %w", result.Victim.Frame, err)
		}
		if err := unlinkParent(mem, result.Victim.ParentAddr); err != nil {
			return 0, 0, fmt.Errorf("pagetable: unlinking evicted victim: %w", err)
		}
		return result.Victim.Frame, AllocatedEvictedVictim, nil

	default:
		// Unreachable when geo.Validate() has been enforced (F >= D+2,
		// spec §4.4), since invariant 2 then guarantees at least one
		// resident leaf once every frame is in use.
		return 0, 0, fmt.Errorf("pagetable: no frame available for page %d", target)
	}
}

// unlinkParent zeroes the parent-table slot that used to point at a
// frame the Allocator just reclaimed, whether that frame was an empty
// table or an evicted victim leaf (spec §9, third ambiguity).
func unlinkParent(mem physmem.PhysicalMemory, parentAddr uint64) error {
	return mem.Write(parentAddr, 0)
}

// ClearFrame writes zero to all P words of frame, the clear_table helper
// of spec §4.5. The walker calls this after Allocate hands back a frame
// destined to become a fresh table.
func ClearFrame(geo geometry.Geometry, mem physmem.PhysicalMemory, frame uint64) error {
	p := geo.P()
	base := frame * p
	for i := uint64(0); i < p; i++ {
		if err := mem.Write(base+i, 0); err != nil {
			return fmt.Errorf("pagetable: clearing frame %d: %w", frame, err)
		}
	}
	return nil
}
