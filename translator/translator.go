// Package translator implements the Walker (spec §4.2) and the public
// Initialize/Read/Write entry points (spec §4.1) on top of the geometry,
// physmem, and pagetable packages.
package translator

import (
	"fmt"
	"log/slog"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/logging"
	"github.com/tp-go-memoria/vmemoria/pagetable"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

// Stats counts diagnostic events the translator observes while walking
// and allocating. These counters never feed back into the Selector or
// Allocator -- spec §1 rules out access/usage-based eviction, so Stats
// exists purely for callers that want to watch fault/eviction behavior,
// the same role the teacher's MetricasProceso plays for page-table
// accesses and SWAP traffic.
type Stats struct {
	Faults             uint64 // missing links the walker had to fill
	EmptyTableReclaims uint64
	UnusedFrameUses    uint64
	Evictions          uint64
	Restores           uint64
}

// Translator is the hierarchical demand-paged virtual memory translator
// described by the whole of spec.md: it owns no state of its own beyond
// geometry, a logger, its diagnostic Stats counters, and a reference to
// its physical memory collaborator.
type Translator struct {
	geo geometry.Geometry
	mem physmem.PhysicalMemory
	log *slog.Logger

	stats Stats
}

// New constructs a Translator over mem for the given geometry. It does
// not initialize frame 0; call Initialize for that (spec §4.1).
func New(geo geometry.Geometry, mem physmem.PhysicalMemory, log *slog.Logger) (*Translator, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.New("info", "translator")
	}
	return &Translator{geo: geo, mem: mem, log: log}, nil
}

// Initialize zero-fills frame 0 (the root table) and performs no other
// work, per spec §4.1.
func (t *Translator) Initialize() error {
	return pagetable.ClearFrame(t.geo, t.mem, 0)
}

// Stats returns a snapshot of the diagnostic counters collected so far.
func (t *Translator) Stats() Stats {
	return t.stats
}

// Read translates v and returns the word stored there. ok is false if
// v is out of range (spec §4.1); no side effect occurs in that case.
func (t *Translator) Read(v uint64) (word uint64, ok bool) {
	addr, err := t.translate(v)
	if err != nil {
		t.log.Debug("read out of range", "vaddr", v, "error", err)
		return 0, false
	}

	word, err = t.mem.Read(addr)
	if err != nil {
		t.log.Error("physical read failed after successful translation", "addr", addr, "error", err)
		return 0, false
	}
	return word, true
}

// Write translates v and stores word there. ok is false if v is out of
// range (spec §4.1); no side effect occurs in that case.
func (t *Translator) Write(v uint64, word uint64) (ok bool) {
	addr, err := t.translate(v)
	if err != nil {
		t.log.Debug("write out of range", "vaddr", v, "error", err)
		return false
	}

	if err := t.mem.Write(addr, word); err != nil {
		t.log.Error("physical write failed after successful translation", "addr", addr, "error", err)
		return false
	}
	return true
}

// translate is the Walker of spec §4.2: it decomposes v, walks the
// page-table tree from the root, invoking the Allocator on each missing
// link, and returns the physical address of the word v names.
func (t *Translator) translate(v uint64) (uint64, error) {
	if v >= t.geo.V() {
		return 0, fmt.Errorf("translator: virtual address %d out of range [0, %d)", v, t.geo.V())
	}

	idx, offset := t.geo.Indices(v)
	page := t.geo.PageNumber(v)

	protected := pagetable.NewProtectedSet(t.geo.F)
	protected.Add(0) // the root is always committed to the path.

	prev := uint64(0)
	cur := uint64(0)

	for level := 0; level < t.geo.D; level++ {
		slotAddr := prev*t.geo.P() + idx[level]

		child, err := t.mem.Read(slotAddr)
		if err != nil {
			return 0, fmt.Errorf("translator: reading slot %d: %w", slotAddr, err)
		}

		if child == 0 {
			isLeafLevel := level == t.geo.D-1
			nf, outcome, err := pagetable.Allocate(t.geo, t.mem, page, protected)
			if err != nil {
				return 0, fmt.Errorf("translator: allocating frame for page %d: %w", page, err)
			}
			t.recordOutcome(outcome)
			t.stats.Faults++

			if err := t.mem.Write(slotAddr, nf); err != nil {
				return 0, fmt.Errorf("translator: linking frame %d: %w", nf, err)
			}

			if isLeafLevel {
				if err := t.mem.Restore(nf, page); err != nil {
					return 0, fmt.Errorf("translator: restoring page %d into frame %d: %w", page, nf, err)
				}
				t.stats.Restores++
			} else if err := pagetable.ClearFrame(t.geo, t.mem, nf); err != nil {
				return 0, fmt.Errorf("translator: clearing fresh table frame %d: %w", nf, err)
			}

			child = nf
		}

		protected.Add(child)
		prev = child
		cur = child
	}

	return cur*t.geo.P() + offset, nil
}

func (t *Translator) recordOutcome(outcome pagetable.AllocationOutcome) {
	switch outcome {
	case pagetable.AllocatedEmptyTable:
		t.stats.EmptyTableReclaims++
	case pagetable.AllocatedUnusedFrame:
		t.stats.UnusedFrameUses++
	case pagetable.AllocatedEvictedVictim:
		t.stats.Evictions++
	}
}
