// Package physmem provides the out-of-scope collaborators the translator
// consumes: a word-addressable physical memory device and the backing
// store it uses to evict and restore pages. Per spec §1 these are treated
// as black boxes with a fixed capacity; this package supplies one concrete,
// in-process implementation of each so the translator can be exercised and
// tested without an external simulator.
package physmem

import (
	"fmt"
	"log/slog"

	"github.com/tp-go-memoria/vmemoria/geometry"
)

// PhysicalMemory is the downstream collaborator described in spec §6: a
// fixed-capacity array of words addressed as frame*P+offset, plus the
// evict/restore primitives that move a page between a frame and the
// backing store.
type PhysicalMemory interface {
	Read(addr uint64) (uint64, error)
	Write(addr uint64, word uint64) error
	Evict(frame uint64, page uint64) error
	Restore(frame uint64, page uint64) error
}

// Memory is the default PhysicalMemory implementation: a flat []uint64
// array sized F*P, backed by a BackingStore for non-resident pages.
//
// Grounded on sarchlab-akita's memory.Storage (memory/storage.go), adapted
// from lazily-allocated byte chunks to a single fixed-size word array,
// because this module's capacity is a small fixed geometry constant rather
// than an address space that needs lazy allocation.
type Memory struct {
	geo   geometry.Geometry
	words []uint64
	store BackingStore
	log   *slog.Logger
}

// NewMemory creates a Memory of capacity geo.Capacity() words, backed by
// store for evicted pages.
func NewMemory(geo geometry.Geometry, store BackingStore, log *slog.Logger) *Memory {
	if log == nil {
		log = slog.Default()
	}
	return &Memory{
		geo:   geo,
		words: make([]uint64, geo.Capacity()),
		store: store,
		log:   log,
	}
}

func (m *Memory) checkAddr(addr uint64) error {
	if addr >= uint64(len(m.words)) {
		return fmt.Errorf("physmem: address %d exceeds capacity %d", addr, len(m.words))
	}
	return nil
}

// Read returns the word at addr.
func (m *Memory) Read(addr uint64) (uint64, error) {
	if err := m.checkAddr(addr); err != nil {
		return 0, err
	}
	return m.words[addr], nil
}

// Write stores word at addr.
func (m *Memory) Write(addr uint64, word uint64) error {
	if err := m.checkAddr(addr); err != nil {
		return err
	}
	m.words[addr] = word
	return nil
}

// Evict copies the P words of frame into the backing store entry for page.
func (m *Memory) Evict(frame uint64, page uint64) error {
	p := m.geo.P()
	base := frame * p
	if err := m.checkAddr(base + p - 1); err != nil {
		return err
	}

	data := make([]uint64, p)
	copy(data, m.words[base:base+p])

	m.log.Debug("evicting frame to backing store", "frame", frame, "page", page)
	return m.store.Save(page, data)
}

// Restore copies the backing store entry for page into frame, zero-filling
// the frame if the page was never written (spec §6, "restore").
func (m *Memory) Restore(frame uint64, page uint64) error {
	p := m.geo.P()
	base := frame * p
	if err := m.checkAddr(base + p - 1); err != nil {
		return err
	}

	data, found, err := m.store.Load(page)
	if err != nil {
		return err
	}

	if !found {
		m.log.Debug("restoring never-written page, zero-filling", "frame", frame, "page", page)
		for i := uint64(0); i < p; i++ {
			m.words[base+i] = 0
		}
		return nil
	}

	m.log.Debug("restoring page from backing store", "frame", frame, "page", page)
	copy(m.words[base:base+p], data)
	return nil
}
