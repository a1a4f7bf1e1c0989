package pagetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/mocks"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

func TestAllocatePrefersEmptyTableOverUnusedFrame(t *testing.T) {
	geo := geometry.Geometry{W: 1, D: 2, F: 6}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)

	require.NoError(t, mem.Write(0, 2)) // frame0 slot0 -> frame2 (empty table)
	require.NoError(t, mem.Write(1, 0))

	protected := NewProtectedSet(geo.F)
	frame, outcome, err := Allocate(geo, mem, 0, protected)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), frame, "the empty table must win over max_seen+1=3")
	assert.Equal(t, AllocatedEmptyTable, outcome)

	// The parent slot that pointed to the reclaimed empty table must now
	// be unlinked.
	v, err := mem.Read(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestAllocateUsesUnusedFrameWhenNoneEmpty(t *testing.T) {
	geo, mem := buildSmallTree(t) // max_seen = 4, F = 6
	protected := NewProtectedSet(geo.F)

	frame, outcome, err := Allocate(geo, mem, 3, protected)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), frame)
	assert.Equal(t, AllocatedUnusedFrame, outcome)
}

func TestAllocateFallsBackToVictimWhenPoolFull(t *testing.T) {
	// F = D+2 = 4: root (frame0) + one table frame + two leaf frames
	// exhausts the pool, so a third page must evict.
	geo := geometry.Geometry{W: 1, D: 2, F: 4}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)

	require.NoError(t, mem.Write(0, 1)) // frame0 slot0 -> frame1 (table)
	require.NoError(t, mem.Write(1, 0))
	require.NoError(t, mem.Write(2, 2)) // frame1 slot0 -> frame2 (leaf, page 0)
	require.NoError(t, mem.Write(3, 3)) // frame1 slot1 -> frame3 (leaf, page 1)

	protected := NewProtectedSet(geo.F)
	// Target page 3: distance to page0 is min(3,1)=1, to page1 is
	// min(2,2)=2, so page1/frame3 is the victim.
	frame, outcome, err := Allocate(geo, mem, 3, protected)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), frame)
	assert.Equal(t, AllocatedEvictedVictim, outcome)

	v, err := mem.Read(3) // frame1 slot1, previously pointing at frame3
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v, "evicted victim's parent slot must be unlinked")
}

func TestAllocateNeverReturnsFrameZero(t *testing.T) {
	geo, mem := buildSmallTree(t)
	protected := NewProtectedSet(geo.F)

	frame, _, err := Allocate(geo, mem, 0, protected)
	require.NoError(t, err)
	assert.NotEqual(t, uint64(0), frame)
}

func TestAllocateEvictsThroughMockedPhysicalMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mem := mocks.NewMockPhysicalMemory(ctrl)
	geo := geometry.Geometry{W: 1, D: 1, F: 3}

	// Tree: frame0 (root) slot0 -> frame1 (leaf, page 0), slot1 -> frame2
	// (leaf, page 1). Pool is full (F=3), so whichever leaf is farther
	// from the target must be evicted and its parent slot unlinked.
	mem.EXPECT().Read(uint64(0)).Return(uint64(1), nil)
	mem.EXPECT().Read(uint64(1)).Return(uint64(2), nil)

	mem.EXPECT().Evict(uint64(2), uint64(1)).Return(nil)
	mem.EXPECT().Write(uint64(1), uint64(0)).Return(nil)

	protected := NewProtectedSet(geo.F)
	frame, outcome, err := Allocate(geo, mem, 0, protected)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), frame)
	assert.Equal(t, AllocatedEvictedVictim, outcome)
}
