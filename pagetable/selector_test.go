package pagetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

// buildSmallTree wires up a D=2, W=1 tree:
//
//	frame0 (root table) --slot0--> frame2 (table) --slot0--> frame3 (leaf, page 0)
//	                                               --slot1--> frame4 (leaf, page 1)
//	               --slot1--> 0 (unlinked)
func buildSmallTree(t *testing.T) (geometry.Geometry, *physmem.Memory) {
	t.Helper()
	geo := geometry.Geometry{W: 1, D: 2, F: 6}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)

	require.NoError(t, mem.Write(0, 2)) // frame0 slot0 -> frame2
	require.NoError(t, mem.Write(1, 0)) // frame0 slot1 -> unlinked
	require.NoError(t, mem.Write(4, 3)) // frame2 slot0 -> frame3 (leaf, page 0)
	require.NoError(t, mem.Write(5, 4)) // frame2 slot1 -> frame4 (leaf, page 1)

	return geo, mem
}

func TestScanFindsMaxSeenAndVictim(t *testing.T) {
	geo, mem := buildSmallTree(t)
	protected := NewProtectedSet(geo.F)

	result, err := Scan(geo, mem, 3, protected)
	require.NoError(t, err)

	assert.Equal(t, uint64(4), result.MaxSeen)
	assert.Nil(t, result.EmptyTable)
	require.NotNil(t, result.Victim)
	assert.Equal(t, uint64(4), result.Victim.Frame)
	assert.Equal(t, uint64(1), result.Victim.Page)
	assert.Equal(t, uint64(5), result.Victim.ParentAddr)
}

func TestScanFindsEmptyTable(t *testing.T) {
	geo := geometry.Geometry{W: 1, D: 2, F: 6}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)

	require.NoError(t, mem.Write(0, 2)) // frame0 slot0 -> frame2 (all-zero table)
	require.NoError(t, mem.Write(1, 0)) // frame0 slot1 -> unlinked
	// frame2's slots (addr 4,5) stay zero: it is an empty table.

	protected := NewProtectedSet(geo.F)
	result, err := Scan(geo, mem, 0, protected)
	require.NoError(t, err)

	require.NotNil(t, result.EmptyTable)
	assert.Equal(t, uint64(2), result.EmptyTable.Frame)
	assert.Equal(t, uint64(0), result.EmptyTable.ParentAddr)
	assert.Nil(t, result.Victim)
}

func TestScanNeverSelectsRootAsEmpty(t *testing.T) {
	geo := geometry.Geometry{W: 1, D: 2, F: 6}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)
	// root (frame 0) has no children at all -- it must never be reported
	// as an empty table candidate.

	protected := NewProtectedSet(geo.F)
	result, err := Scan(geo, mem, 0, protected)
	require.NoError(t, err)

	assert.Nil(t, result.EmptyTable)
	assert.Nil(t, result.Victim)
	assert.Equal(t, uint64(0), result.MaxSeen)
}

func TestScanExcludesProtectedFrames(t *testing.T) {
	geo, mem := buildSmallTree(t)
	protected := NewProtectedSet(geo.F)
	protected.Add(3)
	protected.Add(4)

	result, err := Scan(geo, mem, 3, protected)
	require.NoError(t, err)

	// Both leaves are protected, so no victim can be reported even though
	// the tree has resident leaves.
	assert.Nil(t, result.Victim)
}

func TestScanTiesBreakByDiscoveryOrder(t *testing.T) {
	// Two leaves equidistant from the target page (1): page 0 reached via
	// root slot0 -> frame2 -> frame3, and page 2 reached via root slot1 ->
	// frame5 -> frame6. Both sit at cyclic distance 1 on the 4-page ring;
	// the first one the DFS encounters (frame3, page 0) must win.
	geo := geometry.Geometry{W: 1, D: 2, F: 7}
	mem := physmem.NewMemory(geo, physmem.NewMapBackingStore(), nil)

	require.NoError(t, mem.Write(0, 2))  // frame0 slot0 -> frame2
	require.NoError(t, mem.Write(1, 5))  // frame0 slot1 -> frame5
	require.NoError(t, mem.Write(4, 3))  // frame2 slot0 -> frame3 (leaf, page 0)
	require.NoError(t, mem.Write(5, 0))  // frame2 slot1 -> unlinked
	require.NoError(t, mem.Write(10, 6)) // frame5 slot0 -> frame6 (leaf, page 2)
	require.NoError(t, mem.Write(11, 0)) // frame5 slot1 -> unlinked

	protected := NewProtectedSet(geo.F)
	result, err := Scan(geo, mem, 1, protected)
	require.NoError(t, err)

	require.NotNil(t, result.Victim)
	assert.Equal(t, uint64(3), result.Victim.Frame, "first-discovered tied maximum should win")
	assert.Equal(t, uint64(0), result.Victim.Page)
}
