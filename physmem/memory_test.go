package physmem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tp-go-memoria/vmemoria/geometry"
)

func testGeometry() geometry.Geometry {
	return geometry.Geometry{W: 1, D: 4, F: 5}
}

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	geo := testGeometry()
	m := NewMemory(geo, NewMapBackingStore(), nil)

	require.NoError(t, m.Write(3, 42))
	got, err := m.Read(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)
}

func TestMemoryReadWriteOutOfRange(t *testing.T) {
	geo := testGeometry()
	m := NewMemory(geo, NewMapBackingStore(), nil)

	_, err := m.Read(geo.Capacity())
	assert.Error(t, err)
	assert.Error(t, m.Write(geo.Capacity(), 1))
}

func TestEvictThenRestore(t *testing.T) {
	geo := testGeometry()
	m := NewMemory(geo, NewMapBackingStore(), nil)

	require.NoError(t, m.Write(0, 7))
	require.NoError(t, m.Write(1, 8))
	require.NoError(t, m.Evict(0, 99))

	require.NoError(t, m.Write(0, 0))
	require.NoError(t, m.Write(1, 0))

	require.NoError(t, m.Restore(0, 99))
	v0, _ := m.Read(0)
	v1, _ := m.Read(1)
	assert.Equal(t, uint64(7), v0)
	assert.Equal(t, uint64(8), v1)
}

func TestRestoreNeverWrittenPageZeroFills(t *testing.T) {
	geo := testGeometry()
	m := NewMemory(geo, NewMapBackingStore(), nil)

	require.NoError(t, m.Write(0, 123))
	require.NoError(t, m.Restore(0, 7))

	v, _ := m.Read(0)
	assert.Equal(t, uint64(0), v)
}

func TestFileBackingStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileBackingStore(filepath.Join(dir, "swap.bin"), 2)
	require.NoError(t, err)

	require.NoError(t, store.Save(5, []uint64{11, 22}))
	require.NoError(t, store.Save(6, []uint64{33, 44}))

	data, found, err := store.Load(5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []uint64{11, 22}, data)

	// overwrite reuses the same slot
	require.NoError(t, store.Save(5, []uint64{99, 100}))
	data, found, err = store.Load(5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []uint64{99, 100}, data)

	_, found, err = store.Load(404)
	require.NoError(t, err)
	assert.False(t, found)
}
