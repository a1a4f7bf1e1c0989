package translator

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// Dump writes the full contents of physical memory, word by word in
// little-endian order, to the file filename under dir, and returns that
// file's path. It is a
// diagnostic tool only; nothing in the translation path depends on it.
//
// Grounded on the teacher's crearMemoryDump (cmd/memoria/dump.go),
// generalized from a single process's frame list to the whole address
// space, since this module has no notion of per-process frame
// ownership.
func (t *Translator) Dump(dir string, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("translator: creating dump directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("translator: creating dump file %q: %w", path, err)
	}
	defer file.Close()

	t.log.Info("writing memory dump", "path", path, "words", t.geo.Capacity())

	buf := make([]byte, 8)
	for addr := uint64(0); addr < t.geo.Capacity(); addr++ {
		word, err := t.mem.Read(addr)
		if err != nil {
			return "", fmt.Errorf("translator: reading address %d for dump: %w", addr, err)
		}
		binary.LittleEndian.PutUint64(buf, word)
		if _, err := file.Write(buf); err != nil {
			return "", fmt.Errorf("translator: writing dump: %w", err)
		}
	}

	return path, nil
}
