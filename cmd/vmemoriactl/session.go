package main

import (
	"fmt"

	"github.com/tp-go-memoria/vmemoria/config"
	"github.com/tp-go-memoria/vmemoria/logging"
	"github.com/tp-go-memoria/vmemoria/physmem"
	"github.com/tp-go-memoria/vmemoria/translator"
)

// openTranslator loads configPath and builds a freshly-initialized
// Translator over either a file-backed or in-memory backing store,
// mirroring the teacher's inicializarModulo: load config, then stand up
// the module it describes.
func openTranslator() (*translator.Translator, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("vmemoriactl: %w", err)
	}

	log := logging.New(cfg.LogLevelOrDefault(), "vmemoriactl")

	var store physmem.BackingStore
	if cfg.SwapfilePath != "" {
		store, err = physmem.NewFileBackingStore(cfg.SwapfilePath, cfg.Geometry().P())
		if err != nil {
			return nil, fmt.Errorf("vmemoriactl: %w", err)
		}
	} else {
		store = physmem.NewMapBackingStore()
	}

	mem := physmem.NewMemory(cfg.Geometry(), store, log)

	tr, err := translator.MakeBuilder().
		WithGeometry(cfg.Geometry()).
		WithPhysicalMemory(mem).
		WithLogger(log).
		Build()
	if err != nil {
		return nil, fmt.Errorf("vmemoriactl: %w", err)
	}

	if err := tr.Initialize(); err != nil {
		return nil, fmt.Errorf("vmemoriactl: %w", err)
	}

	return tr, nil
}
