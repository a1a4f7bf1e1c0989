package translator

import (
	"log/slog"

	"github.com/tp-go-memoria/vmemoria/geometry"
	"github.com/tp-go-memoria/vmemoria/logging"
	"github.com/tp-go-memoria/vmemoria/physmem"
)

// Builder assembles a Translator, grounded on sarchlab-akita's
// mem/vm/mmu.Builder chained With* pattern (mem/vm/mmu/builder.go).
type Builder struct {
	geo      geometry.Geometry
	mem      physmem.PhysicalMemory
	log      *slog.Logger
	logLevel string
}

// MakeBuilder returns a Builder with the teacher's defaults: info-level
// logging tagged "translator".
func MakeBuilder() Builder {
	return Builder{logLevel: "info"}
}

// WithGeometry sets the address-space geometry.
func (b Builder) WithGeometry(geo geometry.Geometry) Builder {
	b.geo = geo
	return b
}

// WithPhysicalMemory sets the downstream memory device.
func (b Builder) WithPhysicalMemory(mem physmem.PhysicalMemory) Builder {
	b.mem = mem
	return b
}

// WithLogLevel sets the log level used if no explicit logger is
// supplied via WithLogger ("debug", "info", "warn", "error").
func (b Builder) WithLogLevel(level string) Builder {
	b.logLevel = level
	return b
}

// WithLogger overrides the logger entirely, bypassing WithLogLevel.
func (b Builder) WithLogger(log *slog.Logger) Builder {
	b.log = log
	return b
}

// Build validates the geometry and constructs the Translator.
func (b Builder) Build() (*Translator, error) {
	log := b.log
	if log == nil {
		log = logging.New(b.logLevel, "translator")
	}
	return New(b.geo, b.mem, log)
}
