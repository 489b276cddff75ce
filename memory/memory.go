// Package memory provides the minimal bus.Device implementations the
// CPU core needs to be exercised: flat RAM and flat ROM. These present
// exactly the interface spec.md assumes of an external memory device
// and nothing more — no bank switching, mirroring (bus.MirroringWrapper
// handles that), or mapper logic, which are host concerns.
package memory

import (
	"math/rand"

	"github.com/ithompson/picosnes/bus"
)

// RAM is a flat, fully read/write memory device of a fixed size.
// Addresses outside its range return OpenBus on read and drop writes
// silently, so it can be registered directly against a bus.Router
// without the caller needing to pre-clip addresses.
type RAM struct {
	cells []uint8
}

// NewRAM allocates a zeroed RAM device of the given size in bytes.
func NewRAM(size int) *RAM {
	return &RAM{cells: make([]uint8, size)}
}

// BusRead implements bus.Device.
func (r *RAM) BusRead(addr uint32) (bus.ReadResult, error) {
	if int(addr) >= len(r.cells) {
		return bus.OpenBusResult, nil
	}
	return bus.Data(r.cells[addr]), nil
}

// BusWrite implements bus.Device.
func (r *RAM) BusWrite(addr uint32, data uint8) error {
	if int(addr) < len(r.cells) {
		r.cells[addr] = data
	}
	return nil
}

// StartOfSimulation implements bus.Device by randomizing RAM contents,
// matching the teacher's PowerOn behavior for real hardware (RAM
// contents are undefined at power-on).
func (r *RAM) StartOfSimulation() error {
	for i := range r.cells {
		r.cells[i] = uint8(rand.Intn(256))
	}
	return nil
}

// EndOfSimulation implements bus.Device as a no-op.
func (r *RAM) EndOfSimulation() {}

// Load copies data into RAM starting at offset, for seeding test
// fixtures or scratch state.
func (r *RAM) Load(offset int, data []uint8) {
	copy(r.cells[offset:], data)
}

// Peek returns the byte at addr without going through bus semantics,
// for test assertions.
func (r *RAM) Peek(addr uint16) uint8 {
	return r.cells[addr]
}

// ROM is a flat, read-only memory device. Writes are silently dropped,
// matching real ROM behavior on the 6502 bus.
type ROM struct {
	contents []uint8
}

// NewROM wraps contents as a read-only device; the slice is not copied.
func NewROM(contents []uint8) *ROM {
	return &ROM{contents: contents}
}

// BusRead implements bus.Device.
func (r *ROM) BusRead(addr uint32) (bus.ReadResult, error) {
	if int(addr) >= len(r.contents) {
		return bus.OpenBusResult, nil
	}
	return bus.Data(r.contents[addr]), nil
}

// BusWrite implements bus.Device; ROM silently ignores writes.
func (r *ROM) BusWrite(addr uint32, data uint8) error {
	return nil
}

// StartOfSimulation implements bus.Device as a no-op.
func (r *ROM) StartOfSimulation() error { return nil }

// EndOfSimulation implements bus.Device as a no-op.
func (r *ROM) EndOfSimulation() {}
