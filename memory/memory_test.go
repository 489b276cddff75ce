package memory

import (
	"testing"

	"github.com/ithompson/picosnes/bus"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(0x0800)

	if err := r.BusWrite(0x0010, 0x42); err != nil {
		t.Fatalf("BusWrite: %v", err)
	}
	got, err := r.BusRead(0x0010)
	if err != nil {
		t.Fatalf("BusRead: %v", err)
	}
	if got.OpenBus || got.Data != 0x42 {
		t.Errorf("BusRead(0x0010) = %+v, want Data(0x42)", got)
	}
}

func TestRAMOutOfRange(t *testing.T) {
	r := NewRAM(0x0800)

	got, err := r.BusRead(0x1000)
	if err != nil {
		t.Fatalf("BusRead: %v", err)
	}
	if !got.OpenBus {
		t.Errorf("BusRead(0x1000) = %+v, want OpenBus", got)
	}
	if err := r.BusWrite(0x1000, 0x99); err != nil {
		t.Errorf("BusWrite out of range returned error: %v", err)
	}
}

func TestRAMPowerOnRandomizes(t *testing.T) {
	r := NewRAM(256)
	if err := r.StartOfSimulation(); err != nil {
		t.Fatalf("StartOfSimulation: %v", err)
	}
	var nonZero bool
	for i := 0; i < 256; i++ {
		if r.Peek(uint16(i)) != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("RAM contents all zero after StartOfSimulation, want at least one nonzero byte (randomized)")
	}
}

func TestRAMLoadAndPeek(t *testing.T) {
	r := NewRAM(16)
	r.Load(4, []uint8{0x01, 0x02, 0x03})
	if got := r.Peek(4); got != 0x01 {
		t.Errorf("Peek(4) = 0x%02X, want 0x01", got)
	}
	if got := r.Peek(6); got != 0x03 {
		t.Errorf("Peek(6) = 0x%02X, want 0x03", got)
	}
}

func TestROMReadOnly(t *testing.T) {
	r := NewROM([]uint8{0xDE, 0xAD, 0xBE, 0xEF})

	got, err := r.BusRead(1)
	if err != nil {
		t.Fatalf("BusRead: %v", err)
	}
	if got.Data != 0xAD {
		t.Errorf("BusRead(1) = 0x%02X, want 0xAD", got.Data)
	}

	if err := r.BusWrite(1, 0x00); err != nil {
		t.Errorf("BusWrite: %v", err)
	}
	got, _ = r.BusRead(1)
	if got.Data != 0xAD {
		t.Errorf("BusRead(1) after write = 0x%02X, want unchanged 0xAD", got.Data)
	}
}

func TestROMOutOfRange(t *testing.T) {
	r := NewROM([]uint8{0x01})
	got, err := r.BusRead(5)
	if err != nil {
		t.Fatalf("BusRead: %v", err)
	}
	if !got.OpenBus {
		t.Errorf("BusRead(5) = %+v, want OpenBus", got)
	}
}

// Both device types must satisfy bus.Device so they can be registered
// against a bus.Router directly.
var (
	_ bus.Device = (*RAM)(nil)
	_ bus.Device = (*ROM)(nil)
)
