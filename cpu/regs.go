package cpu

import "github.com/ithompson/picosnes/tracer"

// archRegs holds the six architectural registers visible to software:
// A, X, Y, S, PC, and the status register P. Every write emits exactly
// one trace event under the cpu.regs element tree.
type archRegs struct {
	a  *tracer.Reg[uint8]
	x  *tracer.Reg[uint8]
	y  *tracer.Reg[uint8]
	s  *tracer.Reg[uint8]
	pc *tracer.Reg[uint16]
	p  *tracer.Reg[PSR]
}

func newArchRegs(t *tracer.Tracer, parent tracer.ElementID) archRegs {
	return archRegs{
		a:  tracer.NewReg("A", t, parent, tracer.FormatU8),
		x:  tracer.NewReg("X", t, parent, tracer.FormatU8),
		y:  tracer.NewReg("Y", t, parent, tracer.FormatU8),
		s:  tracer.NewReg("S", t, parent, tracer.FormatU8),
		pc: tracer.NewReg("PC", t, parent, tracer.FormatU16),
		p:  tracer.NewReg("P", t, parent, formatPSR),
	}
}

// internalRegs holds the four 8-bit scratch registers visible only to
// the cycle engine: a 16-bit effective-address latch (tmp_lo/tmp_hi)
// built across multiple cycles, staged write/inter-cycle data (dat),
// and a mirror of the byte last presented on the data bus (rdVal).
type internalRegs struct {
	tmpLo uint8
	tmpHi uint8
	dat   uint8
	rdVal uint8
}

func (r internalRegs) tmpAddr() uint16 {
	return uint16(r.tmpLo) | uint16(r.tmpHi)<<8
}
