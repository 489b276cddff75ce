// Package cpu implements a cycle-accurate MOS 6502 core. The engine
// performs exactly one bus transaction per call to Tick: callers drive
// the bus (decoding the returned BusAccess, servicing it, and feeding
// the result back on the next Tick) the way a real system's clock
// generator and address decoder would.
package cpu

import (
	"fmt"

	"github.com/ithompson/picosnes/tracer"
)

// CpuError is returned by Tick/dispatch for conditions the engine
// itself cannot recover from.
type CpuError struct {
	msg string
}

func (e *CpuError) Error() string { return e.msg }

// IllegalOpcode reports that the opcode table has no entry for the
// fetched byte. The NMOS 6502 has documented behavior for many of
// these, but this core only implements the 151 documented opcodes.
func IllegalOpcode(opcode uint8) error {
	return &CpuError{msg: fmt.Sprintf("illegal opcode $%02X", opcode)}
}

// BusAccessKind distinguishes a read from a write in a BusAccess.
type BusAccessKind int

const (
	BusRead BusAccessKind = iota
	BusWrite
)

// BusAccess is the single bus transaction Tick requests for the cycle
// that just ran. Addr is always 16 bits: the core itself never
// addresses outside that range, though the bus package it plugs into
// uses a wider internal address space for mapping flexibility.
type BusAccess struct {
	Kind BusAccessKind
	Addr uint16
	Data uint8
}

func readAccess(addr uint16) BusAccess { return BusAccess{Kind: BusRead, Addr: addr} }

func writeAccess(addr uint16, data uint8) BusAccess {
	return BusAccess{Kind: BusWrite, Addr: addr, Data: data}
}

// RegSnapshot is a plain, non-traced copy of the architectural register
// file, suitable for assertions in tests and for debugger front ends.
type RegSnapshot struct {
	A, X, Y, S uint8
	PC         uint16
	P          PSR
}

// Cpu is the cycle engine: register file, scratch state, the currently
// active cycle sequence, and the tracer hookup.
type Cpu struct {
	regs     archRegs
	internal internalRegs

	opFunc opFunc

	sequence []cycle

	nmiPending  bool
	irqSignaled bool

	t            *tracer.Tracer
	seqElement   tracer.ElementID
	instrElement tracer.ElementID
	memElement   tracer.ElementID
}

// New constructs a Cpu with its architectural registers wired to t
// under the cpu.regs/cpu.seq/cpu.instr/cpu.mem element tree, and
// installs resetSequence so a Tick before any explicit Reset() still
// runs RESET rather than decoding whatever happens to be on the bus.
// If t is nil, a disabled tracer is used and tracing is a no-op.
func New(t *tracer.Tracer) *Cpu {
	if t == nil {
		t = tracer.New(nil, nil)
	}
	cpuElement := t.RegisterElement("cpu", tracer.Root)
	regsElement := t.RegisterElement("regs", cpuElement)
	c := &Cpu{
		t:            t,
		seqElement:   t.RegisterElement("seq", cpuElement),
		instrElement: t.RegisterElement("instr", cpuElement),
		memElement:   t.RegisterElement("mem", cpuElement),
		opFunc:       nop,
		sequence:     append([]cycle(nil), resetSequence...),
	}
	c.regs = newArchRegs(t, regsElement)
	c.regs.s.Set(0xFD)
	return c
}

// Regs returns a non-traced snapshot of the architectural register
// file, for inspection by tests and debug tooling.
func (c *Cpu) Regs() RegSnapshot {
	return RegSnapshot{
		A:  c.regs.a.Get(),
		X:  c.regs.x.Get(),
		Y:  c.regs.y.Get(),
		S:  c.regs.s.Get(),
		PC: c.regs.pc.Get(),
		P:  c.regs.p.Get(),
	}
}

// MemTraceElement returns the element ID bus accesses are logged under,
// for callers that want to correlate CPU cycles with device-side trace
// output on the same tracer.
func (c *Cpu) MemTraceElement() tracer.ElementID { return c.memElement }

// Reset installs the reset sequence and clears a pending NMI latch,
// matching the 6502's behavior of ignoring the instruction in flight
// when RESET is asserted. IRQ is level-sensed, owned by the host
// asserting the line, not CPU-resettable state, so irqSignaled is left
// untouched.
func (c *Cpu) Reset() {
	c.sequence = append([]cycle(nil), resetSequence...)
	c.nmiPending = false
}

// TriggerNMI latches a pending NMI. Like real hardware, this is edge
// triggered: it is only cleared once the NMI sequence has been
// dispatched.
func (c *Cpu) TriggerNMI() { c.nmiPending = true }

// SetIRQSignaled sets or clears the level-sensed IRQ line. Unlike NMI,
// IRQ must be continuously asserted by the caller for as long as the
// interrupt condition holds.
func (c *Cpu) SetIRQSignaled(signaled bool) { c.irqSignaled = signaled }

// skipNextCycle drops the next queued cycle from the active sequence
// without executing it, implementing the 6502's "oops" cycle elision:
// read-mode indexed addressing only pays for the page-cross fixup cycle
// when a carry actually occurred.
func (c *Cpu) skipNextCycle() {
	if len(c.sequence) > 0 {
		c.sequence = c.sequence[1:]
	}
}

// endInstruction discards the remainder of the active sequence,
// returning control to DISPATCH_SEQUENCE on the next Tick. Used by
// branch-not-taken.
func (c *Cpu) endInstruction() {
	c.sequence = nil
}

// dispatch selects the next sequence to run: a pending NMI takes
// priority over a signaled IRQ, which takes priority over the normal
// opcode table lookup. opcode is the byte the previous sequence's final
// cycle prefetched, and is only consulted in the no-interrupt case.
func (c *Cpu) dispatch(opcode uint8) error {
	if c.nmiPending {
		c.nmiPending = false
		c.sequence = append([]cycle(nil), nmiSequence...)
		return nil
	}
	if c.irqSignaled && !c.regs.p.Get().I {
		c.sequence = append([]cycle(nil), irqSequence...)
		return nil
	}
	entry := opcodeTable[opcode]
	if entry == nil {
		return IllegalOpcode(opcode)
	}
	c.t.TraceEvent(c.instrElement, "%-3s $%02X", entry.Name, opcode)
	c.opFunc = entry.OpFunc
	c.sequence = append([]cycle(nil), entry.Sequence...)
	return nil
}

// Tick runs exactly one clock: dataBus is the byte the previous
// BusAccess's Read produced (ignored following a Write, and on the
// very first Tick after New/Reset). It returns the bus transaction the
// caller must perform to conclude this cycle.
func (c *Cpu) Tick(dataBus uint8) (BusAccess, error) {
	c.internal.rdVal = dataBus

	if len(c.sequence) == 0 {
		c.sequence = append([]cycle(nil), dispatchSequence...)
	}

	cur := c.sequence[0]
	c.sequence = c.sequence[1:]

	c.t.TraceEvent(c.seqElement, "%s", cur.action.traceName)
	if err := cur.action.fn(c); err != nil {
		return BusAccess{}, err
	}

	access := c.busAccessFor(cur.memCycle)
	c.t.TraceEvent(c.memElement, "%s $%04X%s", accessVerb(access.Kind), access.Addr, dataSuffix(access))
	return access, nil
}

func accessVerb(k BusAccessKind) string {
	if k == BusWrite {
		return "write"
	}
	return "read "
}

func dataSuffix(a BusAccess) string {
	if a.Kind == BusWrite {
		return fmt.Sprintf(" = 0x%02X", a.Data)
	}
	return ""
}

// busAccessFor computes the bus transaction for m and applies the
// register side effect (PC/S movement) it implies. This is where the
// MemCycle enum's meaning is actually defined: push cycles write then
// decrement S, pull cycles increment S then read, and the plain
// Read/IncReadStk variants read without moving S (used for the dummy
// pre-pull cycle).
func (c *Cpu) busAccessFor(m MemCycle) BusAccess {
	switch m {
	case IncReadPC:
		addr := c.regs.pc.Get()
		c.regs.pc.Set(addr + 1)
		return readAccess(addr)
	case ReadPC:
		return readAccess(c.regs.pc.Get())
	case IncReadTmp:
		addr := c.internal.tmpAddr()
		c.internal.tmpLo++
		return readAccess(addr)
	case ReadTmp:
		return readAccess(c.internal.tmpAddr())
	case IncWriteTmp:
		addr := c.internal.tmpAddr()
		c.internal.tmpLo++
		return writeAccess(addr, c.internal.dat)
	case WriteTmp:
		return writeAccess(c.internal.tmpAddr(), c.internal.dat)
	case IncReadStk, ReadStk:
		return readAccess(0x0100 | uint16(c.regs.s.Get()))
	case IncPushStk, PushStk:
		addr := 0x0100 | uint16(c.regs.s.Get())
		c.regs.s.Update(func(s uint8) uint8 { return s - 1 })
		return writeAccess(addr, c.internal.dat)
	case PopStk:
		c.regs.s.Update(func(s uint8) uint8 { return s + 1 })
		return readAccess(0x0100 | uint16(c.regs.s.Get()))
	default:
		return readAccess(c.regs.pc.Get())
	}
}
