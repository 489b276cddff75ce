package cpu

// Register-to-register transfers. TXS moves no flags; the rest set N,Z
// from the destination's new value.

func tax(regs *archRegs, _ *uint8) {
	regs.x.Set(regs.a.Get())
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.x.Get()) })
}

func tay(regs *archRegs, _ *uint8) {
	regs.y.Set(regs.a.Get())
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.y.Get()) })
}

func tsx(regs *archRegs, _ *uint8) {
	regs.x.Set(regs.s.Get())
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.x.Get()) })
}

func txa(regs *archRegs, _ *uint8) {
	regs.a.Set(regs.x.Get())
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.a.Get()) })
}

func txs(regs *archRegs, _ *uint8) {
	regs.s.Set(regs.x.Get())
}

func tya(regs *archRegs, _ *uint8) {
	regs.a.Set(regs.y.Get())
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.a.Get()) })
}
