package cpu

// lda, ldx, ldy load a register from val, setting N,Z from the loaded
// value. sta, stx, sty copy a register into val (the memory cycle that
// follows writes it back out) and touch no flags.

func lda(regs *archRegs, val *uint8) {
	regs.a.Set(*val)
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func ldx(regs *archRegs, val *uint8) {
	regs.x.Set(*val)
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func ldy(regs *archRegs, val *uint8) {
	regs.y.Set(*val)
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func sta(regs *archRegs, val *uint8) {
	*val = regs.a.Get()
}

func stx(regs *archRegs, val *uint8) {
	*val = regs.x.Get()
}

func sty(regs *archRegs, val *uint8) {
	*val = regs.y.Get()
}
