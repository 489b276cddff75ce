package cpu

func and(regs *archRegs, val *uint8) {
	regs.a.Update(func(a uint8) uint8 { return a & *val })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.a.Get()) })
}

func ora(regs *archRegs, val *uint8) {
	regs.a.Update(func(a uint8) uint8 { return a | *val })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.a.Get()) })
}

func eor(regs *archRegs, val *uint8) {
	regs.a.Update(func(a uint8) uint8 { return a ^ *val })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.a.Get()) })
}

// bit computes A & val without storing the result: Z reflects the AND,
// while N and V are taken directly from bits 7 and 6 of val.
func bit(regs *archRegs, val *uint8) {
	m7 := *val&0x80 != 0
	m6 := *val&0x40 != 0
	z := regs.a.Get()&*val == 0
	regs.p.Update(func(p PSR) PSR { return p.withNZV(m7, z, m6) })
}
