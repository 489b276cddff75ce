package cpu

// aluAddSub implements the shared binary add/subtract path for ADC and
// SBC: SBC is simply ADC with val inverted (one's complement), which
// naturally reproduces 6502 borrow-via-carry semantics. The NES variant
// disables decimal mode entirely, so this is the only ALU add path —
// no BCD correction is performed.
func aluAddSub(regs *archRegs, val uint8) {
	a := regs.a.Get()
	carryIn := uint16(0)
	if regs.p.Get().C {
		carryIn = 1
	}
	wide := uint16(a) + uint16(val) + carryIn
	result := uint8(wide)
	carryOut := wide > 0xFF
	overflow := (result^a)&(result^val)&0x80 != 0

	regs.a.Set(result)
	regs.p.Update(func(p PSR) PSR { return p.withNZCVFromValue(result, carryOut, overflow) })
}

func adc(regs *archRegs, val *uint8) {
	aluAddSub(regs, *val)
}

func sbc(regs *archRegs, val *uint8) {
	aluAddSub(regs, ^*val)
}

func cmp(regs *archRegs, val *uint8) {
	result := regs.a.Get() - *val
	regs.p.Update(func(p PSR) PSR { return p.withNZC(result&0x80 != 0, result == 0, regs.a.Get() >= *val) })
}

func cpx(regs *archRegs, val *uint8) {
	result := regs.x.Get() - *val
	regs.p.Update(func(p PSR) PSR { return p.withNZC(result&0x80 != 0, result == 0, regs.x.Get() >= *val) })
}

func cpy(regs *archRegs, val *uint8) {
	result := regs.y.Get() - *val
	regs.p.Update(func(p PSR) PSR { return p.withNZC(result&0x80 != 0, result == 0, regs.y.Get() >= *val) })
}

func inc(regs *archRegs, val *uint8) {
	*val++
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func dec(regs *archRegs, val *uint8) {
	*val--
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func inx(regs *archRegs, _ *uint8) {
	regs.x.Update(func(x uint8) uint8 { return x + 1 })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.x.Get()) })
}

func dex(regs *archRegs, _ *uint8) {
	regs.x.Update(func(x uint8) uint8 { return x - 1 })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.x.Get()) })
}

func iny(regs *archRegs, _ *uint8) {
	regs.y.Update(func(y uint8) uint8 { return y + 1 })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.y.Get()) })
}

func dey(regs *archRegs, _ *uint8) {
	regs.y.Update(func(y uint8) uint8 { return y - 1 })
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(regs.y.Get()) })
}
