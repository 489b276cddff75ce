package cpu

func pha(regs *archRegs, val *uint8) {
	*val = regs.a.Get()
}

func php(regs *archRegs, val *uint8) {
	*val = regs.p.Get().AsStackU8(true)
}

func pla(regs *archRegs, val *uint8) {
	regs.a.Set(*val)
	regs.p.Update(func(p PSR) PSR { return p.withNZFromValue(*val) })
}

func plp(regs *archRegs, val *uint8) {
	regs.p.Set(PSRFromStackU8(*val))
}
