package cpu

func asl(regs *archRegs, val *uint8) {
	carry := *val&0x80 != 0
	*val <<= 1
	regs.p.Update(func(p PSR) PSR { return p.withNZCFromValue(*val, carry) })
}

func lsr(regs *archRegs, val *uint8) {
	carry := *val&0x01 != 0
	*val >>= 1
	regs.p.Update(func(p PSR) PSR { return p.withNZCFromValue(*val, carry) })
}

func rol(regs *archRegs, val *uint8) {
	carry := *val&0x80 != 0
	var carryIn uint8
	if regs.p.Get().C {
		carryIn = 1
	}
	*val = (*val << 1) | carryIn
	regs.p.Update(func(p PSR) PSR { return p.withNZCFromValue(*val, carry) })
}

func ror(regs *archRegs, val *uint8) {
	carry := *val&0x01 != 0
	var carryIn uint8
	if regs.p.Get().C {
		carryIn = 0x80
	}
	*val = carryIn | (*val >> 1)
	regs.p.Update(func(p PSR) PSR { return p.withNZCFromValue(*val, carry) })
}
