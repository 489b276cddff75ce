package cpu

func clc(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withC(false) }) }
func sec(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withC(true) }) }
func cli(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withI(false) }) }
func sei(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withI(true) }) }
func cld(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withD(false) }) }
func sed(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withD(true) }) }
func clv(regs *archRegs, _ *uint8) { regs.p.Update(func(p PSR) PSR { return p.withV(false) }) }
