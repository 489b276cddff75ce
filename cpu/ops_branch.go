package cpu

// Branch evaluators don't branch themselves — they write a 0/1
// condition result into val, which the REL_BRANCH sequence's actions
// consume to decide whether to end the instruction early or advance PC.

func boolToVal(cond bool, val *uint8) {
	if cond {
		*val = 1
	} else {
		*val = 0
	}
}

func bcc(regs *archRegs, val *uint8) { boolToVal(!regs.p.Get().C, val) }
func bcs(regs *archRegs, val *uint8) { boolToVal(regs.p.Get().C, val) }
func beq(regs *archRegs, val *uint8) { boolToVal(regs.p.Get().Z, val) }
func bmi(regs *archRegs, val *uint8) { boolToVal(regs.p.Get().N, val) }
func bne(regs *archRegs, val *uint8) { boolToVal(!regs.p.Get().Z, val) }
func bpl(regs *archRegs, val *uint8) { boolToVal(!regs.p.Get().N, val) }
func bvc(regs *archRegs, val *uint8) { boolToVal(!regs.p.Get().V, val) }
func bvs(regs *archRegs, val *uint8) { boolToVal(regs.p.Get().V, val) }
