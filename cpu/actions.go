package cpu

// action is a named, atomic mutation performed on a single tick before
// the resulting bus access is computed. The trace name is emitted under
// cpu.seq on every invocation (C1/C4).
type action struct {
	traceName string
	fn        func(c *Cpu) error
}

func act(name string, fn func(c *Cpu) error) *action {
	return &action{traceName: name, fn: fn}
}

// actNop performs no effect; used to fill memory cycles (dummy reads,
// fixup cycles) that have no register-visible side effect.
var actNop = act("NOP", func(c *Cpu) error { return nil })

// actDispatch decodes rd_val as an opcode, selects the next sequence
// (or diverts to a pending interrupt), and installs the opcode's op
// kernel.
var actDispatch = act("DISPATCH", func(c *Cpu) error {
	return c.dispatch(c.internal.rdVal)
})

var actSetP = act("SET_P", func(c *Cpu) error {
	c.regs.p.Set(PSRFromStackU8(c.internal.rdVal))
	return nil
})

var actDecS = act("DEC_S", func(c *Cpu) error {
	c.regs.s.Update(func(s uint8) uint8 { return s - 1 })
	return nil
})

var actSetPCLo = act("SET_PC_LO", func(c *Cpu) error {
	c.regs.pc.Update(func(pc uint16) uint16 { return (pc & 0xFF00) | uint16(c.internal.rdVal) })
	return nil
})

var actSetPCHi = act("SET_PC_HI", func(c *Cpu) error {
	c.regs.pc.Update(func(pc uint16) uint16 { return (pc & 0x00FF) | uint16(c.internal.rdVal)<<8 })
	return nil
})

// actAdvancePC completes RTS: JSR stacks the address of its own last
// byte, one less than the return address, so the popped PC must be
// incremented once more, on its own cycle, before execution resumes.
var actAdvancePC = act("ADVANCE_PC", func(c *Cpu) error {
	c.regs.pc.Update(func(pc uint16) uint16 { return pc + 1 })
	return nil
})

var actSetPCFull = act("SET_PC_FULL", func(c *Cpu) error {
	c.regs.pc.Set(uint16(c.internal.rdVal)<<8 | uint16(c.internal.tmpLo))
	return nil
})

// actAdvancePCByDatStopIfNoCarry adds the signed branch displacement
// staged in dat to PC's low byte. The preceding cycle's dummy fetch
// already advanced PC by one past the true base (the address of the
// instruction following the branch), so that advance is undone here
// before the add. If the add doesn't cross a page, the branch is
// already complete (3 cycles total) and the rest of the sequence is
// replaced by actAdvancePCDispatch; otherwise dat is replaced with the
// +1/-1 correction CARRY_INTO_PC_HI applies on the following cycle.
var actAdvancePCByDatStopIfNoCarry = act("ADVANCE_PC_BY_DAT_STOP_IF_NO_CARRY", func(c *Cpu) error {
	base := c.regs.pc.Get() - 1
	pcLo := uint8(base & 0x00FF)
	disp := int8(c.internal.dat)
	newLo := pcLo + uint8(disp)
	carry := (disp >= 0 && newLo < pcLo) || (disp < 0 && newLo > pcLo)
	c.regs.pc.Set((base & 0xFF00) | uint16(newLo))
	if carry {
		if c.internal.dat < 0x80 {
			c.internal.dat = 1
		} else {
			c.internal.dat = 0xFF
		}
	} else {
		c.sequence = []cycle{cy(actAdvancePCDispatch, IncReadPC)}
	}
	return nil
})

// actAdvancePCDispatch follows a taken branch that stayed on its page.
// That branch's last cycle read the target's opcode with ReadPC, which
// leaves PC on the opcode, so PC is stepped past it here before the
// dispatch and the operand fetch that follows.
var actAdvancePCDispatch = act("ADVANCE_PC_DISPATCH", func(c *Cpu) error {
	c.regs.pc.Update(func(pc uint16) uint16 { return pc + 1 })
	return c.dispatch(c.internal.rdVal)
})

var actCarryIntoPCHi = act("CARRY_INTO_PC_HI", func(c *Cpu) error {
	pcHi := uint8(c.regs.pc.Get() >> 8)
	pcHi += c.internal.dat
	c.regs.pc.Update(func(pc uint16) uint16 { return (pc & 0x00FF) | uint16(pcHi)<<8 })
	return nil
})

var actInvokeOp = act("INVOKE_OP", func(c *Cpu) error {
	var val uint8
	c.opFunc(&c.regs, &val)
	return nil
})

var actInvokeOpA = act("INVOKE_OP_A", func(c *Cpu) error {
	val := c.regs.a.Get()
	c.opFunc(&c.regs, &val)
	c.regs.a.Set(val)
	return nil
})

var actInvokeOpDat = act("INVOKE_OP_DAT", func(c *Cpu) error {
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actInvokeOpRdVal = act("INVOKE_OP_RD_VAL", func(c *Cpu) error {
	val := c.internal.rdVal
	c.opFunc(&c.regs, &val)
	return nil
})

var actSetTmpLo = act("SET_TMP_LO", func(c *Cpu) error {
	c.internal.tmpLo = c.internal.rdVal
	return nil
})

// actSetPCFullFromDat completes a vector fetch: the low byte was
// stashed in dat by actSaveRdValIncTmp on the previous cycle, and this
// cycle's rd_val supplies the high byte.
var actSetPCFullFromDat = act("SET_PC_FULL_FROM_DAT", func(c *Cpu) error {
	c.regs.pc.Set(uint16(c.internal.rdVal)<<8 | uint16(c.internal.dat))
	return nil
})

var actSetTmpHi = act("SET_TMP_HI", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	return nil
})

var actSetTmpFull = act("SET_TMP_FULL", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	c.internal.tmpLo = c.internal.dat
	return nil
})

var actSetTmpZp = act("SET_TMP_ZP", func(c *Cpu) error {
	c.internal.tmpLo = c.internal.rdVal
	c.internal.tmpHi = 0
	return nil
})

var actSetTmpHiInvokeOpDat = act("SET_TMP_HI_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actSetTmpZpInvokeOpDat = act("SET_TMP_ZP_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpLo = c.internal.rdVal
	c.internal.tmpHi = 0
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actSetTmpFullInvokeOpDat = act("SET_TMP_FULL_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	c.internal.tmpLo = c.internal.dat
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actSetTmpHiIncByXRecordCarry = act("SET_TMP_HI_INC_BY_X_RECORD_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.tmpLo) + uint16(c.regs.x.Get())
	c.internal.tmpLo = uint8(sum)
	if sum > 0xFF {
		c.internal.dat = 1
	} else {
		c.internal.dat = 0
	}
	return nil
})

var actSetTmpHiIncByXSkipIfNoCarry = act("SET_TMP_HI_INC_BY_X_SKIP_IF_NO_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.tmpLo) + uint16(c.regs.x.Get())
	c.internal.tmpLo = uint8(sum)
	if sum <= 0xFF {
		c.skipNextCycle()
	}
	return nil
})

var actSetTmpHiIncByYRecordCarry = act("SET_TMP_HI_INC_BY_Y_RECORD_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.tmpLo) + uint16(c.regs.y.Get())
	c.internal.tmpLo = uint8(sum)
	if sum > 0xFF {
		c.internal.dat = 1
	} else {
		c.internal.dat = 0
	}
	return nil
})

var actSetTmpHiIncByYSkipIfNoCarry = act("SET_TMP_HI_INC_BY_Y_SKIP_IF_NO_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.tmpLo) + uint16(c.regs.y.Get())
	c.internal.tmpLo = uint8(sum)
	if sum <= 0xFF {
		c.skipNextCycle()
	}
	return nil
})

var actSetTmpFullIncByYRecordCarry = act("SET_TMP_FULL_INC_BY_Y_RECORD_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.dat) + uint16(c.regs.y.Get())
	c.internal.tmpLo = uint8(sum)
	if sum > 0xFF {
		c.internal.dat = 1
	} else {
		c.internal.dat = 0
	}
	return nil
})

var actSetTmpFullIncByYSkipIfNoCarry = act("SET_TMP_FULL_INC_BY_Y_SKIP_IF_NO_CARRY", func(c *Cpu) error {
	c.internal.tmpHi = c.internal.rdVal
	sum := uint16(c.internal.dat) + uint16(c.regs.y.Get())
	c.internal.tmpLo = uint8(sum)
	if sum <= 0xFF {
		c.skipNextCycle()
	}
	return nil
})

var actIncTmpHi = act("INC_TMP_HI", func(c *Cpu) error {
	c.internal.tmpHi++
	return nil
})

var actCarryIntoTmpHi = act("CARRY_INTO_TMP_HI", func(c *Cpu) error {
	c.internal.tmpHi += c.internal.dat
	return nil
})

var actCarryIntoTmpHiInvokeOpDat = act("CARRY_INTO_TMP_HI_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpHi += c.internal.dat
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actIncTmpByX = act("INC_TMP_BY_X", func(c *Cpu) error {
	c.internal.tmpLo += c.regs.x.Get()
	return nil
})

var actIncTmpByXInvokeOpDat = act("INC_TMP_BY_X_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpLo += c.regs.x.Get()
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actIncTmpByY = act("INC_TMP_BY_Y", func(c *Cpu) error {
	c.internal.tmpLo += c.regs.y.Get()
	return nil
})

var actIncTmpByYInvokeOpDat = act("INC_TMP_BY_Y_INVOKE_OP_DAT", func(c *Cpu) error {
	c.internal.tmpLo += c.regs.y.Get()
	val := c.internal.dat
	c.opFunc(&c.regs, &val)
	c.internal.dat = val
	return nil
})

var actSavePCHi = act("SAVE_PC_HI", func(c *Cpu) error {
	c.internal.dat = uint8(c.regs.pc.Get() >> 8)
	return nil
})

var actSavePCLo = act("SAVE_PC_LO", func(c *Cpu) error {
	c.internal.dat = uint8(c.regs.pc.Get() & 0xFF)
	return nil
})

var actSaveRdVal = act("SAVE_RD_VAL", func(c *Cpu) error {
	c.internal.dat = c.internal.rdVal
	return nil
})

var actSaveP = act("SAVE_P", func(c *Cpu) error {
	c.internal.dat = c.regs.p.Get().AsStackU8(false)
	return nil
})

var actSavePBrk = act("SAVE_P_BRK", func(c *Cpu) error {
	c.internal.dat = c.regs.p.Get().AsStackU8(true)
	return nil
})

// actSaveRdValStopIfNoBranch stages the branch displacement and invokes
// the branch's op kernel as a predicate; if the condition is false the
// instruction ends on this cycle (2 total), matching the 6502's
// not-taken branch timing.
var actSaveRdValStopIfNoBranch = act("SAVE_RD_VAL_STOP_IF_NO_BRANCH", func(c *Cpu) error {
	c.internal.dat = c.internal.rdVal
	var cond uint8
	c.opFunc(&c.regs, &cond)
	if cond == 0 {
		c.endInstruction()
	}
	return nil
})

var actSaveRdValIncTmp = act("SAVE_RD_VAL_INC_TMP", func(c *Cpu) error {
	c.internal.dat = c.internal.rdVal
	c.internal.tmpLo++
	return nil
})

var actSetResetVec = act("SET_RESET_VEC", func(c *Cpu) error {
	c.internal.tmpHi = 0xFF
	c.internal.tmpLo = 0xFC
	c.regs.p.Update(func(p PSR) PSR { return p.withI(true) })
	return nil
})

var actSetIrqVec = act("SET_IRQ_VEC", func(c *Cpu) error {
	c.internal.tmpHi = 0xFF
	c.internal.tmpLo = 0xFE
	c.regs.p.Update(func(p PSR) PSR { return p.withI(true) })
	return nil
})

var actSetNmiVec = act("SET_NMI_VEC", func(c *Cpu) error {
	c.internal.tmpHi = 0xFF
	c.internal.tmpLo = 0xFA
	c.regs.p.Update(func(p PSR) PSR { return p.withI(true) })
	return nil
})
