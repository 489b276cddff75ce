package cpu

// MemCycle names the bus transaction a cycle performs, and therefore
// the PC/S side effect Tick applies when computing the BusAccess for
// that cycle (C4/C5).
//
// Every action decodes rd_val, the result of the PREVIOUS cycle's
// request, never the request this same cycle is about to issue (C4.7).
// Consequently the last cycle of any sequence that hands control back
// to DISPATCH_SEQUENCE must itself be an IncReadPC: its result becomes
// the next DISPATCH's rd_val (the new opcode), and DISPATCH's own
// request fetches that opcode's first operand rather than the opcode
// itself. The one exception is a taken branch that stays on its page:
// it ends on a ReadPC of the target's opcode and hands over to
// actAdvancePCDispatch, which steps PC past that opcode before
// dispatching.
type MemCycle int

const (
	// IncReadPC reads the byte at PC, then increments PC.
	IncReadPC MemCycle = iota
	// ReadPC reads the byte at PC without advancing it (used for the
	// dummy read some addressing modes perform on their last operand
	// fetch cycle).
	ReadPC
	// IncReadTmp reads the byte at the tmp address, then increments
	// tmp's low byte (used when an instruction reads two sequential
	// bytes through tmp, e.g. indirect vector fetches).
	IncReadTmp
	// ReadTmp reads the byte at the tmp address.
	ReadTmp
	// IncWriteTmp writes dat to the tmp address, then increments tmp's
	// low byte.
	IncWriteTmp
	// WriteTmp writes dat to the tmp address.
	WriteTmp
	// IncReadStk reads the byte at the current stack pointer without
	// moving S (used for RTS/RTI/PLA/PLP's internal dummy read).
	IncReadStk
	// ReadStk reads the byte at the current stack pointer without
	// moving S.
	ReadStk
	// IncPushStk writes dat to the stack, then decrements S.
	IncPushStk
	// PushStk writes dat to the stack at the current S, then decrements
	// S, exactly like IncPushStk (used for the later pushes of a
	// sequence).
	PushStk
	// PopStk increments S, then reads the byte at the new S, completing
	// a pull.
	PopStk
)

// cycle pairs the action executed at the start of a clock with the bus
// transaction Tick performs to conclude it.
type cycle struct {
	action   *action
	memCycle MemCycle
}

func cy(a *action, m MemCycle) cycle { return cycle{action: a, memCycle: m} }

// DISPATCH_SEQUENCE is installed whenever the CPU has no active
// sequence; its action decodes the opcode the previous sequence's
// final cycle already prefetched, and its own request fetches that
// opcode's first operand byte.
var dispatchSequence = []cycle{
	cy(actDispatch, IncReadPC),
}

// resetSequence performs the three dummy descending stack reads real
// hardware substitutes for RESET's suppressed pushes, fetches the
// vector, and ends by fetching the first opcode at the loaded PC.
var resetSequence = []cycle{
	cy(actNop, ReadStk),
	cy(actDecS, ReadStk),
	cy(actDecS, ReadStk),
	cy(actSetResetVec, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetPCFullFromDat, IncReadPC),
}

var irqSequence = []cycle{
	cy(actSavePCHi, IncPushStk),
	cy(actSavePCLo, PushStk),
	cy(actSaveP, PushStk),
	cy(actSetIrqVec, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetPCFullFromDat, IncReadPC),
}

var nmiSequence = []cycle{
	cy(actSavePCHi, IncPushStk),
	cy(actSavePCLo, PushStk),
	cy(actSaveP, PushStk),
	cy(actSetNmiVec, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetPCFullFromDat, IncReadPC),
}

// Absolute addressing.

var absJmpSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetPCFull, IncReadPC),
}

// absJsrSequence reproduces the classic JSR internal dummy stack read
// between the operand-low fetch and the two return-address pushes.
var absJsrSequence = []cycle{
	cy(actSetTmpLo, ReadStk),
	cy(actSavePCHi, IncPushStk),
	cy(actSavePCLo, PushStk),
	cy(actNop, IncReadPC),
	cy(actSetPCFull, IncReadPC),
}

var absReadSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHi, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var absWriteSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

var absRmwSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHi, ReadTmp),
	cy(actSaveRdVal, WriteTmp),
	cy(actInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// absIndJmpSequence reproduces the indirect-JMP page-wrap bug of real
// NMOS 6502 hardware: IncReadTmp increments only tmp's low byte, so a
// pointer low byte of 0xFF makes the high-byte fetch wrap to the start
// of the same page instead of crossing into the next one.
var absIndJmpSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHi, IncReadTmp),
	cy(actSaveRdVal, ReadTmp),
	cy(actSetPCFullFromDat, IncReadPC),
}

// Absolute,X addressing.

var absxReadSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiIncByXSkipIfNoCarry, ReadTmp),
	cy(actIncTmpHi, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var absxWriteSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiIncByXRecordCarry, ReadTmp),
	cy(actCarryIntoTmpHiInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

var absxRmwSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiIncByXRecordCarry, ReadTmp),
	cy(actCarryIntoTmpHi, ReadTmp),
	cy(actSaveRdVal, WriteTmp),
	cy(actInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Absolute,Y addressing.

var absyReadSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiIncByYSkipIfNoCarry, ReadTmp),
	cy(actIncTmpHi, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var absyWriteSequence = []cycle{
	cy(actSetTmpLo, IncReadPC),
	cy(actSetTmpHiIncByYRecordCarry, ReadTmp),
	cy(actCarryIntoTmpHiInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Accumulator addressing.

var accRmwSequence = []cycle{
	cy(actInvokeOpA, IncReadPC),
}

// Immediate addressing.

var immReadSequence = []cycle{
	cy(actInvokeOpRdVal, IncReadPC),
}

// Implied addressing.

// impBrkSequence starts pushing the return address at once: DISPATCH's
// own fetch already read and discarded the byte after the opcode (BRK's
// conventional signature byte), so the pushed address is the opcode's
// address plus two.
var impBrkSequence = []cycle{
	cy(actSavePCHi, IncPushStk),
	cy(actSavePCLo, PushStk),
	cy(actSavePBrk, PushStk),
	cy(actSetIrqVec, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetPCFullFromDat, IncReadPC),
}

var impNomemSequence = []cycle{
	cy(actInvokeOp, IncReadPC),
}

var impPopSequence = []cycle{
	cy(actNop, IncReadStk),
	cy(actNop, PopStk),
	cy(actInvokeOpRdVal, IncReadPC),
}

var impPushSequence = []cycle{
	cy(actInvokeOpDat, IncPushStk),
	cy(actNop, IncReadPC),
}

var impRtiSequence = []cycle{
	cy(actNop, IncReadStk),
	cy(actNop, PopStk),
	cy(actSetP, PopStk),
	cy(actSetPCLo, PopStk),
	cy(actSetPCHi, IncReadPC),
}

var impRtsSequence = []cycle{
	cy(actNop, IncReadStk),
	cy(actNop, PopStk),
	cy(actSetPCLo, PopStk),
	cy(actSetPCHi, ReadPC),
	cy(actAdvancePC, IncReadPC),
}

// Indexed indirect (zp,X) addressing.

var indxReadSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByX, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetTmpFull, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var indxWriteSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByX, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetTmpFullInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Indirect indexed (zp),Y addressing.

var indyReadSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetTmpFullIncByYSkipIfNoCarry, ReadTmp),
	cy(actIncTmpHi, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var indyWriteSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actSaveRdValIncTmp, ReadTmp),
	cy(actSetTmpFullIncByYRecordCarry, ReadTmp),
	cy(actCarryIntoTmpHiInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Relative (branch) addressing.

var relBranchSequence = []cycle{
	cy(actSaveRdValStopIfNoBranch, IncReadPC),
	cy(actAdvancePCByDatStopIfNoCarry, ReadPC),
	cy(actCarryIntoPCHi, IncReadPC),
}

// Zero page addressing.

var zpReadSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var zpWriteSequence = []cycle{
	cy(actSetTmpZpInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

var zpRmwSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actSaveRdVal, WriteTmp),
	cy(actInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Zero page,X addressing.

var zpxReadSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByX, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var zpxWriteSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByXInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

var zpxRmwSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByX, ReadTmp),
	cy(actSaveRdVal, WriteTmp),
	cy(actInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}

// Zero page,Y addressing.

var zpyReadSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByY, ReadTmp),
	cy(actInvokeOpRdVal, IncReadPC),
}

var zpyWriteSequence = []cycle{
	cy(actSetTmpZp, ReadTmp),
	cy(actIncTmpByYInvokeOpDat, WriteTmp),
	cy(actNop, IncReadPC),
}
