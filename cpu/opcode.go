package cpu

// Opcode binds a mnemonic to the op kernel it invokes and the cycle
// sequence that drives addressing-mode timing around that kernel.
type Opcode struct {
	Name     string
	OpFunc   opFunc
	Sequence []cycle
}

// opcodeTable maps each of the 256 possible opcode bytes to its
// Opcode, or nil for the 105 byte values with no documented NMOS 6502
// instruction.
var opcodeTable [256]*Opcode

func def(code uint8, name string, fn opFunc, seq []cycle) {
	if opcodeTable[code] != nil {
		panic("duplicate opcode definition")
	}
	opcodeTable[code] = &Opcode{Name: name, OpFunc: fn, Sequence: seq}
}

func init() {
	// ADC
	def(0x69, "ADC", adc, immReadSequence)
	def(0x65, "ADC", adc, zpReadSequence)
	def(0x75, "ADC", adc, zpxReadSequence)
	def(0x6D, "ADC", adc, absReadSequence)
	def(0x7D, "ADC", adc, absxReadSequence)
	def(0x79, "ADC", adc, absyReadSequence)
	def(0x61, "ADC", adc, indxReadSequence)
	def(0x71, "ADC", adc, indyReadSequence)

	// AND
	def(0x29, "AND", and, immReadSequence)
	def(0x25, "AND", and, zpReadSequence)
	def(0x35, "AND", and, zpxReadSequence)
	def(0x2D, "AND", and, absReadSequence)
	def(0x3D, "AND", and, absxReadSequence)
	def(0x39, "AND", and, absyReadSequence)
	def(0x21, "AND", and, indxReadSequence)
	def(0x31, "AND", and, indyReadSequence)

	// ASL
	def(0x0A, "ASL", asl, accRmwSequence)
	def(0x06, "ASL", asl, zpRmwSequence)
	def(0x16, "ASL", asl, zpxRmwSequence)
	def(0x0E, "ASL", asl, absRmwSequence)
	def(0x1E, "ASL", asl, absxRmwSequence)

	// Branches
	def(0x90, "BCC", bcc, relBranchSequence)
	def(0xB0, "BCS", bcs, relBranchSequence)
	def(0xF0, "BEQ", beq, relBranchSequence)
	def(0x30, "BMI", bmi, relBranchSequence)
	def(0xD0, "BNE", bne, relBranchSequence)
	def(0x10, "BPL", bpl, relBranchSequence)
	def(0x50, "BVC", bvc, relBranchSequence)
	def(0x70, "BVS", bvs, relBranchSequence)

	// BIT
	def(0x24, "BIT", bit, zpReadSequence)
	def(0x2C, "BIT", bit, absReadSequence)

	// BRK
	def(0x00, "BRK", nop, impBrkSequence)

	// Flag clear/set
	def(0x18, "CLC", clc, impNomemSequence)
	def(0xD8, "CLD", cld, impNomemSequence)
	def(0x58, "CLI", cli, impNomemSequence)
	def(0xB8, "CLV", clv, impNomemSequence)
	def(0x38, "SEC", sec, impNomemSequence)
	def(0xF8, "SED", sed, impNomemSequence)
	def(0x78, "SEI", sei, impNomemSequence)

	// CMP
	def(0xC9, "CMP", cmp, immReadSequence)
	def(0xC5, "CMP", cmp, zpReadSequence)
	def(0xD5, "CMP", cmp, zpxReadSequence)
	def(0xCD, "CMP", cmp, absReadSequence)
	def(0xDD, "CMP", cmp, absxReadSequence)
	def(0xD9, "CMP", cmp, absyReadSequence)
	def(0xC1, "CMP", cmp, indxReadSequence)
	def(0xD1, "CMP", cmp, indyReadSequence)

	// CPX / CPY
	def(0xE0, "CPX", cpx, immReadSequence)
	def(0xE4, "CPX", cpx, zpReadSequence)
	def(0xEC, "CPX", cpx, absReadSequence)
	def(0xC0, "CPY", cpy, immReadSequence)
	def(0xC4, "CPY", cpy, zpReadSequence)
	def(0xCC, "CPY", cpy, absReadSequence)

	// DEC
	def(0xC6, "DEC", dec, zpRmwSequence)
	def(0xD6, "DEC", dec, zpxRmwSequence)
	def(0xCE, "DEC", dec, absRmwSequence)
	def(0xDE, "DEC", dec, absxRmwSequence)

	// DEX / DEY
	def(0xCA, "DEX", dex, impNomemSequence)
	def(0x88, "DEY", dey, impNomemSequence)

	// EOR
	def(0x49, "EOR", eor, immReadSequence)
	def(0x45, "EOR", eor, zpReadSequence)
	def(0x55, "EOR", eor, zpxReadSequence)
	def(0x4D, "EOR", eor, absReadSequence)
	def(0x5D, "EOR", eor, absxReadSequence)
	def(0x59, "EOR", eor, absyReadSequence)
	def(0x41, "EOR", eor, indxReadSequence)
	def(0x51, "EOR", eor, indyReadSequence)

	// INC
	def(0xE6, "INC", inc, zpRmwSequence)
	def(0xF6, "INC", inc, zpxRmwSequence)
	def(0xEE, "INC", inc, absRmwSequence)
	def(0xFE, "INC", inc, absxRmwSequence)

	// INX / INY
	def(0xE8, "INX", inx, impNomemSequence)
	def(0xC8, "INY", iny, impNomemSequence)

	// JMP / JSR
	def(0x4C, "JMP", nop, absJmpSequence)
	def(0x6C, "JMP", nop, absIndJmpSequence)
	def(0x20, "JSR", nop, absJsrSequence)

	// LDA
	def(0xA9, "LDA", lda, immReadSequence)
	def(0xA5, "LDA", lda, zpReadSequence)
	def(0xB5, "LDA", lda, zpxReadSequence)
	def(0xAD, "LDA", lda, absReadSequence)
	def(0xBD, "LDA", lda, absxReadSequence)
	def(0xB9, "LDA", lda, absyReadSequence)
	def(0xA1, "LDA", lda, indxReadSequence)
	def(0xB1, "LDA", lda, indyReadSequence)

	// LDX
	def(0xA2, "LDX", ldx, immReadSequence)
	def(0xA6, "LDX", ldx, zpReadSequence)
	def(0xB6, "LDX", ldx, zpyReadSequence)
	def(0xAE, "LDX", ldx, absReadSequence)
	def(0xBE, "LDX", ldx, absyReadSequence)

	// LDY
	def(0xA0, "LDY", ldy, immReadSequence)
	def(0xA4, "LDY", ldy, zpReadSequence)
	def(0xB4, "LDY", ldy, zpxReadSequence)
	def(0xAC, "LDY", ldy, absReadSequence)
	def(0xBC, "LDY", ldy, absxReadSequence)

	// LSR
	def(0x4A, "LSR", lsr, accRmwSequence)
	def(0x46, "LSR", lsr, zpRmwSequence)
	def(0x56, "LSR", lsr, zpxRmwSequence)
	def(0x4E, "LSR", lsr, absRmwSequence)
	def(0x5E, "LSR", lsr, absxRmwSequence)

	// NOP
	def(0xEA, "NOP", nop, impNomemSequence)

	// ORA
	def(0x09, "ORA", ora, immReadSequence)
	def(0x05, "ORA", ora, zpReadSequence)
	def(0x15, "ORA", ora, zpxReadSequence)
	def(0x0D, "ORA", ora, absReadSequence)
	def(0x1D, "ORA", ora, absxReadSequence)
	def(0x19, "ORA", ora, absyReadSequence)
	def(0x01, "ORA", ora, indxReadSequence)
	def(0x11, "ORA", ora, indyReadSequence)

	// Stack
	def(0x48, "PHA", pha, impPushSequence)
	def(0x08, "PHP", php, impPushSequence)
	def(0x68, "PLA", pla, impPopSequence)
	def(0x28, "PLP", plp, impPopSequence)

	// ROL
	def(0x2A, "ROL", rol, accRmwSequence)
	def(0x26, "ROL", rol, zpRmwSequence)
	def(0x36, "ROL", rol, zpxRmwSequence)
	def(0x2E, "ROL", rol, absRmwSequence)
	def(0x3E, "ROL", rol, absxRmwSequence)

	// ROR
	def(0x6A, "ROR", ror, accRmwSequence)
	def(0x66, "ROR", ror, zpRmwSequence)
	def(0x76, "ROR", ror, zpxRmwSequence)
	def(0x6E, "ROR", ror, absRmwSequence)
	def(0x7E, "ROR", ror, absxRmwSequence)

	// RTI / RTS
	def(0x40, "RTI", nop, impRtiSequence)
	def(0x60, "RTS", nop, impRtsSequence)

	// SBC
	def(0xE9, "SBC", sbc, immReadSequence)
	def(0xE5, "SBC", sbc, zpReadSequence)
	def(0xF5, "SBC", sbc, zpxReadSequence)
	def(0xED, "SBC", sbc, absReadSequence)
	def(0xFD, "SBC", sbc, absxReadSequence)
	def(0xF9, "SBC", sbc, absyReadSequence)
	def(0xE1, "SBC", sbc, indxReadSequence)
	def(0xF1, "SBC", sbc, indyReadSequence)

	// STA
	def(0x85, "STA", sta, zpWriteSequence)
	def(0x95, "STA", sta, zpxWriteSequence)
	def(0x8D, "STA", sta, absWriteSequence)
	def(0x9D, "STA", sta, absxWriteSequence)
	def(0x99, "STA", sta, absyWriteSequence)
	def(0x81, "STA", sta, indxWriteSequence)
	def(0x91, "STA", sta, indyWriteSequence)

	// STX / STY
	def(0x86, "STX", stx, zpWriteSequence)
	def(0x96, "STX", stx, zpyWriteSequence)
	def(0x8E, "STX", stx, absWriteSequence)
	def(0x84, "STY", sty, zpWriteSequence)
	def(0x94, "STY", sty, zpxWriteSequence)
	def(0x8C, "STY", sty, absWriteSequence)

	// Register transfers
	def(0xAA, "TAX", tax, impNomemSequence)
	def(0xA8, "TAY", tay, impNomemSequence)
	def(0xBA, "TSX", tsx, impNomemSequence)
	def(0x8A, "TXA", txa, impNomemSequence)
	def(0x9A, "TXS", txs, impNomemSequence)
	def(0x98, "TYA", tya, impNomemSequence)
}
