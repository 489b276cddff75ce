package cpu

// opFunc is a pure register/ALU transformation keyed by mnemonic. val is
// both input (read ops like LDA) and output (write ops like STA, which
// copy A into it); it is unused for implied ops. Kernels never read PC
// or internal registers — all such coupling lives in cycle actions.
type opFunc func(regs *archRegs, val *uint8)

// nop performs no register or flag effect. Used for the 6502's NOP
// opcode and for addressing-mode cycles (e.g. JMP) that have no
// register-visible ALU operation.
func nop(_ *archRegs, _ *uint8) {}
