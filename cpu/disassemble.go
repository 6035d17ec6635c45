package cpu

import "github.com/wdc65816/core/addrmode"

// Lookup returns the mnemonic and addressing mode the decode table
// associates with an opcode byte, without executing it. Used by the
// trace and disassembly tooling so they share exactly one source of
// truth for "what does this byte mean" with the core itself.
func Lookup(op uint8) (mnemonic string, mode addrmode.Mode) {
	entry := opcodeTable[op]
	return entry.mnemonic, entry.mode
}
