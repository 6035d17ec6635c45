package cpu

import "github.com/wdc65816/core/addrmode"

// e builds a table entry. Kept as a one-letter helper since the table
// below is the single place that needs it 256 times.
func e(mnemonic string, mode addrmode.Mode, exec opcodeFunc) opcodeEntry {
	return opcodeEntry{mnemonic: mnemonic, mode: mode, exec: exec}
}

// opcodeTable is the closed 256-entry decode table driving Chip.step.
// Every byte value has an entry; none are left at the zero value,
// satisfying §7's "the decode table is total" requirement.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry

	t[0x00] = e("BRK", addrmode.Stack, opBRK)
	t[0x01] = e("ORA", addrmode.DirectIndirectX, opORA(addrmode.DirectIndirectX))
	t[0x02] = e("COP", addrmode.Stack, opCOP)
	t[0x03] = e("ORA", addrmode.StackRelative, opORA(addrmode.StackRelative))
	t[0x04] = e("TSB", addrmode.Direct, opTSB(addrmode.Direct))
	t[0x05] = e("ORA", addrmode.Direct, opORA(addrmode.Direct))
	t[0x06] = e("ASL", addrmode.Direct, opASL(addrmode.Direct))
	t[0x07] = e("ORA", addrmode.DirectIndirectLong, opORA(addrmode.DirectIndirectLong))
	t[0x08] = e("PHP", addrmode.Stack, opPHP)
	t[0x09] = e("ORA", addrmode.Immediate, opORA(addrmode.Immediate))
	t[0x0A] = e("ASL", addrmode.Accumulator, opASL(addrmode.Accumulator))
	t[0x0B] = e("PHD", addrmode.Stack, opPHD)
	t[0x0C] = e("TSB", addrmode.Absolute, opTSB(addrmode.Absolute))
	t[0x0D] = e("ORA", addrmode.Absolute, opORA(addrmode.Absolute))
	t[0x0E] = e("ASL", addrmode.Absolute, opASL(addrmode.Absolute))
	t[0x0F] = e("ORA", addrmode.AbsoluteLong, opORA(addrmode.AbsoluteLong))

	t[0x10] = e("BPL", addrmode.PCRelative, opBPL)
	t[0x11] = e("ORA", addrmode.DirectIndirectY, opORA(addrmode.DirectIndirectY))
	t[0x12] = e("ORA", addrmode.DirectIndirect, opORA(addrmode.DirectIndirect))
	t[0x13] = e("ORA", addrmode.StackRelativeIndirectY, opORA(addrmode.StackRelativeIndirectY))
	t[0x14] = e("TRB", addrmode.Direct, opTRB(addrmode.Direct))
	t[0x15] = e("ORA", addrmode.DirectX, opORA(addrmode.DirectX))
	t[0x16] = e("ASL", addrmode.DirectX, opASL(addrmode.DirectX))
	t[0x17] = e("ORA", addrmode.DirectIndirectLongY, opORA(addrmode.DirectIndirectLongY))
	t[0x18] = e("CLC", addrmode.Implied, opCLC)
	t[0x19] = e("ORA", addrmode.AbsoluteY, opORA(addrmode.AbsoluteY))
	t[0x1A] = e("INC", addrmode.Accumulator, opINC(addrmode.Accumulator))
	t[0x1B] = e("TCS", addrmode.Implied, opTCS)
	t[0x1C] = e("TRB", addrmode.Absolute, opTRB(addrmode.Absolute))
	t[0x1D] = e("ORA", addrmode.AbsoluteX, opORA(addrmode.AbsoluteX))
	t[0x1E] = e("ASL", addrmode.AbsoluteX, opASL(addrmode.AbsoluteX))
	t[0x1F] = e("ORA", addrmode.AbsoluteLongX, opORA(addrmode.AbsoluteLongX))

	t[0x20] = e("JSR", addrmode.Absolute, opJSR)
	t[0x21] = e("AND", addrmode.DirectIndirectX, opAND(addrmode.DirectIndirectX))
	t[0x22] = e("JSL", addrmode.AbsoluteLong, opJSL)
	t[0x23] = e("AND", addrmode.StackRelative, opAND(addrmode.StackRelative))
	t[0x24] = e("BIT", addrmode.Direct, opBIT(addrmode.Direct))
	t[0x25] = e("AND", addrmode.Direct, opAND(addrmode.Direct))
	t[0x26] = e("ROL", addrmode.Direct, opROL(addrmode.Direct))
	t[0x27] = e("AND", addrmode.DirectIndirectLong, opAND(addrmode.DirectIndirectLong))
	t[0x28] = e("PLP", addrmode.Stack, opPLP)
	t[0x29] = e("AND", addrmode.Immediate, opAND(addrmode.Immediate))
	t[0x2A] = e("ROL", addrmode.Accumulator, opROL(addrmode.Accumulator))
	t[0x2B] = e("PLD", addrmode.Stack, opPLD)
	t[0x2C] = e("BIT", addrmode.Absolute, opBIT(addrmode.Absolute))
	t[0x2D] = e("AND", addrmode.Absolute, opAND(addrmode.Absolute))
	t[0x2E] = e("ROL", addrmode.Absolute, opROL(addrmode.Absolute))
	t[0x2F] = e("AND", addrmode.AbsoluteLong, opAND(addrmode.AbsoluteLong))

	t[0x30] = e("BMI", addrmode.PCRelative, opBMI)
	t[0x31] = e("AND", addrmode.DirectIndirectY, opAND(addrmode.DirectIndirectY))
	t[0x32] = e("AND", addrmode.DirectIndirect, opAND(addrmode.DirectIndirect))
	t[0x33] = e("AND", addrmode.StackRelativeIndirectY, opAND(addrmode.StackRelativeIndirectY))
	t[0x34] = e("BIT", addrmode.DirectX, opBIT(addrmode.DirectX))
	t[0x35] = e("AND", addrmode.DirectX, opAND(addrmode.DirectX))
	t[0x36] = e("ROL", addrmode.DirectX, opROL(addrmode.DirectX))
	t[0x37] = e("AND", addrmode.DirectIndirectLongY, opAND(addrmode.DirectIndirectLongY))
	t[0x38] = e("SEC", addrmode.Implied, opSEC)
	t[0x39] = e("AND", addrmode.AbsoluteY, opAND(addrmode.AbsoluteY))
	t[0x3A] = e("DEC", addrmode.Accumulator, opDEC(addrmode.Accumulator))
	t[0x3B] = e("TSC", addrmode.Implied, opTSC)
	t[0x3C] = e("BIT", addrmode.AbsoluteX, opBIT(addrmode.AbsoluteX))
	t[0x3D] = e("AND", addrmode.AbsoluteX, opAND(addrmode.AbsoluteX))
	t[0x3E] = e("ROL", addrmode.AbsoluteX, opROL(addrmode.AbsoluteX))
	t[0x3F] = e("AND", addrmode.AbsoluteLongX, opAND(addrmode.AbsoluteLongX))

	t[0x40] = e("RTI", addrmode.Stack, opRTI)
	t[0x41] = e("EOR", addrmode.DirectIndirectX, opEOR(addrmode.DirectIndirectX))
	t[0x42] = e("WDM", addrmode.Implied, opWDM)
	t[0x43] = e("EOR", addrmode.StackRelative, opEOR(addrmode.StackRelative))
	t[0x44] = e("MVP", addrmode.BlockMove, opMVP)
	t[0x45] = e("EOR", addrmode.Direct, opEOR(addrmode.Direct))
	t[0x46] = e("LSR", addrmode.Direct, opLSR(addrmode.Direct))
	t[0x47] = e("EOR", addrmode.DirectIndirectLong, opEOR(addrmode.DirectIndirectLong))
	t[0x48] = e("PHA", addrmode.Stack, opPHA)
	t[0x49] = e("EOR", addrmode.Immediate, opEOR(addrmode.Immediate))
	t[0x4A] = e("LSR", addrmode.Accumulator, opLSR(addrmode.Accumulator))
	t[0x4B] = e("PHK", addrmode.Stack, opPHK)
	t[0x4C] = e("JMP", addrmode.Absolute, opJMPAbsolute)
	t[0x4D] = e("EOR", addrmode.Absolute, opEOR(addrmode.Absolute))
	t[0x4E] = e("LSR", addrmode.Absolute, opLSR(addrmode.Absolute))
	t[0x4F] = e("EOR", addrmode.AbsoluteLong, opEOR(addrmode.AbsoluteLong))

	t[0x50] = e("BVC", addrmode.PCRelative, opBVC)
	t[0x51] = e("EOR", addrmode.DirectIndirectY, opEOR(addrmode.DirectIndirectY))
	t[0x52] = e("EOR", addrmode.DirectIndirect, opEOR(addrmode.DirectIndirect))
	t[0x53] = e("EOR", addrmode.StackRelativeIndirectY, opEOR(addrmode.StackRelativeIndirectY))
	t[0x54] = e("MVN", addrmode.BlockMove, opMVN)
	t[0x55] = e("EOR", addrmode.DirectX, opEOR(addrmode.DirectX))
	t[0x56] = e("LSR", addrmode.DirectX, opLSR(addrmode.DirectX))
	t[0x57] = e("EOR", addrmode.DirectIndirectLongY, opEOR(addrmode.DirectIndirectLongY))
	t[0x58] = e("CLI", addrmode.Implied, opCLI)
	t[0x59] = e("EOR", addrmode.AbsoluteY, opEOR(addrmode.AbsoluteY))
	t[0x5A] = e("PHY", addrmode.Stack, opPHY)
	t[0x5B] = e("TCD", addrmode.Implied, opTCD)
	t[0x5C] = e("JMP", addrmode.AbsoluteLong, opJMPLong)
	t[0x5D] = e("EOR", addrmode.AbsoluteX, opEOR(addrmode.AbsoluteX))
	t[0x5E] = e("LSR", addrmode.AbsoluteX, opLSR(addrmode.AbsoluteX))
	t[0x5F] = e("EOR", addrmode.AbsoluteLongX, opEOR(addrmode.AbsoluteLongX))

	t[0x60] = e("RTS", addrmode.Stack, opRTS)
	t[0x61] = e("ADC", addrmode.DirectIndirectX, opADC(addrmode.DirectIndirectX))
	t[0x62] = e("PER", addrmode.Stack, opPER)
	t[0x63] = e("ADC", addrmode.StackRelative, opADC(addrmode.StackRelative))
	t[0x64] = e("STZ", addrmode.Direct, opSTZ(addrmode.Direct))
	t[0x65] = e("ADC", addrmode.Direct, opADC(addrmode.Direct))
	t[0x66] = e("ROR", addrmode.Direct, opROR(addrmode.Direct))
	t[0x67] = e("ADC", addrmode.DirectIndirectLong, opADC(addrmode.DirectIndirectLong))
	t[0x68] = e("PLA", addrmode.Stack, opPLA)
	t[0x69] = e("ADC", addrmode.Immediate, opADC(addrmode.Immediate))
	t[0x6A] = e("ROR", addrmode.Accumulator, opROR(addrmode.Accumulator))
	t[0x6B] = e("RTL", addrmode.Stack, opRTL)
	t[0x6C] = e("JMP", addrmode.AbsoluteIndirect, opJMPIndirect)
	t[0x6D] = e("ADC", addrmode.Absolute, opADC(addrmode.Absolute))
	t[0x6E] = e("ROR", addrmode.Absolute, opROR(addrmode.Absolute))
	t[0x6F] = e("ADC", addrmode.AbsoluteLong, opADC(addrmode.AbsoluteLong))

	t[0x70] = e("BVS", addrmode.PCRelative, opBVS)
	t[0x71] = e("ADC", addrmode.DirectIndirectY, opADC(addrmode.DirectIndirectY))
	t[0x72] = e("ADC", addrmode.DirectIndirect, opADC(addrmode.DirectIndirect))
	t[0x73] = e("ADC", addrmode.StackRelativeIndirectY, opADC(addrmode.StackRelativeIndirectY))
	t[0x74] = e("STZ", addrmode.DirectX, opSTZ(addrmode.DirectX))
	t[0x75] = e("ADC", addrmode.DirectX, opADC(addrmode.DirectX))
	t[0x76] = e("ROR", addrmode.DirectX, opROR(addrmode.DirectX))
	t[0x77] = e("ADC", addrmode.DirectIndirectLongY, opADC(addrmode.DirectIndirectLongY))
	t[0x78] = e("SEI", addrmode.Implied, opSEI)
	t[0x79] = e("ADC", addrmode.AbsoluteY, opADC(addrmode.AbsoluteY))
	t[0x7A] = e("PLY", addrmode.Stack, opPLY)
	t[0x7B] = e("TDC", addrmode.Implied, opTDC)
	t[0x7C] = e("JMP", addrmode.AbsoluteIndirectX, opJMPIndirectX)
	t[0x7D] = e("ADC", addrmode.AbsoluteX, opADC(addrmode.AbsoluteX))
	t[0x7E] = e("ROR", addrmode.AbsoluteX, opROR(addrmode.AbsoluteX))
	t[0x7F] = e("ADC", addrmode.AbsoluteLongX, opADC(addrmode.AbsoluteLongX))

	t[0x80] = e("BRA", addrmode.PCRelative, opBRA)
	t[0x81] = e("STA", addrmode.DirectIndirectX, opSTA(addrmode.DirectIndirectX))
	t[0x82] = e("BRL", addrmode.PCRelativeLong, opBRL)
	t[0x83] = e("STA", addrmode.StackRelative, opSTA(addrmode.StackRelative))
	t[0x84] = e("STY", addrmode.Direct, opSTY(addrmode.Direct))
	t[0x85] = e("STA", addrmode.Direct, opSTA(addrmode.Direct))
	t[0x86] = e("STX", addrmode.Direct, opSTX(addrmode.Direct))
	t[0x87] = e("STA", addrmode.DirectIndirectLong, opSTA(addrmode.DirectIndirectLong))
	t[0x88] = e("DEY", addrmode.Implied, opDEY)
	t[0x89] = e("BIT", addrmode.Immediate, opBIT(addrmode.Immediate))
	t[0x8A] = e("TXA", addrmode.Implied, opTXA)
	t[0x8B] = e("PHB", addrmode.Stack, opPHB)
	t[0x8C] = e("STY", addrmode.Absolute, opSTY(addrmode.Absolute))
	t[0x8D] = e("STA", addrmode.Absolute, opSTA(addrmode.Absolute))
	t[0x8E] = e("STX", addrmode.Absolute, opSTX(addrmode.Absolute))
	t[0x8F] = e("STA", addrmode.AbsoluteLong, opSTA(addrmode.AbsoluteLong))

	t[0x90] = e("BCC", addrmode.PCRelative, opBCC)
	t[0x91] = e("STA", addrmode.DirectIndirectY, opSTA(addrmode.DirectIndirectY))
	t[0x92] = e("STA", addrmode.DirectIndirect, opSTA(addrmode.DirectIndirect))
	t[0x93] = e("STA", addrmode.StackRelativeIndirectY, opSTA(addrmode.StackRelativeIndirectY))
	t[0x94] = e("STY", addrmode.DirectX, opSTY(addrmode.DirectX))
	t[0x95] = e("STA", addrmode.DirectX, opSTA(addrmode.DirectX))
	t[0x96] = e("STX", addrmode.DirectY, opSTX(addrmode.DirectY))
	t[0x97] = e("STA", addrmode.DirectIndirectLongY, opSTA(addrmode.DirectIndirectLongY))
	t[0x98] = e("TYA", addrmode.Implied, opTYA)
	t[0x99] = e("STA", addrmode.AbsoluteY, opSTA(addrmode.AbsoluteY))
	t[0x9A] = e("TXS", addrmode.Implied, opTXS)
	t[0x9B] = e("TXY", addrmode.Implied, opTXY)
	t[0x9C] = e("STZ", addrmode.Absolute, opSTZ(addrmode.Absolute))
	t[0x9D] = e("STA", addrmode.AbsoluteX, opSTA(addrmode.AbsoluteX))
	t[0x9E] = e("STZ", addrmode.AbsoluteX, opSTZ(addrmode.AbsoluteX))
	t[0x9F] = e("STA", addrmode.AbsoluteLongX, opSTA(addrmode.AbsoluteLongX))

	t[0xA0] = e("LDY", addrmode.Immediate, opLDY(addrmode.Immediate))
	t[0xA1] = e("LDA", addrmode.DirectIndirectX, opLDA(addrmode.DirectIndirectX))
	t[0xA2] = e("LDX", addrmode.Immediate, opLDX(addrmode.Immediate))
	t[0xA3] = e("LDA", addrmode.StackRelative, opLDA(addrmode.StackRelative))
	t[0xA4] = e("LDY", addrmode.Direct, opLDY(addrmode.Direct))
	t[0xA5] = e("LDA", addrmode.Direct, opLDA(addrmode.Direct))
	t[0xA6] = e("LDX", addrmode.Direct, opLDX(addrmode.Direct))
	t[0xA7] = e("LDA", addrmode.DirectIndirectLong, opLDA(addrmode.DirectIndirectLong))
	t[0xA8] = e("TAY", addrmode.Implied, opTAY)
	t[0xA9] = e("LDA", addrmode.Immediate, opLDA(addrmode.Immediate))
	t[0xAA] = e("TAX", addrmode.Implied, opTAX)
	t[0xAB] = e("PLB", addrmode.Stack, opPLB)
	t[0xAC] = e("LDY", addrmode.Absolute, opLDY(addrmode.Absolute))
	t[0xAD] = e("LDA", addrmode.Absolute, opLDA(addrmode.Absolute))
	t[0xAE] = e("LDX", addrmode.Absolute, opLDX(addrmode.Absolute))
	t[0xAF] = e("LDA", addrmode.AbsoluteLong, opLDA(addrmode.AbsoluteLong))

	t[0xB0] = e("BCS", addrmode.PCRelative, opBCS)
	t[0xB1] = e("LDA", addrmode.DirectIndirectY, opLDA(addrmode.DirectIndirectY))
	t[0xB2] = e("LDA", addrmode.DirectIndirect, opLDA(addrmode.DirectIndirect))
	t[0xB3] = e("LDA", addrmode.StackRelativeIndirectY, opLDA(addrmode.StackRelativeIndirectY))
	t[0xB4] = e("LDY", addrmode.DirectX, opLDY(addrmode.DirectX))
	t[0xB5] = e("LDA", addrmode.DirectX, opLDA(addrmode.DirectX))
	t[0xB6] = e("LDX", addrmode.DirectY, opLDX(addrmode.DirectY))
	t[0xB7] = e("LDA", addrmode.DirectIndirectLongY, opLDA(addrmode.DirectIndirectLongY))
	t[0xB8] = e("CLV", addrmode.Implied, opCLV)
	t[0xB9] = e("LDA", addrmode.AbsoluteY, opLDA(addrmode.AbsoluteY))
	t[0xBA] = e("TSX", addrmode.Implied, opTSX)
	t[0xBB] = e("TYX", addrmode.Implied, opTYX)
	t[0xBC] = e("LDY", addrmode.AbsoluteX, opLDY(addrmode.AbsoluteX))
	t[0xBD] = e("LDA", addrmode.AbsoluteX, opLDA(addrmode.AbsoluteX))
	t[0xBE] = e("LDX", addrmode.AbsoluteY, opLDX(addrmode.AbsoluteY))
	t[0xBF] = e("LDA", addrmode.AbsoluteLongX, opLDA(addrmode.AbsoluteLongX))

	t[0xC0] = e("CPY", addrmode.Immediate, opCPY(addrmode.Immediate))
	t[0xC1] = e("CMP", addrmode.DirectIndirectX, opCMP(addrmode.DirectIndirectX))
	t[0xC2] = e("REP", addrmode.Immediate, opREP)
	t[0xC3] = e("CMP", addrmode.StackRelative, opCMP(addrmode.StackRelative))
	t[0xC4] = e("CPY", addrmode.Direct, opCPY(addrmode.Direct))
	t[0xC5] = e("CMP", addrmode.Direct, opCMP(addrmode.Direct))
	t[0xC6] = e("DEC", addrmode.Direct, opDEC(addrmode.Direct))
	t[0xC7] = e("CMP", addrmode.DirectIndirectLong, opCMP(addrmode.DirectIndirectLong))
	t[0xC8] = e("INY", addrmode.Implied, opINY)
	t[0xC9] = e("CMP", addrmode.Immediate, opCMP(addrmode.Immediate))
	t[0xCA] = e("DEX", addrmode.Implied, opDEX)
	t[0xCB] = e("WAI", addrmode.Implied, opWAI)
	t[0xCC] = e("CPY", addrmode.Absolute, opCPY(addrmode.Absolute))
	t[0xCD] = e("CMP", addrmode.Absolute, opCMP(addrmode.Absolute))
	t[0xCE] = e("DEC", addrmode.Absolute, opDEC(addrmode.Absolute))
	t[0xCF] = e("CMP", addrmode.AbsoluteLong, opCMP(addrmode.AbsoluteLong))

	t[0xD0] = e("BNE", addrmode.PCRelative, opBNE)
	t[0xD1] = e("CMP", addrmode.DirectIndirectY, opCMP(addrmode.DirectIndirectY))
	t[0xD2] = e("CMP", addrmode.DirectIndirect, opCMP(addrmode.DirectIndirect))
	t[0xD3] = e("CMP", addrmode.StackRelativeIndirectY, opCMP(addrmode.StackRelativeIndirectY))
	t[0xD4] = e("PEI", addrmode.Stack, opPEI)
	t[0xD5] = e("CMP", addrmode.DirectX, opCMP(addrmode.DirectX))
	t[0xD6] = e("DEC", addrmode.DirectX, opDEC(addrmode.DirectX))
	t[0xD7] = e("CMP", addrmode.DirectIndirectLongY, opCMP(addrmode.DirectIndirectLongY))
	t[0xD8] = e("CLD", addrmode.Implied, opCLD)
	t[0xD9] = e("CMP", addrmode.AbsoluteY, opCMP(addrmode.AbsoluteY))
	t[0xDA] = e("PHX", addrmode.Stack, opPHX)
	t[0xDB] = e("STP", addrmode.Implied, opSTP)
	t[0xDC] = e("JMP", addrmode.AbsoluteIndirectLong, opJMPIndirectLong)
	t[0xDD] = e("CMP", addrmode.AbsoluteX, opCMP(addrmode.AbsoluteX))
	t[0xDE] = e("DEC", addrmode.AbsoluteX, opDEC(addrmode.AbsoluteX))
	t[0xDF] = e("CMP", addrmode.AbsoluteLongX, opCMP(addrmode.AbsoluteLongX))

	t[0xE0] = e("CPX", addrmode.Immediate, opCPX(addrmode.Immediate))
	t[0xE1] = e("SBC", addrmode.DirectIndirectX, opSBC(addrmode.DirectIndirectX))
	t[0xE2] = e("SEP", addrmode.Immediate, opSEP)
	t[0xE3] = e("SBC", addrmode.StackRelative, opSBC(addrmode.StackRelative))
	t[0xE4] = e("CPX", addrmode.Direct, opCPX(addrmode.Direct))
	t[0xE5] = e("SBC", addrmode.Direct, opSBC(addrmode.Direct))
	t[0xE6] = e("INC", addrmode.Direct, opINC(addrmode.Direct))
	t[0xE7] = e("SBC", addrmode.DirectIndirectLong, opSBC(addrmode.DirectIndirectLong))
	t[0xE8] = e("INX", addrmode.Implied, opINX)
	t[0xE9] = e("SBC", addrmode.Immediate, opSBC(addrmode.Immediate))
	t[0xEA] = e("NOP", addrmode.Implied, opNOP)
	t[0xEB] = e("XBA", addrmode.Implied, opXBA)
	t[0xEC] = e("CPX", addrmode.Absolute, opCPX(addrmode.Absolute))
	t[0xED] = e("SBC", addrmode.Absolute, opSBC(addrmode.Absolute))
	t[0xEE] = e("INC", addrmode.Absolute, opINC(addrmode.Absolute))
	t[0xEF] = e("SBC", addrmode.AbsoluteLong, opSBC(addrmode.AbsoluteLong))

	t[0xF0] = e("BEQ", addrmode.PCRelative, opBEQ)
	t[0xF1] = e("SBC", addrmode.DirectIndirectY, opSBC(addrmode.DirectIndirectY))
	t[0xF2] = e("SBC", addrmode.DirectIndirect, opSBC(addrmode.DirectIndirect))
	t[0xF3] = e("SBC", addrmode.StackRelativeIndirectY, opSBC(addrmode.StackRelativeIndirectY))
	t[0xF4] = e("PEA", addrmode.Stack, opPEA)
	t[0xF5] = e("SBC", addrmode.DirectX, opSBC(addrmode.DirectX))
	t[0xF6] = e("INC", addrmode.DirectX, opINC(addrmode.DirectX))
	t[0xF7] = e("SBC", addrmode.DirectIndirectLongY, opSBC(addrmode.DirectIndirectLongY))
	t[0xF8] = e("SED", addrmode.Implied, opSED)
	t[0xF9] = e("SBC", addrmode.AbsoluteY, opSBC(addrmode.AbsoluteY))
	t[0xFA] = e("PLX", addrmode.Stack, opPLX)
	t[0xFB] = e("XCE", addrmode.Implied, opXCE)
	t[0xFC] = e("JSR", addrmode.AbsoluteIndirectX, opJSR_IndirectX)
	t[0xFD] = e("SBC", addrmode.AbsoluteX, opSBC(addrmode.AbsoluteX))
	t[0xFE] = e("INC", addrmode.AbsoluteX, opINC(addrmode.AbsoluteX))
	t[0xFF] = e("SBC", addrmode.AbsoluteLongX, opSBC(addrmode.AbsoluteLongX))

	return t
}
