// Package trace renders CPU state and instruction streams as
// human-readable text, in the spirit of the teacher 6502 core's
// disassemble package: fixed-width columns, one line per instruction
// or status query, suitable for piping into a diff-based test harness.
package trace

import (
	"fmt"

	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/bus"
	"github.com/wdc65816/core/cpu"
	"github.com/wdc65816/core/registers"
)

// Format renders a Snapshot as a single status line: every register in
// hex, the status register spelled out as individual flag letters
// (uppercase set, lowercase clear), then a space and "E" or "-" for the
// emulation-mode bit. In emulation mode the accumulator-width position
// shows "." instead of "M"/"m", and the index-width position shows the
// break flag as "B"/"b" instead of "X"/"x".
func Format(s cpu.Snapshot) string {
	return fmt.Sprintf(
		"A:%04X X:%04X Y:%04X D:%04X S:%04X DB:%02X PB:%02X PC:%02X:%04X P:%s CYC:%d",
		s.A, s.X, s.Y, s.D, s.S, s.DBR, s.PBR, s.PBR, s.PC, flagString(s), s.Cycles,
	)
}

func flagString(s cpu.Snapshot) string {
	bit := func(mask uint8, set, clear byte) byte {
		if s.P&mask != 0 {
			return set
		}
		return clear
	}
	n := bit(registers.FlagN, 'N', 'n')
	v := bit(registers.FlagV, 'V', 'v')

	var mx byte
	if s.E {
		mx = '.'
	} else {
		mx = bit(registers.FlagM, 'M', 'm')
	}

	var bx byte
	if s.E {
		bx = bit(registers.FlagB, 'B', 'b')
	} else {
		bx = bit(registers.FlagX, 'X', 'x')
	}

	d := bit(registers.FlagD, 'D', 'd')
	i := bit(registers.FlagI, 'I', 'i')
	z := bit(registers.FlagZ, 'Z', 'z')
	c := bit(registers.FlagC, 'C', 'c')

	e := byte('-')
	if s.E {
		e = 'E'
	}
	return string([]byte{n, v, mx, bx, d, i, z, c, ' ', e})
}

// operandBytes reports how many instruction-stream bytes follow the
// opcode for mode, given the accumulator/index widths in effect -
// Immediate is the only mode whose length isn't fixed, since a
// 16-bit-wide immediate operand is twice as long as an 8-bit one. A few
// mnemonics carry operand bytes their table mode does not imply (the
// BRK/COP signature byte, WDM's reserved byte, the PEA/PEI/PER operands)
// and REP/SEP always take a one-byte mask; those are matched by name.
func operandBytes(mode addrmode.Mode, accWide, idxWide bool, mnemonic string) int {
	switch mnemonic {
	case "BRK", "COP", "WDM", "PEI", "REP", "SEP":
		return 1
	case "PEA", "PER":
		return 2
	}
	switch mode {
	case addrmode.Implied, addrmode.Stack, addrmode.Accumulator:
		return 0
	case addrmode.Immediate:
		if isIndexMnemonic(mnemonic) {
			if idxWide {
				return 2
			}
			return 1
		}
		if accWide {
			return 2
		}
		return 1
	case addrmode.PCRelative:
		return 1
	case addrmode.PCRelativeLong:
		return 2
	case addrmode.Direct, addrmode.DirectX, addrmode.DirectY,
		addrmode.DirectIndirect, addrmode.DirectIndirectX, addrmode.DirectIndirectY,
		addrmode.DirectIndirectLong, addrmode.DirectIndirectLongY,
		addrmode.StackRelative, addrmode.StackRelativeIndirectY:
		return 1
	case addrmode.Absolute, addrmode.AbsoluteX, addrmode.AbsoluteY,
		addrmode.AbsoluteIndirect, addrmode.AbsoluteIndirectLong, addrmode.AbsoluteIndirectX:
		return 2
	case addrmode.AbsoluteLong, addrmode.AbsoluteLongX:
		return 3
	case addrmode.BlockMove:
		return 2
	default:
		return 0
	}
}

// isIndexMnemonic reports whether a mnemonic operates on X/Y (and so
// its immediate operand width follows the index flag) rather than the
// accumulator.
func isIndexMnemonic(mnemonic string) bool {
	switch mnemonic {
	case "LDX", "LDY", "CPX", "CPY":
		return true
	default:
		return false
	}
}

// Disassemble decodes exactly one instruction at addr without
// executing it, returning its assembler text and byte length - the
// same (string, int) shape as the teacher's disassemble.Step, extended
// with explicit width flags since the W65C816S cannot otherwise tell
// how long an immediate operand is from the opcode byte alone.
func Disassemble(b bus.Bus, addr bus.Addr24, accWide, idxWide bool) (string, int) {
	op := b.Read(addr)
	mnemonic, mode := cpu.Lookup(op)
	n := operandBytes(mode, accWide, idxWide, mnemonic)

	operand := make([]uint8, n)
	for i := 0; i < n; i++ {
		operand[i] = b.Read(addr + 1 + bus.Addr24(i))
	}

	return fmt.Sprintf("%s %s", mnemonic, formatOperand(mode, operand)), n + 1
}

func formatOperand(mode addrmode.Mode, b []uint8) string {
	word := func() uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
	switch mode {
	case addrmode.Implied, addrmode.Stack:
		return ""
	case addrmode.Accumulator:
		return "A"
	case addrmode.Immediate:
		if len(b) == 2 {
			return fmt.Sprintf("#$%04X", word())
		}
		return fmt.Sprintf("#$%02X", b[0])
	case addrmode.PCRelative:
		return fmt.Sprintf("$%02X", b[0])
	case addrmode.PCRelativeLong:
		return fmt.Sprintf("$%04X", word())
	case addrmode.Direct:
		return fmt.Sprintf("$%02X", b[0])
	case addrmode.DirectX:
		return fmt.Sprintf("$%02X,X", b[0])
	case addrmode.DirectY:
		return fmt.Sprintf("$%02X,Y", b[0])
	case addrmode.DirectIndirect:
		return fmt.Sprintf("($%02X)", b[0])
	case addrmode.DirectIndirectX:
		return fmt.Sprintf("($%02X,X)", b[0])
	case addrmode.DirectIndirectY:
		return fmt.Sprintf("($%02X),Y", b[0])
	case addrmode.DirectIndirectLong:
		return fmt.Sprintf("[$%02X]", b[0])
	case addrmode.DirectIndirectLongY:
		return fmt.Sprintf("[$%02X],Y", b[0])
	case addrmode.Absolute:
		return fmt.Sprintf("$%04X", word())
	case addrmode.AbsoluteX:
		return fmt.Sprintf("$%04X,X", word())
	case addrmode.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", word())
	case addrmode.AbsoluteLong:
		return fmt.Sprintf("$%02X%04X", b[2], word())
	case addrmode.AbsoluteLongX:
		return fmt.Sprintf("$%02X%04X,X", b[2], word())
	case addrmode.StackRelative:
		return fmt.Sprintf("$%02X,S", b[0])
	case addrmode.StackRelativeIndirectY:
		return fmt.Sprintf("($%02X,S),Y", b[0])
	case addrmode.AbsoluteIndirect:
		return fmt.Sprintf("($%04X)", word())
	case addrmode.AbsoluteIndirectLong:
		return fmt.Sprintf("[$%04X]", word())
	case addrmode.AbsoluteIndirectX:
		return fmt.Sprintf("($%04X,X)", word())
	case addrmode.BlockMove:
		return fmt.Sprintf("$%02X,$%02X", b[0], b[1])
	default:
		return ""
	}
}
