package cpu

import "github.com/wdc65816/core/registers"

// branchIf implements the eight conditional branches and BRA: fetch
// the signed 8-bit displacement, and if pred holds, charge the taken
// cycle plus (in emulation mode only) the page-cross cycle and apply
// it to PC. Native mode never charges the page-cross cycle (§4.3).
func branchIf(pred func(p *Chip) bool) opcodeFunc {
	return func(p *Chip) error {
		offset := int8(p.FetchOperand())
		if !pred(p) {
			return nil
		}
		p.Internal()
		old := p.reg.PC()
		next := uint16(int32(old) + int32(offset))
		if p.reg.E() && (old&0xFF00) != (next&0xFF00) {
			p.Internal()
		}
		p.reg.SetPC(next)
		return nil
	}
}

func opBCC(p *Chip) error { return branchIf(func(p *Chip) bool { return !p.reg.Flag(registers.FlagC) })(p) }
func opBCS(p *Chip) error { return branchIf(func(p *Chip) bool { return p.reg.Flag(registers.FlagC) })(p) }
func opBEQ(p *Chip) error { return branchIf(func(p *Chip) bool { return p.reg.Flag(registers.FlagZ) })(p) }
func opBNE(p *Chip) error { return branchIf(func(p *Chip) bool { return !p.reg.Flag(registers.FlagZ) })(p) }
func opBMI(p *Chip) error { return branchIf(func(p *Chip) bool { return p.reg.Flag(registers.FlagN) })(p) }
func opBPL(p *Chip) error { return branchIf(func(p *Chip) bool { return !p.reg.Flag(registers.FlagN) })(p) }
func opBVC(p *Chip) error { return branchIf(func(p *Chip) bool { return !p.reg.Flag(registers.FlagV) })(p) }
func opBVS(p *Chip) error { return branchIf(func(p *Chip) bool { return p.reg.Flag(registers.FlagV) })(p) }
func opBRA(p *Chip) error { return branchIf(func(p *Chip) bool { return true })(p) }

// opBRL implements the 16-bit-displacement unconditional branch: always
// four cycles, no page-cross penalty since the full bank-relative
// offset never "crosses a page" in the 6502 sense.
func opBRL(p *Chip) error {
	lo := p.FetchOperand()
	hi := p.FetchOperand()
	offset := int16(uint16(lo) | uint16(hi)<<8)
	p.Internal()
	p.reg.SetPC(uint16(int32(p.reg.PC()) + int32(offset)))
	return nil
}
