package cpu

import "github.com/wdc65816/core/registers"

func opCLC(p *Chip) error { p.reg.ClearFlag(registers.FlagC); p.Internal(); return nil }
func opSEC(p *Chip) error { p.reg.SetFlag(registers.FlagC); p.Internal(); return nil }
func opCLD(p *Chip) error { p.reg.ClearFlag(registers.FlagD); p.Internal(); return nil }
func opSED(p *Chip) error { p.reg.SetFlag(registers.FlagD); p.Internal(); return nil }
func opCLI(p *Chip) error { p.reg.ClearFlag(registers.FlagI); p.Internal(); return nil }
func opSEI(p *Chip) error { p.reg.SetFlag(registers.FlagI); p.Internal(); return nil }
func opCLV(p *Chip) error { p.reg.ClearFlag(registers.FlagV); p.Internal(); return nil }

// opREP clears the status bits named by the immediate mask. Emulation
// mode still forces M and X back on immediately, since hardware never
// actually allows 16-bit operation with E set (§4.1).
func opREP(p *Chip) error {
	mask := p.FetchOperand()
	p.reg.ClearFlag(mask)
	if p.reg.E() {
		p.reg.SetFlag(registers.FlagM | registers.FlagX)
	}
	p.truncateIndexIf8Bit()
	p.Internal()
	return nil
}

// opSEP sets the status bits named by the immediate mask. Setting X
// narrows the index registers to 8 bits immediately (§4.1).
func opSEP(p *Chip) error {
	mask := p.FetchOperand()
	p.reg.SetFlag(mask)
	p.truncateIndexIf8Bit()
	p.Internal()
	return nil
}
