package cpu

import "github.com/wdc65816/core/registers"

// opXBA swaps AL and AH unconditionally (it does not respect the M
// width) and sets N/Z from the new low byte.
func opXBA(p *Chip) error {
	al := p.reg.AL()
	ah := p.reg.AH()
	p.reg.SetAL(ah)
	p.reg.SetAH(al)
	p.reg.SetNZ8(p.reg.AL())
	p.Internal()
	p.Internal()
	return nil
}

// opXCE exchanges the carry and emulation-mode flags, the canonical
// native/emulation mode switch (§4.1 "SEC;XCE" / "CLC;XCE" idiom).
func opXCE(p *Chip) error {
	carry := p.reg.Flag(registers.FlagC)
	e := p.reg.E()
	p.reg.AssignFlag(registers.FlagC, e)
	p.reg.SetEmulation(carry)
	p.Internal()
	return nil
}

func opNOP(p *Chip) error { p.Internal(); return nil }

// opWDM consumes its reserved operand byte and otherwise has no
// effect; William D. Mensch Jr. reserved this opcode for future
// expansion.
func opWDM(p *Chip) error { p.FetchOperand(); return nil }

func opSTP(p *Chip) error {
	p.stopped = true
	p.Internal()
	p.Internal()
	return nil
}

func opWAI(p *Chip) error {
	p.waiting = true
	p.Internal()
	p.Internal()
	return nil
}
