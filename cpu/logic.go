package cpu

import (
	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/registers"
)

// doLogic resolves mode at accumulator width, folds the operand into A
// via combine, and writes the result back through WriteA/N/Z.
func (p *Chip) doLogic(mode addrmode.Mode, combine func(a, v uint16) uint16) error {
	is8 := p.reg.AccumulatorIs8Bit()
	v, err := p.loadOperand(mode, !is8)
	if err != nil {
		return err
	}
	result := combine(p.reg.A(), v)
	p.reg.WriteA(result)
	p.setNZAcc()
	return nil
}

func opAND(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLogic(mode, func(a, v uint16) uint16 { return a & v })
	}
}

func opORA(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLogic(mode, func(a, v uint16) uint16 { return a | v })
	}
}

func opEOR(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		return p.doLogic(mode, func(a, v uint16) uint16 { return a ^ v })
	}
}

// opBIT implements BIT: Z always reflects A & operand; N and V are
// copied from bits 7/6 (or 15/14 at 16-bit width) of the operand
// itself, except in Immediate mode where only Z is affected.
func opBIT(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		a := p.reg.A()
		if is8 {
			a &= 0xFF
		}
		p.reg.AssignFlag(registers.FlagZ, a&v == 0)
		if mode != addrmode.Immediate {
			if is8 {
				p.reg.AssignFlag(registers.FlagN, v&0x80 != 0)
				p.reg.AssignFlag(registers.FlagV, v&0x40 != 0)
			} else {
				p.reg.AssignFlag(registers.FlagN, v&0x8000 != 0)
				p.reg.AssignFlag(registers.FlagV, v&0x4000 != 0)
			}
		}
		return nil
	}
}

func opTRB(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		a := p.reg.A()
		if is8 {
			a &= 0xFF
		}
		old, _ := p.rmwWidth(res, wide, func(old uint16) uint16 { return old &^ a })
		p.reg.AssignFlag(registers.FlagZ, old&a == 0)
		return nil
	}
}

func opTSB(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		a := p.reg.A()
		if is8 {
			a &= 0xFF
		}
		old, _ := p.rmwWidth(res, wide, func(old uint16) uint16 { return old | a })
		p.reg.AssignFlag(registers.FlagZ, old&a == 0)
		return nil
	}
}
