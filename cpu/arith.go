package cpu

import (
	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/registers"
)

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// adc8 and adc16 implement binary and BCD-corrected addition at 8 and
// 16-bit width. The decimal path adjusts one BCD digit at a time,
// carrying the correction into the next digit, the same per-nibble
// algorithm the W65C816S itself performs in hardware.
func adc8(a, data uint8, carryIn, decimal bool) (result uint8, carry, overflow bool) {
	ai, di, ci := int(a), int(data), boolToInt(carryIn)
	var res int
	if decimal {
		res = (ai & 0x0f) + (di & 0x0f) + ci
		if res > 0x09 {
			res += 0x06
		}
		c := boolToInt(res > 0x0f)
		res = (ai & 0xf0) + (di & 0xf0) + c<<4 + (res & 0x0f)
	} else {
		res = ai + di + ci
	}
	overflow = (^(ai^di)&(ai^res))&0x80 != 0
	if decimal && res > 0x9f {
		res += 0x60
	}
	carry = res > 0xff
	result = uint8(res)
	return
}

func adc16(a, data uint16, carryIn, decimal bool) (result uint16, carry, overflow bool) {
	ai, di, ci := int(a), int(data), boolToInt(carryIn)
	var res int
	if decimal {
		res = (ai & 0x000f) + (di & 0x000f) + ci
		if res > 0x0009 {
			res += 0x0006
		}
		c := boolToInt(res > 0x000f)
		res = (ai & 0x00f0) + (di & 0x00f0) + c<<4 + (res & 0x000f)
		if res > 0x009f {
			res += 0x0060
		}
		c = boolToInt(res > 0x00ff)
		res = (ai & 0x0f00) + (di & 0x0f00) + c<<8 + (res & 0x00ff)
		if res > 0x09ff {
			res += 0x0600
		}
		c = boolToInt(res > 0x0fff)
		res = (ai & 0xf000) + (di & 0xf000) + c<<12 + (res & 0x0fff)
	} else {
		res = ai + di + ci
	}
	overflow = (^(ai^di)&(ai^res))&0x8000 != 0
	if decimal && res > 0x9fff {
		res += 0x6000
	}
	carry = res > 0xffff
	result = uint16(res)
	return
}

// sbc8 and sbc16 implement subtraction as addition of the ones'
// complement of the operand, with the same per-digit BCD correction
// adc8/adc16 use, mirrored for borrow instead of carry.
func sbc8(a, data uint8, carryIn, decimal bool) (result uint8, carry, overflow bool) {
	ai := int(a)
	nd := int(^data)
	ci := boolToInt(carryIn)
	var res int
	if decimal {
		res = (ai & 0x0f) + (nd & 0x0f) + ci
		if res <= 0x0f {
			res -= 0x06
		}
		c := boolToInt(res > 0x0f)
		res = (ai & 0xf0) + (nd & 0xf0) + c<<4 + (res & 0x0f)
	} else {
		res = ai + nd + ci
	}
	overflow = (^(ai^nd)&(ai^res))&0x80 != 0
	if decimal && res <= 0xff {
		res -= 0x60
	}
	carry = res > 0xff
	result = uint8(res)
	return
}

func sbc16(a, data uint16, carryIn, decimal bool) (result uint16, carry, overflow bool) {
	ai := int(a)
	nd := int(^data)
	ci := boolToInt(carryIn)
	var res int
	if decimal {
		res = (ai & 0x000f) + (nd & 0x000f) + ci
		if res <= 0x000f {
			res -= 0x0006
		}
		c := boolToInt(res > 0x000f)
		res = (ai & 0x00f0) + (nd & 0x00f0) + c<<4 + (res & 0x000f)
		if res <= 0x00ff {
			res -= 0x0060
		}
		c = boolToInt(res > 0x00ff)
		res = (ai & 0x0f00) + (nd & 0x0f00) + c<<8 + (res & 0x00ff)
		if res <= 0x0fff {
			res -= 0x0600
		}
		c = boolToInt(res > 0x0fff)
		res = (ai & 0xf000) + (nd & 0xf000) + c<<12 + (res & 0x0fff)
	} else {
		res = ai + nd + ci
	}
	overflow = (^(ai^nd)&(ai^res))&0x8000 != 0
	if decimal && res <= 0xffff {
		res -= 0x6000
	}
	carry = res > 0xffff
	result = uint16(res)
	return
}

func opADC(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		decimal := p.reg.Flag(registers.FlagD)
		carryIn := p.reg.Flag(registers.FlagC)
		if is8 {
			r, c, ov := adc8(p.reg.AL(), uint8(v), carryIn, decimal)
			p.reg.WriteA(uint16(r))
			p.reg.AssignFlag(registers.FlagC, c)
			p.reg.AssignFlag(registers.FlagV, ov)
			p.reg.SetNZ8(r)
		} else {
			r, c, ov := adc16(p.reg.A(), v, carryIn, decimal)
			p.reg.WriteA(r)
			p.reg.AssignFlag(registers.FlagC, c)
			p.reg.AssignFlag(registers.FlagV, ov)
			p.reg.SetNZ16(r)
		}
		return nil
	}
}

func opSBC(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		decimal := p.reg.Flag(registers.FlagD)
		carryIn := p.reg.Flag(registers.FlagC)
		if is8 {
			r, c, ov := sbc8(p.reg.AL(), uint8(v), carryIn, decimal)
			p.reg.WriteA(uint16(r))
			p.reg.AssignFlag(registers.FlagC, c)
			p.reg.AssignFlag(registers.FlagV, ov)
			p.reg.SetNZ8(r)
		} else {
			r, c, ov := sbc16(p.reg.A(), v, carryIn, decimal)
			p.reg.WriteA(r)
			p.reg.AssignFlag(registers.FlagC, c)
			p.reg.AssignFlag(registers.FlagV, ov)
			p.reg.SetNZ16(r)
		}
		return nil
	}
}

func doCompare(p *Chip, reg uint16, v uint16, is8 bool) {
	var result int
	if is8 {
		result = int(uint8(reg)) - int(uint8(v))
	} else {
		result = int(reg) - int(v)
	}
	p.reg.AssignFlag(registers.FlagC, result >= 0)
	if is8 {
		p.reg.SetNZ8(uint8(result))
	} else {
		p.reg.SetNZ16(uint16(result))
	}
}

func opCMP(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		doCompare(p, p.reg.A(), v, is8)
		return nil
	}
}

func opCPX(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.IndexIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		doCompare(p, p.reg.X(), v, is8)
		return nil
	}
}

func opCPY(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.IndexIs8Bit()
		v, err := p.loadOperand(mode, !is8)
		if err != nil {
			return err
		}
		doCompare(p, p.reg.Y(), v, is8)
		return nil
	}
}
