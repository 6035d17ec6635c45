package cpu

import (
	"github.com/wdc65816/core/addrmode"
	"github.com/wdc65816/core/registers"
)

// opASL, opLSR, opROL, and opROR each handle the Accumulator addressing
// mode (operate on A directly, charging the one internal cycle in
// place of a memory access) and every other mode (a memory
// read-modify-write) through the shared rmwWidth helper.

func opASL(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		shift := func(old uint16) (uint16, bool) {
			if is8 {
				return uint16(uint8(old) << 1), old&0x80 != 0
			}
			return old << 1, old&0x8000 != 0
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv, carry := shift(p.reg.A())
			p.reg.WriteA(nv)
			p.reg.AssignFlag(registers.FlagC, carry)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		var carry bool
		_, nv := p.rmwWidth(res, wide, func(old uint16) uint16 {
			var n uint16
			n, carry = shift(old)
			return n
		})
		p.reg.AssignFlag(registers.FlagC, carry)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opLSR(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		shift := func(old uint16) (uint16, bool) {
			carry := old&0x01 != 0
			if is8 {
				return uint16(uint8(old) >> 1), carry
			}
			return old >> 1, carry
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv, carry := shift(p.reg.A())
			p.reg.WriteA(nv)
			p.reg.AssignFlag(registers.FlagC, carry)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		var carry bool
		_, nv := p.rmwWidth(res, wide, func(old uint16) uint16 {
			var n uint16
			n, carry = shift(old)
			return n
		})
		p.reg.AssignFlag(registers.FlagC, carry)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opROL(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		carryIn := p.reg.Flag(registers.FlagC)
		rotate := func(old uint16) (uint16, bool) {
			if is8 {
				nv := uint8(old) << 1
				if carryIn {
					nv |= 0x01
				}
				return uint16(nv), old&0x80 != 0
			}
			nv := old << 1
			if carryIn {
				nv |= 0x0001
			}
			return nv, old&0x8000 != 0
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv, carry := rotate(p.reg.A())
			p.reg.WriteA(nv)
			p.reg.AssignFlag(registers.FlagC, carry)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		var carry bool
		_, nv := p.rmwWidth(res, wide, func(old uint16) uint16 {
			var n uint16
			n, carry = rotate(old)
			return n
		})
		p.reg.AssignFlag(registers.FlagC, carry)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opROR(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		carryIn := p.reg.Flag(registers.FlagC)
		rotate := func(old uint16) (uint16, bool) {
			carry := old&0x01 != 0
			if is8 {
				nv := uint8(old) >> 1
				if carryIn {
					nv |= 0x80
				}
				return uint16(nv), carry
			}
			nv := old >> 1
			if carryIn {
				nv |= 0x8000
			}
			return nv, carry
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv, carry := rotate(p.reg.A())
			p.reg.WriteA(nv)
			p.reg.AssignFlag(registers.FlagC, carry)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		var carry bool
		_, nv := p.rmwWidth(res, wide, func(old uint16) uint16 {
			var n uint16
			n, carry = rotate(old)
			return n
		})
		p.reg.AssignFlag(registers.FlagC, carry)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opINC(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		step := func(old uint16) uint16 {
			if is8 {
				return uint16(uint8(old + 1))
			}
			return old + 1
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv := step(p.reg.A())
			p.reg.WriteA(nv)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		_, nv := p.rmwWidth(res, wide, step)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opDEC(mode addrmode.Mode) opcodeFunc {
	return func(p *Chip) error {
		is8 := p.reg.AccumulatorIs8Bit()
		wide := !is8
		step := func(old uint16) uint16 {
			if is8 {
				return uint16(uint8(old - 1))
			}
			return old - 1
		}
		if mode == addrmode.Accumulator {
			p.Internal()
			nv := step(p.reg.A())
			p.reg.WriteA(nv)
			p.setNZAcc()
			return nil
		}
		res, err := p.resolve(mode, addrmode.ReadModifyWrite, wide)
		if err != nil {
			return err
		}
		_, nv := p.rmwWidth(res, wide, step)
		p.reg.SetNZWidth(nv, is8)
		return nil
	}
}

func opINX(p *Chip) error {
	is8 := p.reg.IndexIs8Bit()
	nv := p.reg.X() + 1
	if is8 {
		nv = uint16(uint8(nv))
	}
	p.reg.WriteX(nv)
	p.setNZX()
	p.Internal()
	return nil
}

func opINY(p *Chip) error {
	is8 := p.reg.IndexIs8Bit()
	nv := p.reg.Y() + 1
	if is8 {
		nv = uint16(uint8(nv))
	}
	p.reg.WriteY(nv)
	p.setNZY()
	p.Internal()
	return nil
}

func opDEX(p *Chip) error {
	is8 := p.reg.IndexIs8Bit()
	nv := p.reg.X() - 1
	if is8 {
		nv = uint16(uint8(nv))
	}
	p.reg.WriteX(nv)
	p.setNZX()
	p.Internal()
	return nil
}

func opDEY(p *Chip) error {
	is8 := p.reg.IndexIs8Bit()
	nv := p.reg.Y() - 1
	if is8 {
		nv = uint16(uint8(nv))
	}
	p.reg.WriteY(nv)
	p.setNZY()
	p.Internal()
	return nil
}
